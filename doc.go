// Package snowflakeclient is a small convenience layer on top of the
// Snowflake Go driver. It owns a single warehouse session, runs queries
// eagerly and hands results back as column-name-to-value mappings, so
// callers do not have to deal with database/sql plumbing for the common
// query-and-fetch-everything case.
//
// A Client is built from an explicit Config, from SNOWFLAKE_* environment
// variables or from a profile in connections.toml. It connects on demand
// by default: the first ExecuteQuery establishes the session.
//
//	client, err := snowflakeclient.NewClientFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	rows, err := client.ExecuteQuery(ctx, "SELECT CURRENT_VERSION() AS V", nil)
//
// A Client is not safe for concurrent use. Each goroutine that needs a
// session should own its own Client.
package snowflakeclient
