// Example: Run queries through a scoped session: a plain query, a query with
// database and schema context, and a query with bind parameters.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	snowflakeclient "github.com/ergodic-ai/snowflake-client"
)

func main() {
	if !flag.Parsed() {
		flag.Parse()
	}
	ctx := context.Background()

	client, err := snowflakeclient.NewClientFromEnv()
	if err != nil {
		log.Fatalf("failed to create client. err: %v", err)
	}

	err = client.WithSession(ctx, func(c *snowflakeclient.Client) error {
		rows, err := c.ExecuteQuery(ctx, "SELECT CURRENT_TIMESTAMP() AS CURRENT_TIME", nil)
		if err != nil {
			return err
		}
		fmt.Printf("Current timestamp: %v\n", rows[0]["CURRENT_TIME"])

		// Activate a database and schema before the query runs. The sample
		// data share is available on every Snowflake account.
		rows, err = c.ExecuteQuery(ctx, "SELECT COUNT(*) AS ROW_COUNT FROM CUSTOMER", &snowflakeclient.QueryOptions{
			Init: &snowflakeclient.InitContext{Database: "SNOWFLAKE_SAMPLE_DATA", Schema: "TPCH_SF1"},
		})
		if err != nil {
			return err
		}
		fmt.Printf("Customer table row count: %v\n", rows[0]["ROW_COUNT"])

		// Bind parameters are resolved by the driver, not interpolated.
		rows, err = c.ExecuteQuery(ctx, "SELECT :param1 AS PARAMETER_1, :param2 AS PARAMETER_2", &snowflakeclient.QueryOptions{
			Params: map[string]interface{}{"param1": "Hello", "param2": "World"},
		})
		if err != nil {
			return err
		}
		fmt.Printf("Parameters: %v %v\n", rows[0]["PARAMETER_1"], rows[0]["PARAMETER_2"])
		return nil
	})
	if err != nil {
		log.Fatalf("failed to run queries. err: %v", err)
	}
	fmt.Printf("Congrats! You have successfully run all queries with Snowflake DB!\n")
}
