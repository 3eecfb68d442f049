// Example: How to connect to the server with the toml file configuration
// Prerequiste: following the Snowflake doc: https://docs.snowflake.com/en/developer-guide/snowflake-cli-v2/connecting/specify-credentials
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	snowflakeclient "github.com/ergodic-ai/snowflake-client"
)

func main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	os.Setenv("SNOWFLAKE_HOME", "<The directory path where the toml file exists>")
	os.Setenv("SNOWFLAKE_DEFAULT_CONNECTION_NAME", "<profile name>")

	client, err := snowflakeclient.NewClientFromProfile("")
	if err != nil {
		log.Fatalf("failed to create client. err: %v", err)
	}
	defer client.Close()

	query := "SELECT 1 AS V"
	rows, err := client.ExecuteQuery(context.Background(), query, nil)
	if err != nil {
		log.Fatalf("failed to run a query. %v, err: %v", query, err)
	}
	for _, row := range rows {
		fmt.Printf("V: %v\n", row["V"])
	}
	fmt.Printf("Congrats! You have successfully run %v with Snowflake DB!\n", query)
}
