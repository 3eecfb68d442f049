// Example: Connect from SNOWFLAKE_* environment variables and run SELECT 1.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	snowflakeclient "github.com/ergodic-ai/snowflake-client"
)

func main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		<-c
		log.Println("Caught signal, canceling...")
		cancel()
	}()

	client, err := snowflakeclient.NewClientFromEnv()
	if err != nil {
		log.Fatalf("failed to create client. err: %v", err)
	}
	defer client.Close()

	query := "SELECT 1 AS V"
	rows, err := client.ExecuteQuery(ctx, query, nil)
	if err != nil {
		log.Fatalf("failed to run a query. %v, err: %v", query, err)
	}
	if len(rows) != 1 {
		log.Fatalf("failed to get a single row. got: %v", len(rows))
	}
	if v := rows[0]["V"]; fmt.Sprintf("%v", v) != "1" {
		log.Fatalf("failed to get 1. got: %v", v)
	}
	fmt.Printf("Congrats! You have successfully run %v with Snowflake DB!\n", query)
}
