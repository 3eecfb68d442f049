// Example: Control the default logger's level and output, and inject it
// into a client.
package main

import (
	"bytes"
	"log"
	"strings"

	snowflakeclient "github.com/ergodic-ai/snowflake-client"
)

func main() {
	buf := &bytes.Buffer{}
	buf2 := &bytes.Buffer{}

	mylog := snowflakeclient.NewDefaultLogger()
	mylog.SetOutput(buf)
	mylog.Infof("I am not shown: the default level is error")
	mylog.Errorf("I am shown")
	_ = mylog.SetLogLevel("debug")
	mylog.Debugf("I am shown too, after the level switch")

	// Redirect the records to a second sink.
	mylog.SetOutput(buf2)
	mylog.Debugf("I go to the second buffer")

	log.Print("Expect all true values:")

	// verify level switch
	strbuf := buf.String()
	log.Printf("%t:%t:%t", !strings.Contains(strbuf, "not shown"),
		strings.Contains(strbuf, "I am shown"),
		strings.Contains(strbuf, "after the level switch"))

	// verify output switch
	log.Printf("%t:%t", !strings.Contains(strbuf, "second buffer"),
		strings.Contains(buf2.String(), "second buffer"))

	// The same logger can be handed to a client; everything the client logs
	// then flows through it, with credential material masked first.
	client, err := snowflakeclient.NewClient(snowflakeclient.Config{
		Account:  "myaccount",
		User:     "myuser",
		Password: "mypassword",
		Logger:   mylog,
	})
	if err != nil {
		log.Fatalf("failed to create client. err: %v", err)
	}
	defer client.Close()
	log.Printf("client ready, connects on the first query. connected: %v", client.IsConnected())
}
