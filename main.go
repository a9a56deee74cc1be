// Package main is the entry point for the jokebox API server and client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jokebox/src/app/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}
