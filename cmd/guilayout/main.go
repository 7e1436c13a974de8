// Command guilayout arranges YAML layout documents and reports the computed
// geometry.
//
// Usage:
//
//	guilayout arrange [flags] file.yaml...   Print the arranged tree of each document
//	guilayout serve [--addr :8080]           Arrange documents posted over HTTP
//
// Examples:
//
//	guilayout arrange layout.yaml                 Tree view on a terminal
//	guilayout arrange --json a.yaml b.yaml        JSON snapshots
//	guilayout arrange --width 1280 --scale 2 x.yaml
//	guilayout -v serve --addr 127.0.0.1:9000
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := newCLI(os.Stderr)
	if err := c.rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
