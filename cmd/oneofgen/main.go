// Package main provides the oneofgen CLI.
package main

import (
	"os"

	"github.com/gork-labs/oneof/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
