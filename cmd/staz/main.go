// Package main provides the entry point for the staz CLI tool.
package main

import (
	"context"
	"os"

	"github.com/Sumatoshi-tech/staz/cmd/staz/commands"
)

func main() {
	err := commands.Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
