// ABOUTME: Entry point for lift CLI.
// ABOUTME: Runs the root Cobra command and maps errors to exit status 1.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
