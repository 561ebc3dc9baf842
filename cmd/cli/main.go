// Package main is the entry point for the pricing CLI.
package main

import (
	"os"

	"github.com/crazynala/axis-sub002/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
