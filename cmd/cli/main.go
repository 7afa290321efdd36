// Package main is the entry point for the cloud-rosetta CLI.
package main

import (
	"os"

	"github.com/gordonmurray/cloud-rosetta/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
