// main is the entry point for the gitsum CLI.
package main

import (
	"os"

	"github.com/gitsum/gitsum/cmd"
	"github.com/gitsum/gitsum/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
