// Package main is the entry point for the palpite CLI.
package main

import (
	"os"

	"github.com/f3rmion/palpite/cmd/palpite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
