// Package main is the entry point for the maodou CLI.
package main

import (
	"os"

	"github.com/f3rmion/maodou/cmd/maodou/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
