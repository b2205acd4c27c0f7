// Package main is the entry point for the hotelintel CLI.
package main

import (
	"os"

	"github.com/hotelintel/hotelintel/cmd/hotelintel/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
