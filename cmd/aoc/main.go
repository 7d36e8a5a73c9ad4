package main

import (
	"os"

	"github.com/katalvlaran/advent/cmd/aoc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
