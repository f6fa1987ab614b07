package main

import (
	"os"

	"github.com/elaralang/elara/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
