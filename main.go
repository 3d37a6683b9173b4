package main

import (
	"os"

	"github.com/dsmirnov/wordrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
