package main

import (
	"os"

	"github.com/bnema/pistactl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
