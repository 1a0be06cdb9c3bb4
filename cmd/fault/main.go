package main

import (
	"os"

	"github.com/msto63/fault/cmd/fault/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
