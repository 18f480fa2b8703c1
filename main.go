package main

import (
	"os"

	"github.com/sopmaster25-create/sopmaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
