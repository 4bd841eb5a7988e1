package main

import (
	"os"

	"github.com/msto63/tiny/cmd/tiny/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
