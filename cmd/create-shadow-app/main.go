package main

import (
	"os"

	"github.com/shadow-js/create-shadow-app/internal/cli"
)

func main() {
	// Execute has already reported the error on stderr.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
