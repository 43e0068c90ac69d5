package main

import (
	"os"

	"github.com/phpup/phpup-tui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
