package main

import (
	"errors"
	"os"

	"github.com/pfw-dev/pfw/internal/commands"
	"github.com/pfw-dev/pfw/internal/query"
)

func main() {
	rootCmd := commands.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, query.ErrInsufficientData) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
