package main

import (
	"os"

	"github.com/cleared-dev/pf2fa/internal/commands"
	"github.com/cleared-dev/pf2fa/internal/logger"
)

func main() {
	log := logger.New(logger.Config{Out: os.Stderr})

	if err := commands.NewRootCommand(log).Execute(); err != nil {
		os.Exit(1)
	}
}
