package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/scrapco/scrapledger/internal/commands"
)

func main() {
	// A missing .env is fine; the YAML config carries the defaults.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
