package main

import (
	"log/slog"
	"os"

	"issue-dataset/packages/cli"

	"github.com/joho/godotenv"
)

// version will be set at build time
var version = "dev"

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found")
	}

	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
