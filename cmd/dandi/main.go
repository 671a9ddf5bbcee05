package main

import (
	"log/slog"
	"os"

	"github.com/dwizi/dandi/internal/cli"
	"github.com/dwizi/dandi/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Warn("dotenv not loaded", "error", err)
	}
	if err := cli.NewRoot(logger).Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
