package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/pietos/pietos-cli/internal/cli"
	"github.com/pietos/pietos-cli/internal/config"
	"github.com/pietos/pietos-cli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := logging.NewSlogLogger(slog.New(handler)).With("client", uuid.NewString())

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
