package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/tempchat/internal/client/cli"
	"github.com/dmitrijs2005/tempchat/internal/client/config"
	"github.com/dmitrijs2005/tempchat/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
