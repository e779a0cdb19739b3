package main

import (
	"context"
	"os"

	"github.com/sushihentaime/blogistui/internal/devserver"
	"github.com/sushihentaime/blogistui/pkg/logger"
)

func main() {
	cfg, err := devserver.LoadConfig(context.Background())
	if err != nil {
		l := logger.Init(logger.Options{Pretty: true})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Environment == "development",
		Output: os.Stdout,
	})

	store, err := devserver.NewStore(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DatabasePath).Msg("failed to open the database")
	}
	defer store.Close()

	app := devserver.New(cfg, store, log)

	err = app.Serve()
	if err != nil {
		log.Error().Err(err).Msg("failed to start the server")
		store.Close()
		os.Exit(1)
	}
}
