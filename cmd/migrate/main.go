package main

import (
	"flag"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/app"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dsn := flag.String("dsn", "", "database DSN, overrides the config file")
	flag.Parse()

	if *dsn == "" {
		config, err := app.LoadConfig(*configPath)
		if err != nil {
			logger.Error.Fatalf("Failed to load config: %v", err)
		}
		*dsn = config.Database.DSN
	}

	// opening a store applies any pending migrations
	store, err := app.NewStore(*dsn)
	if err != nil {
		logger.Error.Fatalf("Failed to migrate: %v", err)
	}
	defer store.Close()

	logger.Info.Println("Schema is up to date")
}
