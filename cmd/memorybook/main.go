package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/memorybook/internal/cli"
	"github.com/dmitrijs2005/memorybook/internal/config"
	"github.com/dmitrijs2005/memorybook/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	dataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		log.Fatalf("data dir: %v", err)
	}
	cfg.DataDir = dataDir

	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if zl, ok := logger.(*logging.ZapLogger); ok {
		defer zl.Sync()
	}

	ctx := context.Background()
	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
