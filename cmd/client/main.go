package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/fitcoach/fitcoach/internal/buildinfo"
	"github.com/fitcoach/fitcoach/internal/client/cli"
	"github.com/fitcoach/fitcoach/internal/client/config"
	"github.com/fitcoach/fitcoach/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
