// Command samples exports the entity test samples as JSON.
//
// Usage:
//
//	samples [-c config.json] [-e authority,user] [-o dir] [-indent=false] [-l debug]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nimdaved/toolrent/internal/exporter"
	"github.com/nimdaved/toolrent/internal/exporter/config"
	"github.com/nimdaved/toolrent/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := exporter.New(cfg, logger, os.Stdout).Run(ctx); err != nil {
		logger.Error(ctx, "export failed", "error", err)
		stop()
		os.Exit(1)
	}
}
