// Package main runs the game as an MCP tool server over streamable HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tatianab/stranded/internal/config"
	"github.com/tatianab/stranded/internal/mcpserver"
	"github.com/tatianab/stranded/internal/models"
	"github.com/tatianab/stranded/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	world, err := models.LoadWorld(cfg.World.Path)
	if err != nil {
		logger.Fatal("loading world", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting MCP server",
		zap.String("addr", cfg.MCP.Addr),
		zap.String("path", cfg.MCP.Path),
		zap.Bool("stateless", cfg.MCP.Stateless),
	)
	if err := mcpserver.ListenAndServe(ctx, mcpserver.NewServer(world, logger), cfg.MCP); err != nil {
		logger.Fatal("serving MCP", zap.Error(err))
	}
	logger.Info("MCP server stopped")
}
