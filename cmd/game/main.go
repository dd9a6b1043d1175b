package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tatianab/stranded/internal/config"
	"github.com/tatianab/stranded/internal/engine"
	"github.com/tatianab/stranded/internal/models"
	"github.com/tatianab/stranded/internal/observability"
	"github.com/tatianab/stranded/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	plain := flag.Bool("plain", false, "use a line-oriented prompt instead of the full-screen UI")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	interactive := !*plain && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	// Log lines would tear up the full-screen UI unless they go to a file.
	logger := zap.NewNop()
	if !interactive || !observability.WritesToTerminal(cfg.Logging) {
		logger, err = observability.NewLogger(cfg.Logging)
		if err != nil {
			fmt.Printf("Error creating logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	world, err := models.LoadWorld(cfg.World.Path)
	if err != nil {
		fmt.Printf("Error loading world: %v\n", err)
		os.Exit(1)
	}

	session := engine.NewSession(world, logger)
	logger.Info("starting game",
		zap.String("session_id", session.ID),
		zap.Bool("interactive", interactive),
	)

	if interactive {
		err = tui.Run(session)
	} else {
		err = tui.RunPlain(session, os.Stdin, os.Stdout)
	}
	if err != nil {
		logger.Error("game ended with error", zap.Error(err))
		fmt.Printf("Error running game: %v\n", err)
		os.Exit(1)
	}
}
