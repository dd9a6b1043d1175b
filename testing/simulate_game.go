package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/tatianab/stranded/internal/config"
	"github.com/tatianab/stranded/internal/engine"
	"github.com/tatianab/stranded/internal/models"
	"github.com/tatianab/stranded/internal/observability"
	"github.com/tatianab/stranded/internal/player"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireGemini(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	world, err := models.LoadWorld(cfg.World.Path)
	if err != nil {
		logger.Fatal("loading world", zap.Error(err))
	}

	// The game itself is deterministic; only the player is an LLM.
	session := engine.NewSession(world, logger)

	p, err := player.NewPlayer(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Fatal("creating player", zap.Error(err))
	}
	defer p.Close()

	help, err := session.Submit("help")
	if err != nil {
		logger.Fatal("reading help", zap.Error(err))
	}
	session.ClearHistory()

	current, err := session.Intro()
	if err != nil {
		logger.Fatal("describing start", zap.Error(err))
	}
	fmt.Printf("%s\n\n", current)

	for turn := 1; turn <= cfg.Simulation.MaxTurns; turn++ {
		fmt.Printf("--- Turn %d ---\n", turn)

		action, err := p.NextCommand(ctx, player.Turn{
			Help:     help.Text,
			Current:  current,
			State:    session.State(),
			Required: world.ComponentsRequired,
			History:  session.History(),
		})
		if err != nil {
			fmt.Printf("Error choosing command: %v\n", err)
			break
		}
		fmt.Printf("Player: %s\n", action)

		result, err := session.Submit(action)
		if err != nil {
			logger.Error("processing command", zap.String("command", action), zap.Error(err))
			break
		}
		current = result.Text
		fmt.Printf("%s\n\n", result.Text)

		state := session.State()
		fmt.Printf("Location=%s Progress=%d/%d Inventory=%v\n\n",
			state.Location, state.Progress, world.ComponentsRequired, state.Inventory)

		if state.GameOver {
			if state.Won {
				fmt.Println("Game Ended: Player Won!")
			} else {
				fmt.Println("Game Ended: Player Lost!")
			}
			break
		}
	}

	logger.Info("simulation finished",
		zap.String("session_id", session.ID),
		zap.Int("turns", len(session.History())),
	)
}
