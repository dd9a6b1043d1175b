package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tatianab/stranded/internal/models"
)

const (
	gameWonText  = `Game complete! Type "restart" to play again.`
	gameLostText = `Game over! Type "restart" to try again.`
)

// request is everything a handler needs to answer one command.
type request struct {
	parsed   ParseResult
	command  *Command
	state    models.GameState
	location *models.Location
}

type handlerFunc func(r request) (models.CommandResult, error)

// Engine interprets commands for one game session. It owns a private copy of
// the world's item table, which drop and restart rewrite.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	world    *models.World
	registry *Registry
	handlers map[string]handlerFunc
	effects  map[string]useEffect
	logger   *zap.Logger
}

// NewEngine creates an Engine playing in a copy of world.
func NewEngine(world *models.World, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		world:    world.Clone(),
		registry: DefaultRegistry(),
		effects:  defaultEffects(),
		logger:   logger,
	}
	e.handlers = map[string]handlerFunc{
		HandlerHelp:      e.handleHelp,
		HandlerLook:      e.handleLook,
		HandlerMove:      e.handleMove,
		HandlerInventory: e.handleInventory,
		HandlerTake:      e.handleTake,
		HandlerUse:       e.handleUse,
		HandlerExamine:   e.handleExamine,
		HandlerDrop:      e.handleDrop,
		HandlerStatus:    e.handleStatus,
		HandlerClear:     e.handleClear,
		HandlerTheme:     e.handleTheme,
	}
	return e
}

// World returns the engine's world, including its current item locations.
func (e *Engine) World() *models.World {
	return e.world
}

// Registry returns the commands the engine understands.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// NewGame returns the canonical initial state.
func (e *Engine) NewGame() models.GameState {
	return models.InitialState(e.world)
}

// Process interprets one line of input against state.
//
// Mistakes by the player come back as a CommandResult with IsError set. A
// non-nil error means the state refers to a location the world does not
// define, which is a bug in the world or the caller, not the player.
func (e *Engine) Process(input string, state models.GameState) (models.CommandResult, error) {
	parsed := Parse(input)
	if parsed.Action == "" {
		return models.CommandResult{State: state}, nil
	}

	cmd, known := e.registry.Resolve(parsed.Action)

	if state.GameOver {
		if known && cmd.Handler == HandlerRestart {
			return e.handleRestart()
		}
		text := gameLostText
		if state.Won {
			text = gameWonText
		}
		return models.CommandResult{Text: text, State: state}, nil
	}

	if !known || cmd.Handler == HandlerRestart {
		e.logger.Debug("unrecognized command", zap.String("input", input))
		return models.CommandResult{
			Text:    fmt.Sprintf("I don't understand '%s'. Type 'help' for a list of commands.", input),
			State:   state,
			IsError: true,
		}, nil
	}

	loc, err := e.world.GetLocation(state.Location)
	if err != nil {
		e.logger.Error("current location missing from world",
			zap.String("location", state.Location),
			zap.Error(err),
		)
		return models.CommandResult{State: state}, fmt.Errorf("processing %q: %w", parsed.Action, err)
	}

	handle, ok := e.handlers[cmd.Handler]
	if !ok {
		return models.CommandResult{State: state}, fmt.Errorf("command %q: no handler %q", cmd.Name, cmd.Handler)
	}

	result, err := handle(request{parsed: parsed, command: cmd, state: state, location: loc})
	if err != nil {
		e.logger.Error("handling command", zap.String("command", cmd.Name), zap.Error(err))
		return models.CommandResult{State: state}, err
	}
	result.Command = cmd.Name

	e.logger.Debug("processed command",
		zap.String("command", cmd.Name),
		zap.String("argument", parsed.Argument),
		zap.String("location", result.State.Location),
		zap.Bool("error", result.IsError),
	)
	return result, nil
}
