package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tatianab/stranded/internal/models"
)

// Session aggregates an engine, the current game state and the transcript of
// one player. A Session is not safe for concurrent use.
type Session struct {
	ID string

	engine  *Engine
	state   models.GameState
	history []models.HistoryEntry
}

// NewSession starts a new game in a copy of world.
func NewSession(world *models.World, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	eng := NewEngine(world, logger.With(zap.String("session_id", id)))
	return &Session{
		ID:     id,
		engine: eng,
		state:  eng.NewGame(),
	}
}

// Submit processes input, applies the resulting state and records the turn.
// Empty input is ignored and not recorded.
func (s *Session) Submit(input string) (models.CommandResult, error) {
	result, err := s.engine.Process(input, s.state)
	if err != nil {
		return result, err
	}
	s.state = result.State
	if Parse(input).Action != "" {
		s.history = append(s.history, models.HistoryEntry{
			Command: input,
			Result:  result.Text,
			IsError: result.IsError,
		})
	}
	return result, nil
}

// State returns the current game state.
func (s *Session) State() models.GameState {
	return s.state
}

// History returns the turns played so far.
func (s *Session) History() []models.HistoryEntry {
	return s.history
}

// ClearHistory forgets the transcript without touching the game.
func (s *Session) ClearHistory() {
	s.history = nil
}

// World returns the session's world.
func (s *Session) World() *models.World {
	return s.engine.World()
}

// Intro describes where the player currently is, as look would.
func (s *Session) Intro() (string, error) {
	loc, err := s.engine.World().GetLocation(s.state.Location)
	if err != nil {
		return "", err
	}
	return s.engine.describe(loc, s.state), nil
}
