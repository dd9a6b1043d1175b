package models

import (
	"errors"
	"slices"
)

// ErrNotFound is returned when a location or item id is not part of the world.
var ErrNotFound = errors.New("not found")

// Exit is a directed passage from one location to another.
type Exit struct {
	Direction string `yaml:"direction"`
	Target    string `yaml:"target"`
}

// Location is a place in the world. Locations never change after loading.
type Location struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Exits       []Exit `yaml:"exits"`
}

// ExitTo returns the destination reached by going in direction.
func (l *Location) ExitTo(direction string) (string, bool) {
	for _, e := range l.Exits {
		if e.Direction == direction {
			return e.Target, true
		}
	}
	return "", false
}

// Item is something the player can find, carry, drop and use.
//
// Location is authoritative for where the item lies while it is not held.
// Whether the player holds it is decided by GameState.Inventory, so taking an
// item leaves Location untouched and only dropping rewrites it.
type Item struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`

	home string
}

// GameState is the per-session progress of a player. Handlers never mutate a
// GameState they were given; they return a modified Clone.
type GameState struct {
	Location  string          `yaml:"location"`
	Inventory []string        `yaml:"inventory"`
	Visited   map[string]bool `yaml:"visited"`
	Progress  int             `yaml:"progress"`
	Health    int             `yaml:"health"`
	GameOver  bool            `yaml:"game_over"`
	Won       bool            `yaml:"won"`
}

// InitialState returns the canonical state a new game starts in.
func InitialState(w *World) GameState {
	return GameState{
		Location:  w.Start,
		Inventory: []string{},
		Visited:   map[string]bool{w.Start: true},
		Progress:  0,
		Health:    100,
	}
}

// Clone returns a deep copy of s.
func (s GameState) Clone() GameState {
	c := s
	c.Inventory = slices.Clone(s.Inventory)
	if c.Inventory == nil {
		c.Inventory = []string{}
	}
	c.Visited = make(map[string]bool, len(s.Visited))
	for k, v := range s.Visited {
		c.Visited[k] = v
	}
	return c
}

// Holds reports whether itemID is in the inventory.
func (s GameState) Holds(itemID string) bool {
	return slices.Contains(s.Inventory, itemID)
}

// CommandResult is the outcome of processing one line of input.
type CommandResult struct {
	// Text is shown to the player and may span several lines.
	Text string
	// State replaces the caller's state, even when IsError is set.
	State GameState
	// IsError marks input that did not advance the game. Display only.
	IsError bool
	// Command is the canonical command that handled the input, empty when
	// the input was not understood.
	Command string
}

// HistoryEntry represents a single turn in the transcript kept by callers.
type HistoryEntry struct {
	Command string `yaml:"command"`
	Result  string `yaml:"result"`
	IsError bool   `yaml:"is_error,omitempty"`
}
