package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	w, err := DefaultWorld()
	require.NoError(t, err)

	s := InitialState(w)
	assert.Equal(t, "ship", s.Location)
	assert.Empty(t, s.Inventory)
	assert.NotNil(t, s.Inventory)
	assert.Equal(t, map[string]bool{"ship": true}, s.Visited)
	assert.Equal(t, 0, s.Progress)
	assert.Equal(t, 100, s.Health)
	assert.False(t, s.GameOver)
	assert.False(t, s.Won)
}

func TestGameState_CloneIsIndependent(t *testing.T) {
	s := GameState{
		Location:  "cave",
		Inventory: []string{"powerCell"},
		Visited:   map[string]bool{"ship": true, "cave": true},
		Health:    80,
	}
	c := s.Clone()
	c.Inventory = append(c.Inventory, "repairKit")
	c.Inventory[0] = "communicator"
	c.Visited["forest"] = true

	assert.Equal(t, []string{"powerCell"}, s.Inventory)
	assert.Len(t, s.Visited, 2)
	assert.Equal(t, s.Location, c.Location)
	assert.Equal(t, s.Health, c.Health)
}

func TestGameState_CloneNilInventory(t *testing.T) {
	c := GameState{}.Clone()
	assert.NotNil(t, c.Inventory)
	assert.NotNil(t, c.Visited)
}

func TestGameState_Holds(t *testing.T) {
	s := GameState{Inventory: []string{"powerCell"}}
	assert.True(t, s.Holds("powerCell"))
	assert.False(t, s.Holds("repairKit"))
}
