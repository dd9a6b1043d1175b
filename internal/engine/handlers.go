package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tatianab/stranded/internal/models"
)

func failure(text string, state models.GameState) (models.CommandResult, error) {
	return models.CommandResult{Text: text, State: state, IsError: true}, nil
}

func reply(text string, state models.GameState) (models.CommandResult, error) {
	return models.CommandResult{Text: text, State: state}, nil
}

func (e *Engine) handleHelp(r request) (models.CommandResult, error) {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, cmd := range e.registry.Commands() {
		if cmd.Help == "" {
			continue
		}
		usage := cmd.Usage
		if usage == "" {
			usage = cmd.Name
		}
		fmt.Fprintf(&b, "\n  - %s: %s", usage, cmd.Help)
	}
	b.WriteString("\n\nYou can also type a direction (north, south, east, west) to move.")
	return reply(b.String(), r.state)
}

func (e *Engine) handleLook(r request) (models.CommandResult, error) {
	return reply(e.describe(r.location, r.state), r.state)
}

// describe renders a location with the items lying there that the player does
// not hold, followed by its exits.
func (e *Engine) describe(loc *models.Location, state models.GameState) string {
	var b strings.Builder
	b.WriteString(loc.Description)

	var visible []string
	for _, id := range e.world.ItemsAt(loc.ID) {
		if !state.Holds(id) {
			visible = append(visible, id)
		}
	}
	if len(visible) > 0 {
		b.WriteString("\n\nYou can see:")
		for _, id := range visible {
			b.WriteString("\n- " + models.FormatName(id))
		}
	}

	b.WriteString("\n\nExits:")
	for _, exit := range loc.Exits {
		fmt.Fprintf(&b, "\n- %s to %s", exit.Direction, models.FormatName(exit.Target))
	}
	return b.String()
}

func (e *Engine) handleMove(r request) (models.CommandResult, error) {
	direction := r.command.Name
	if r.command.Name == "go" {
		if len(r.parsed.Args) == 0 {
			return failure("Go where? Please specify a direction.", r.state)
		}
		direction = r.parsed.Args[0]
	}

	target, ok := r.location.ExitTo(direction)
	if !ok {
		return failure(fmt.Sprintf("You can't go %s from here.", direction), r.state)
	}
	dest, err := e.world.GetLocation(target)
	if err != nil {
		return models.CommandResult{}, fmt.Errorf("exit %q from %q: %w", direction, r.location.ID, err)
	}

	next := r.state.Clone()
	next.Location = dest.ID
	next.Visited[dest.ID] = true
	return reply(e.describe(dest, next), next)
}

func (e *Engine) handleInventory(r request) (models.CommandResult, error) {
	if len(r.state.Inventory) == 0 {
		return reply("Your inventory is empty.", r.state)
	}

	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, id := range r.state.Inventory {
		desc := "Unknown item"
		if it, err := e.world.GetItem(id); err == nil {
			desc = it.Description
		}
		fmt.Fprintf(&b, "\n- %s: %s", models.FormatName(id), desc)
	}
	return reply(b.String(), r.state)
}

// held returns the first inventory entry name refers to.
func held(state models.GameState, name string) (string, bool) {
	for _, id := range state.Inventory {
		if models.MatchesName(id, name) {
			return id, true
		}
	}
	return "", false
}

func (e *Engine) handleTake(r request) (models.CommandResult, error) {
	name := r.parsed.Argument
	if name == "" {
		return failure("Take what?", r.state)
	}

	var item *models.Item
	for _, it := range e.world.Items() {
		if models.MatchesName(it.ID, name) {
			item = it
			break
		}
	}
	if item == nil {
		return failure(fmt.Sprintf("I don't see a %s here.", name), r.state)
	}
	display := models.FormatName(item.ID)
	if item.Location != r.state.Location {
		return failure(fmt.Sprintf("I don't see a %s here.", display), r.state)
	}
	if r.state.Holds(item.ID) {
		return failure(fmt.Sprintf("You already have the %s.", display), r.state)
	}

	// The item's recorded location stays as is; holding it hides it from look.
	next := r.state.Clone()
	next.Inventory = append(next.Inventory, item.ID)
	return reply(fmt.Sprintf("You pick up the %s.", display), next)
}

func (e *Engine) handleDrop(r request) (models.CommandResult, error) {
	name := r.parsed.Argument
	if name == "" {
		return failure("Drop what?", r.state)
	}

	id, ok := held(r.state, name)
	if !ok {
		return failure(fmt.Sprintf("You don't have a %s.", name), r.state)
	}
	if err := e.world.MoveItem(id, r.state.Location); err != nil {
		return models.CommandResult{}, fmt.Errorf("dropping %q: %w", id, err)
	}

	next := r.state.Clone()
	next.Inventory = slices.DeleteFunc(next.Inventory, func(s string) bool { return s == id })
	return reply(fmt.Sprintf("You drop the %s.", models.FormatName(id)), next)
}

func (e *Engine) handleExamine(r request) (models.CommandResult, error) {
	target := r.parsed.Argument
	if target == "" {
		return failure("Examine what?", r.state)
	}

	id, ok := held(r.state, target)
	if !ok {
		for _, here := range e.world.ItemsAt(r.state.Location) {
			if models.MatchesName(here, target) {
				id, ok = here, true
				break
			}
		}
	}
	if !ok {
		return failure(fmt.Sprintf("You don't see a %s here.", target), r.state)
	}

	it, err := e.world.GetItem(id)
	if err != nil {
		return failure(fmt.Sprintf("You don't see a %s here.", target), r.state)
	}
	return reply(fmt.Sprintf("%s: %s", models.FormatName(id), it.Description), r.state)
}

func healthBand(health int) string {
	switch {
	case health >= 75:
		return "Good"
	case health >= 50:
		return "Moderate"
	case health >= 25:
		return "Poor"
	default:
		return "Critical"
	}
}

func (e *Engine) handleStatus(r request) (models.CommandResult, error) {
	required := e.world.ComponentsRequired

	var objective string
	switch {
	case r.state.Progress == 0:
		objective = "Explore the area and find a way to repair your ship."
	case r.state.Progress < required:
		objective = "Continue gathering components to repair your ship."
	default:
		objective = "Return to your ship to complete repairs and launch!"
	}

	text := fmt.Sprintf("Health: %d%% (%s)\nMission Objective: %s\nProgress: %d/%d ship components installed",
		r.state.Health, healthBand(r.state.Health), objective, r.state.Progress, required)
	return reply(text, r.state)
}

func (e *Engine) handleClear(r request) (models.CommandResult, error) {
	return reply("Screen cleared.", r.state)
}

func (e *Engine) handleTheme(r request) (models.CommandResult, error) {
	return reply("The color theme is chosen by your terminal display.", r.state)
}

// handleRestart starts over, putting every item back where it began.
func (e *Engine) handleRestart() (models.CommandResult, error) {
	e.world.ResetItems()
	state := models.InitialState(e.world)
	start, err := e.world.GetLocation(state.Location)
	if err != nil {
		return models.CommandResult{}, fmt.Errorf("restarting: %w", err)
	}
	return models.CommandResult{
		Text:    "Starting a new game...\n\n" + start.Description,
		State:   state,
		Command: "restart",
	}, nil
}
