package engine

import (
	"fmt"
	"slices"

	"github.com/tatianab/stranded/internal/models"
)

const victoryText = "With the ship's systems repaired, the power cell installed, and the alien artifact providing navigation data, your ship is ready for launch! You've successfully completed your mission!"

// snapshot selects which inventory a win condition is tested against.
type snapshot int

const (
	// beforeUse is the inventory the player held when typing the command.
	beforeUse snapshot = iota
	// afterUse is the inventory with the used component removed.
	afterUse
)

// inventoryCondition requires item to be held (or not) in one snapshot.
type inventoryCondition struct {
	item string
	in   snapshot
	held bool
}

// install describes a ship component consumed at the goal location.
type install struct {
	text    string
	pending string
	// wins lists what the inventory must look like, besides enough progress,
	// for this install to finish the game. Each component has its own list
	// and the lists are deliberately not symmetric.
	wins []inventoryCondition
}

func (in install) completes(before, after []string) bool {
	for _, c := range in.wins {
		inv := before
		if c.in == afterUse {
			inv = after
		}
		if slices.Contains(inv, c.item) != c.held {
			return false
		}
	}
	return true
}

// useEffect is what using one particular item does.
type useEffect struct {
	// component is set for items installed at the goal location.
	component *install
	// at holds messages for specific locations. They change nothing.
	at map[string]string
	// otherwise is shown everywhere else. It changes nothing.
	otherwise string
}

func defaultEffects() map[string]useEffect {
	return map[string]useEffect{
		"repairKit": {
			component: &install{
				text:    "You use the repair kit to fix some of the ship's systems.",
				pending: "You'll need more components to fully repair the ship.",
				wins: []inventoryCondition{
					{item: "powerCell", in: beforeUse, held: true},
					{item: "alienArtifact", in: beforeUse, held: true},
				},
			},
			otherwise: "The repair kit would be more useful at your ship.",
		},
		"powerCell": {
			component: &install{
				text:    "You install the power cell into the ship's main reactor. The lights flicker on!",
				pending: "The ship is gaining power, but you'll need more components to fully repair it.",
				wins: []inventoryCondition{
					{item: "alienArtifact", in: afterUse, held: true},
					{item: "repairKit", in: beforeUse, held: false},
				},
			},
			otherwise: "The power cell would be more useful at your ship.",
		},
		"alienArtifact": {
			component: &install{
				text:    "You connect the alien artifact to the ship's navigation system. The star charts update with new information!",
				pending: "The navigation system is working, but you'll need more components to fully repair the ship.",
				wins: []inventoryCondition{
					{item: "powerCell", in: afterUse, held: false},
					{item: "repairKit", in: afterUse, held: false},
				},
			},
			at: map[string]string{
				"pyramid": "The artifact glows brightly in response to the symbols on the pyramid walls. Strange patterns appear, possibly a map of some kind.",
			},
			otherwise: "Nothing happens when you use the artifact here.",
		},
		"communicator": {
			otherwise: "You attempt to call for help, but only static comes through. It seems the communicator is damaged or out of range.",
		},
	}
}

func (e *Engine) handleUse(r request) (models.CommandResult, error) {
	name := r.parsed.Argument
	if name == "" {
		return failure("Use what?", r.state)
	}

	id, ok := held(r.state, name)
	if !ok {
		return failure(fmt.Sprintf("You don't have a %s.", name), r.state)
	}

	effect, ok := e.effects[id]
	if !ok {
		return reply(fmt.Sprintf("You're not sure how to use the %s here.", models.FormatName(id)), r.state)
	}

	if effect.component != nil && r.state.Location == e.world.GoalLocation {
		return e.installComponent(id, *effect.component, r.state)
	}
	if text, ok := effect.at[r.state.Location]; ok {
		return reply(text, r.state)
	}
	return reply(effect.otherwise, r.state)
}

func (e *Engine) installComponent(id string, in install, state models.GameState) (models.CommandResult, error) {
	before := state.Inventory

	next := state.Clone()
	next.Inventory = slices.DeleteFunc(next.Inventory, func(s string) bool { return s == id })
	next.Progress++

	text := in.text
	if next.Progress >= e.world.ComponentsRequired && in.completes(before, next.Inventory) {
		next.GameOver = true
		next.Won = true
		text += "\n\n" + victoryText
	} else {
		text += "\n\n" + in.pending
	}
	return reply(text, next)
}
