// Package engine interprets player commands against a world and game state.
package engine

// Handler identifiers mapping commands to engine handlers.
const (
	HandlerHelp      = "help"
	HandlerLook      = "look"
	HandlerMove      = "move"
	HandlerInventory = "inventory"
	HandlerTake      = "take"
	HandlerUse       = "use"
	HandlerExamine   = "examine"
	HandlerDrop      = "drop"
	HandlerStatus    = "status"
	HandlerClear     = "clear"
	HandlerTheme     = "theme"
	HandlerRestart   = "restart"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage is how the command is written in the help listing. Defaults to Name.
	Usage string
	// Help is the short help text. Commands without help are not listed.
	Help string
	// Handler selects the engine handler.
	Handler string
}

// BuiltinCommands returns every command the interpreter understands, in the
// order the help listing shows them.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "help", Help: "Show this help message", Handler: HandlerHelp},
		{Name: "look", Help: "Describe your current surroundings", Handler: HandlerLook},
		{Name: "go", Aliases: []string{"move"}, Usage: "go [direction]", Help: "Move in a direction (north, south, east, west)", Handler: HandlerMove},
		{Name: "inventory", Aliases: []string{"i"}, Help: "Check your inventory", Handler: HandlerInventory},
		{Name: "take", Aliases: []string{"get", "pickup"}, Usage: "take [item]", Help: "Pick up an item", Handler: HandlerTake},
		{Name: "drop", Usage: "drop [item]", Help: "Drop an item from your inventory", Handler: HandlerDrop},
		{Name: "use", Usage: "use [item]", Help: "Use an item", Handler: HandlerUse},
		{Name: "examine", Aliases: []string{"inspect"}, Usage: "examine [item]", Help: "Examine an item or object", Handler: HandlerExamine},
		{Name: "health", Aliases: []string{"status"}, Help: "Check your health status", Handler: HandlerStatus},
		{Name: "clear", Help: "Clear the terminal screen", Handler: HandlerClear},
		{Name: "theme", Help: "Change terminal color theme", Handler: HandlerTheme},

		// Typing a direction on its own moves that way.
		{Name: "north", Handler: HandlerMove},
		{Name: "south", Handler: HandlerMove},
		{Name: "east", Handler: HandlerMove},
		{Name: "west", Handler: HandlerMove},
		{Name: "enter", Handler: HandlerMove},

		{Name: "restart", Handler: HandlerRestart},
	}
}
