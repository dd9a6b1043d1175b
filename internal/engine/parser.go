package engine

import "strings"

// ParseResult holds the action and argument parsed from a line of input.
type ParseResult struct {
	// Action is the first word of the input, lowercased.
	Action string
	// Args are the remaining lowercased words.
	Args []string
	// Argument is Args joined by single spaces.
	Argument string
}

// Parse lowercases line and splits it on whitespace. Runs of whitespace inside
// the argument collapse to a single space.
//
// Postcondition: If line has no words, Action is empty.
func Parse(line string) ParseResult {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return ParseResult{}
	}

	result := ParseResult{Action: words[0]}
	if len(words) > 1 {
		result.Args = words[1:]
		result.Argument = strings.Join(result.Args, " ")
	}
	return result
}
