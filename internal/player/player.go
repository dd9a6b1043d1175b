// Package player provides an automated player backed by Gemini that chooses
// the next command from what the game has said so far.
package player

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/stranded/internal/models"
)

//go:embed prompts/next_command.txt
var nextCommandPrompt string

var nextCommandTmpl = template.Must(template.New("next_command").Parse(nextCommandPrompt))

// recentTurns bounds how much transcript goes into each prompt.
const recentTurns = 8

type Player struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewPlayer(ctx context.Context, apiKey, modelName string) (*Player, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Player{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (p *Player) Close() {
	p.client.Close()
}

// Turn is what the player sees when choosing a command.
type Turn struct {
	// Help is the game's help listing.
	Help string
	// Current is the latest game output, usually a room description.
	Current  string
	State    models.GameState
	Required int
	History  []models.HistoryEntry
}

// Prompt renders the request sent to the model for t.
func Prompt(t Turn) (string, error) {
	history := t.History
	if len(history) > recentTurns {
		history = history[len(history)-recentTurns:]
	}

	inventory := make([]string, 0, len(t.State.Inventory))
	for _, id := range t.State.Inventory {
		inventory = append(inventory, models.FormatName(id))
	}

	data := struct {
		Help      string
		Location  string
		Inventory []string
		Progress  int
		Required  int
		Turns     []models.HistoryEntry
		Current   string
	}{
		Help:      t.Help,
		Location:  models.FormatName(t.State.Location),
		Inventory: inventory,
		Progress:  t.State.Progress,
		Required:  t.Required,
		Turns:     history,
		Current:   t.Current,
	}

	var buf bytes.Buffer
	if err := nextCommandTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NextCommand asks the model what to type next.
func (p *Player) NextCommand(ctx context.Context, t Turn) (string, error) {
	prompt, err := Prompt(t)
	if err != nil {
		return "", err
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return CleanCommand(string(text)), nil
}

// CleanCommand strips the decoration models like to add around a command:
// code fences, a leading prompt marker, quotes and any lines after the first.
func CleanCommand(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ">")
	s = strings.Trim(s, " \t\"'`")
	return s
}
