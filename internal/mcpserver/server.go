// Package mcpserver exposes a game session as an MCP tool over streamable HTTP.
package mcpserver

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/tatianab/stranded/internal/config"
	"github.com/tatianab/stranded/internal/engine"
	"github.com/tatianab/stranded/internal/models"
)

// CommandInput is the argument of the command tool.
type CommandInput struct {
	Command string `json:"command" jsonschema:"Game command to execute"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a new game before executing the command"`
}

// StateSummary is the part of the game state reported to tool callers.
type StateSummary struct {
	Location  string   `json:"location"`
	Inventory []string `json:"inventory"`
	Visited   []string `json:"visited"`
	Progress  int      `json:"progress"`
	Health    int      `json:"health"`
	GameOver  bool     `json:"game_over"`
	Won       bool     `json:"won"`
}

// CommandOutput is the result of the command tool.
type CommandOutput struct {
	Output  string       `json:"output" jsonschema:"Text shown to the player"`
	IsError bool         `json:"is_error" jsonschema:"Whether the command was not understood or not possible"`
	State   StateSummary `json:"state" jsonschema:"Summary of the current game state"`
}

// Summarize reports state in catalog order.
func Summarize(world *models.World, state models.GameState) StateSummary {
	visited := []string{}
	for _, loc := range world.Locations() {
		if state.Visited[loc.ID] {
			visited = append(visited, loc.ID)
		}
	}
	inventory := append([]string{}, state.Inventory...)
	return StateSummary{
		Location:  state.Location,
		Inventory: inventory,
		Visited:   visited,
		Progress:  state.Progress,
		Health:    state.Health,
		GameOver:  state.GameOver,
		Won:       state.Won,
	}
}

// Server serializes tool calls onto a single game session.
type Server struct {
	mu      sync.Mutex
	world   *models.World
	session *engine.Session
	logger  *zap.Logger
}

// NewServer creates a Server playing in world.
func NewServer(world *models.World, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		world:   world,
		session: engine.NewSession(world, logger),
		logger:  logger,
	}
}

// HandleCommand runs one command, starting a new game first when asked to.
func (s *Server) HandleCommand(_ context.Context, _ *mcp.CallToolRequest, input *CommandInput) (*mcp.CallToolResult, *CommandOutput, error) {
	if input == nil {
		input = &CommandInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Reset {
		s.session = engine.NewSession(s.world, s.logger)
		s.logger.Info("new game", zap.String("session_id", s.session.ID))
	}

	var (
		text    string
		isError bool
	)
	if strings.TrimSpace(input.Command) == "" {
		intro, err := s.session.Intro()
		if err != nil {
			return nil, nil, err
		}
		text = intro
	} else {
		result, err := s.session.Submit(input.Command)
		if err != nil {
			s.logger.Error("processing command", zap.String("command", input.Command), zap.Error(err))
			return nil, nil, err
		}
		text, isError = result.Text, result.IsError
	}

	return nil, &CommandOutput{
		Output:  text,
		IsError: isError,
		State:   Summarize(s.session.World(), s.session.State()),
	}, nil
}

// NewHandler builds the HTTP handler serving the MCP endpoint at cfg.Path,
// guarded by the configured origins and bearer token.
func NewHandler(server *Server, cfg config.MCPConfig) http.Handler {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "stranded",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a command to the Stranded text adventure and return the output plus a state summary.",
	}, server.HandleCommand)

	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless:    cfg.Stateless,
		JSONResponse: cfg.JSONResponse,
	})

	originSet := map[string]struct{}{}
	for _, origin := range cfg.Origins {
		originSet[origin] = struct{}{}
	}

	guarded := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAllowedOrigin(r, originSet) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if cfg.Token != "" && r.Header.Get("Authorization") != "Bearer "+cfg.Token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	})

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, guarded)
	return mux
}

// ListenAndServe serves the MCP endpoint until ctx is cancelled or the
// listener fails.
func ListenAndServe(ctx context.Context, server *Server, cfg config.MCPConfig) error {
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: NewHandler(server, cfg),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return httpServer.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

func isAllowedOrigin(r *http.Request, allowed map[string]struct{}) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	_, ok := allowed[origin]
	return ok
}
