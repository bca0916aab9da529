// internal/server/server.go
// Package server exposes the assistant's logging operations as MCP-style
// tools over HTTP, so agents and scripts can drive the same engine the
// chat transport does.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"health-bot/internal/bot"
	"health-bot/internal/storage"
)

type Config struct {
	Host string
	Port int
}

type Server struct {
	httpServer *http.Server
	engine     *bot.Engine
	store      *storage.Store
	log        zerolog.Logger
}

func New(cfg Config, engine *bot.Engine, store *storage.Store, logger zerolog.Logger) *Server {
	s := &Server{
		engine: engine,
		store:  store,
		log:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleTool)
	mux.HandleFunc("/healthz", s.handleHealthz)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start blocks until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("tool server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// handleTool decodes a CallToolRequest and routes it by tool name.
func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	logger := s.log.With().
		Str("correlation_id", uuid.New().String()).
		Str("tool", request.Name).
		Logger()

	handler, ok := s.tools()[request.Name]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	result, err := handler(r.Context(), &request)
	if err != nil {
		logger.Warn().Err(err).Msg("tool call rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"users":  s.store.Count(),
	})
}

func textResult(text string) *protocol.CallToolResult {
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

func jsonResult(data any) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return textResult(string(jsonBytes)), nil
}
