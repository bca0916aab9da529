// internal/server/tools.go
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
)

type LogWaterParams struct {
	UserID   int64 `json:"user_id" description:"Telegram user id the entry belongs to"`
	AmountML int   `json:"amount_ml" description:"Amount of water drunk, in ml (1..5000)"`
}

type LogFoodParams struct {
	UserID int64   `json:"user_id" description:"Telegram user id the entry belongs to"`
	Query  string  `json:"query" description:"Free-text food name to look up"`
	Grams  float64 `json:"grams" description:"Amount eaten, in grams (1..5000)"`
}

type LogWorkoutParams struct {
	UserID      int64  `json:"user_id" description:"Telegram user id the entry belongs to"`
	WorkoutType string `json:"workout_type" description:"Free-text workout type, e.g. 'run' or 'hot yoga'"`
	Minutes     int    `json:"minutes" description:"Workout duration in minutes (1..1000)"`
}

type UserParams struct {
	UserID int64 `json:"user_id" description:"Telegram user id"`
}

type toolHandler func(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

func (s *Server) tools() map[string]toolHandler {
	return map[string]toolHandler{
		"log_water":      s.handleLogWater,
		"log_food":       s.handleLogFood,
		"log_workout":    s.handleLogWorkout,
		"check_progress": s.handleCheckProgress,
		"get_profile":    s.handleGetProfile,
	}
}

// extractParams safely extracts parameters from the request arguments.
func extractParams(req *protocol.CallToolRequest, target any) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal parameters: %w", err)
	}
	return nil
}

func (s *Server) handleLogWater(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params LogWaterParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if params.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}

	msg, err := s.engine.LogWaterDirect(params.UserID, params.AmountML)
	if err != nil {
		return nil, err
	}
	return textResult(msg), nil
}

func (s *Server) handleLogFood(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params LogFoodParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if params.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}

	msg, err := s.engine.LogFoodDirect(ctx, params.UserID, params.Query, params.Grams)
	if err != nil {
		return nil, err
	}
	return textResult(msg), nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params LogWorkoutParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if params.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}

	msg, err := s.engine.LogWorkoutDirect(params.UserID, params.WorkoutType, params.Minutes)
	if err != nil {
		return nil, err
	}
	return textResult(msg), nil
}

func (s *Server) handleCheckProgress(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params UserParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if params.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}

	report, err := s.engine.Progress(params.UserID)
	if err != nil {
		return nil, err
	}
	return textResult(report), nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params UserParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if params.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}

	return jsonResult(s.engine.ProfileSnapshot(params.UserID))
}
