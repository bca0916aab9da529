// internal/bot/engine.go
// Package bot implements the assistant itself: the profile dialogue, the
// logging operations and the progress report. It is transport-agnostic;
// both the Telegram poller and the HTTP tool surface drive the same
// Engine.
package bot

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"health-bot/internal/lookup"
	"health-bot/internal/models"
	"health-bot/internal/storage"
)

// Input bounds shared by dialogue steps and logging commands.
const (
	maxWeightKg       = 400
	maxHeightCm       = 250
	maxAgeYears       = 120
	maxActivityMin    = 1000
	minCalorieGoal    = 800
	maxCalorieGoal    = 6000
	maxWaterPerLogML  = 5000
	maxGramsPerLog    = 5000
	maxWorkoutMinutes = 1000
)

// Engine owns the per-user state transitions. Every entry point pins the
// user's record for its whole duration, so two events for the same user
// never interleave their read-modify-write.
type Engine struct {
	store   *storage.Store
	weather lookup.TemperatureResolver
	food    lookup.FoodResolver
	log     zerolog.Logger
}

func New(store *storage.Store, weather lookup.TemperatureResolver, food lookup.FoodResolver, logger zerolog.Logger) *Engine {
	return &Engine{
		store:   store,
		weather: weather,
		food:    food,
		log:     logger,
	}
}

// Handle processes one inbound chat message for a user and returns the
// reply text. Commands dispatch regardless of any open dialogue; free
// text is routed to the open dialogue step, if there is one.
func (e *Engine) Handle(ctx context.Context, userID int64, text string) string {
	u := e.store.Ensure(userID)
	u.Lock()
	defer u.Unlock()

	text = strings.TrimSpace(text)
	if cmd, args, ok := splitCommand(text); ok {
		return e.dispatchCommand(ctx, u, cmd, args)
	}
	if u.Step != models.StepNone {
		return e.advanceDialogue(ctx, u, text)
	}
	return msgUnknown
}

func (e *Engine) dispatchCommand(ctx context.Context, u *models.User, cmd, args string) string {
	switch cmd {
	case "/start":
		return msgStart
	case "/help":
		return msgHelp
	case "/set_profile":
		return e.startProfile(u)
	case "/log_water":
		return e.logWater(u, args)
	case "/log_food":
		return e.logFood(ctx, u, args)
	case "/log_workout":
		return e.logWorkout(u, args)
	case "/check_progress":
		return e.checkProgress(u)
	default:
		e.log.Debug().Int64("user_id", u.ID).Str("command", cmd).Msg("unknown command")
		return msgUnknown
	}
}

// splitCommand splits "/log_water 300" into the command and its argument
// tail. Group-chat mentions like "/start@SomeBot" are normalised away.
func splitCommand(text string) (cmd, args string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", "", false
	}
	cmd = fields[0]
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	args = strings.TrimSpace(strings.TrimPrefix(text, fields[0]))
	return cmd, args, true
}

// parseDecimal accepts both "82.5" and "82,5". ParseFloat also accepts
// "nan" and "inf", which would slip through every range check (NaN
// compares false against any bound), so non-finite values are rejected
// here rather than at each call site.
func parseDecimal(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
