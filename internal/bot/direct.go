// internal/bot/direct.go
package bot

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Direct operations bypass the chat dialogue for programmatic callers
// (the HTTP tool surface). They share the credit helpers with the chat
// paths, so validation, preconditions and mutations stay identical.

var (
	// ErrProfileNotConfigured is returned while either goal is unset.
	ErrProfileNotConfigured = errors.New("profile is not configured yet")

	// ErrFoodNotFound is returned when no candidate product qualifies.
	ErrFoodNotFound = errors.New("no matching food product found")
)

// Snapshot is a read-only copy of a user's record for reporting.
type Snapshot struct {
	UserID             int64    `json:"user_id"`
	WeightKg           *float64 `json:"weight_kg,omitempty"`
	HeightCm           *float64 `json:"height_cm,omitempty"`
	AgeYears           *int     `json:"age_years,omitempty"`
	ActivityMinPerDay  int      `json:"activity_min_per_day"`
	City               string   `json:"city,omitempty"`
	WaterGoalML        *int     `json:"water_goal_ml,omitempty"`
	CalorieGoalKcal    *int     `json:"calorie_goal_kcal,omitempty"`
	ManualCalorieGoal  bool     `json:"manual_calorie_goal"`
	LoggedWaterML      float64  `json:"logged_water_ml"`
	LoggedCaloriesKcal float64  `json:"logged_calories_kcal"`
	BurnedCaloriesKcal float64  `json:"burned_calories_kcal"`
	DialogueStep       string   `json:"dialogue_step"`
}

// LogWaterDirect credits drunk water for a user.
func (e *Engine) LogWaterDirect(userID int64, ml int) (string, error) {
	u := e.store.Ensure(userID)
	u.Lock()
	defer u.Unlock()

	if u.WaterGoalML == nil {
		return "", ErrProfileNotConfigured
	}
	if ml <= 0 || ml > maxWaterPerLogML {
		return "", fmt.Errorf("water amount must be between 1 and %d ml", maxWaterPerLogML)
	}
	return e.creditWater(u, ml), nil
}

// LogFoodDirect resolves a food query and credits eaten calories in one
// call, collapsing the chat flow's two steps.
func (e *Engine) LogFoodDirect(ctx context.Context, userID int64, query string, grams float64) (string, error) {
	u := e.store.Ensure(userID)
	u.Lock()
	defer u.Unlock()

	if u.CalorieGoalKcal == nil {
		return "", ErrProfileNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("food query is required")
	}
	if math.IsNaN(grams) || grams <= 0 || grams > maxGramsPerLog {
		return "", fmt.Errorf("grams must be between 1 and %d", maxGramsPerLog)
	}

	info, ok := e.food.FoodEnergy(ctx, query)
	if !ok {
		return "", ErrFoodNotFound
	}
	return e.creditFood(u, info.Name, info.KcalPer100g, grams), nil
}

// LogWorkoutDirect credits a workout.
func (e *Engine) LogWorkoutDirect(userID int64, workoutType string, minutes int) (string, error) {
	u := e.store.Ensure(userID)
	u.Lock()
	defer u.Unlock()

	if u.WaterGoalML == nil || u.CalorieGoalKcal == nil {
		return "", ErrProfileNotConfigured
	}
	if workoutType == "" {
		return "", fmt.Errorf("workout type is required")
	}
	if minutes <= 0 || minutes > maxWorkoutMinutes {
		return "", fmt.Errorf("minutes must be between 1 and %d", maxWorkoutMinutes)
	}
	return e.creditWorkout(u, workoutType, minutes), nil
}

// Progress renders the progress report for a user.
func (e *Engine) Progress(userID int64) (string, error) {
	u := e.store.Ensure(userID)
	u.Lock()
	defer u.Unlock()

	if u.WaterGoalML == nil || u.CalorieGoalKcal == nil {
		return "", ErrProfileNotConfigured
	}
	return e.progressReport(u), nil
}

// ProfileSnapshot copies the record for reporting. Pointer fields are
// duplicated so callers cannot reach back into live state.
func (e *Engine) ProfileSnapshot(userID int64) Snapshot {
	u := e.store.Ensure(userID)
	u.Lock()
	defer u.Unlock()

	return Snapshot{
		UserID:             u.ID,
		WeightKg:           copyPtr(u.WeightKg),
		HeightCm:           copyPtr(u.HeightCm),
		AgeYears:           copyPtr(u.AgeYears),
		ActivityMinPerDay:  u.ActivityMin,
		City:               u.City,
		WaterGoalML:        copyPtr(u.WaterGoalML),
		CalorieGoalKcal:    copyPtr(u.CalorieGoalKcal),
		ManualCalorieGoal:  u.ManualCalorieGoal,
		LoggedWaterML:      u.LoggedWaterML,
		LoggedCaloriesKcal: u.LoggedCaloriesKcal,
		BurnedCaloriesKcal: u.BurnedCaloriesKcal,
		DialogueStep:       u.Step.String(),
	}
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
