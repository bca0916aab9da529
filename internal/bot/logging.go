// internal/bot/logging.go
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"health-bot/internal/health"
	"health-bot/internal/models"
)

// logWater records an amount of drunk water. Validation happens in full
// before any mutation.
func (e *Engine) logWater(u *models.User, args string) string {
	if u.WaterGoalML == nil {
		return msgConfigureFirst
	}

	fields := strings.Fields(args)
	if len(fields) != 1 {
		return msgWaterUsage
	}
	ml, err := strconv.Atoi(fields[0])
	if err != nil || ml <= 0 || ml > maxWaterPerLogML {
		return msgBadWater
	}

	return e.creditWater(u, ml)
}

func (e *Engine) creditWater(u *models.User, ml int) string {
	u.LoggedWaterML += float64(ml)
	left := clampZero(float64(*u.WaterGoalML) - u.LoggedWaterML)
	e.log.Info().Int64("user_id", u.ID).Int("amount_ml", ml).Msg("water logged")
	return fmt.Sprintf(fmtWaterLogged, ml, u.LoggedWaterML, *u.WaterGoalML, left)
}

// logFood is the first half of food logging: resolve the query and, if a
// product is found, open the grams step. A failed lookup leaves the user
// outside any dialogue.
func (e *Engine) logFood(ctx context.Context, u *models.User, args string) string {
	if u.CalorieGoalKcal == nil {
		return msgConfigureFirst
	}

	query := strings.TrimSpace(args)
	if query == "" {
		return msgFoodUsage
	}

	info, ok := e.food.FoodEnergy(ctx, query)
	if !ok {
		return msgFoodNotFound
	}

	// Taking over from a mid-flight profile dialogue abandons it, so its
	// scratch goes too.
	u.Draft = nil
	u.Food = &models.PendingFood{Name: info.Name, KcalPer100g: info.KcalPer100g}
	u.Step = models.StepFoodGrams
	return fmt.Sprintf(fmtFoodFound, info.Name, info.KcalPer100g)
}

// logFoodGrams is the second half: convert grams to kcal and credit the
// ledger. eaten = kcal_per_100g * grams / 100, exactly.
func (e *Engine) logFoodGrams(u *models.User, text string) string {
	grams, err := parseDecimal(text)
	if err != nil || grams <= 0 || grams > maxGramsPerLog {
		return msgBadGrams
	}

	pending := u.Food
	u.Food = nil
	u.Step = models.StepNone
	return e.creditFood(u, pending.Name, pending.KcalPer100g, grams)
}

func (e *Engine) creditFood(u *models.User, name string, kcalPer100g, grams float64) string {
	eaten := kcalPer100g * grams / 100
	u.LoggedCaloriesKcal += eaten
	left := clampZero(float64(*u.CalorieGoalKcal) - (u.LoggedCaloriesKcal - u.BurnedCaloriesKcal))
	e.log.Info().Int64("user_id", u.ID).Str("food", name).Float64("kcal", eaten).Msg("food logged")
	return fmt.Sprintf(fmtFoodLogged, name, grams, eaten, u.LoggedCaloriesKcal, left)
}

// logWorkout parses "<type words...> <minutes>" and credits burned
// calories. The workout also raises the water goal itself, not the logged
// amount; that asymmetry is intentional.
func (e *Engine) logWorkout(u *models.User, args string) string {
	if u.WaterGoalML == nil || u.CalorieGoalKcal == nil {
		return msgConfigureFirst
	}

	fields := strings.Fields(args)
	if len(fields) < 2 {
		return msgWorkoutUsage
	}
	minutes, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || minutes <= 0 || minutes > maxWorkoutMinutes {
		return msgBadMinutes
	}
	workoutType := strings.Join(fields[:len(fields)-1], " ")

	return e.creditWorkout(u, workoutType, minutes)
}

func (e *Engine) creditWorkout(u *models.User, workoutType string, minutes int) string {
	burned := health.WorkoutBurnKcal(workoutType, minutes)
	extraWater := health.WorkoutExtraWaterML(minutes)

	u.BurnedCaloriesKcal += float64(burned)
	*u.WaterGoalML += extraWater

	e.log.Info().
		Int64("user_id", u.ID).
		Str("workout", workoutType).
		Int("minutes", minutes).
		Int("burned_kcal", burned).
		Int("extra_water_ml", extraWater).
		Msg("workout logged")

	return fmt.Sprintf(fmtWorkoutLogged, workoutType, minutes, burned, extraWater)
}

// checkProgress is a pure projection of the ledger; it mutates nothing.
func (e *Engine) checkProgress(u *models.User) string {
	if u.WaterGoalML == nil || u.CalorieGoalKcal == nil {
		return msgConfigureFirst
	}
	return e.progressReport(u)
}

func (e *Engine) progressReport(u *models.User) string {
	waterLeft := clampZero(float64(*u.WaterGoalML) - u.LoggedWaterML)
	netKcal := u.LoggedCaloriesKcal - u.BurnedCaloriesKcal
	kcalLeft := clampZero(float64(*u.CalorieGoalKcal) - netKcal)

	return fmt.Sprintf(fmtProgress,
		u.LoggedWaterML, *u.WaterGoalML, waterLeft,
		u.LoggedCaloriesKcal, *u.CalorieGoalKcal,
		u.BurnedCaloriesKcal, netKcal, kcalLeft)
}
