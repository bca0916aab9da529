// internal/bot/dialogue.go
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"health-bot/internal/health"
	"health-bot/internal/models"
)

// negativeTokens end the calorie-goal step keeping the calculated value.
var negativeTokens = map[string]bool{
	"нет": true,
	"no":  true,
	"n":   true,
}

// startProfile opens a fresh profile dialogue, unconditionally discarding
// any dialogue already in flight.
func (e *Engine) startProfile(u *models.User) string {
	u.Draft = &models.ProfileDraft{}
	u.Food = nil
	u.Step = models.StepWeight
	e.log.Info().Int64("user_id", u.ID).Msg("profile dialogue started")
	return msgAskWeight
}

// advanceDialogue feeds one message into the open dialogue step. Invalid
// input re-prompts without advancing; it is a self-loop, not a failure.
func (e *Engine) advanceDialogue(ctx context.Context, u *models.User, text string) string {
	switch u.Step {
	case models.StepWeight:
		w, err := parseDecimal(text)
		if err != nil || w <= 0 || w > maxWeightKg {
			return msgBadWeight
		}
		u.Draft.WeightKg = w
		u.Step = models.StepHeight
		return msgAskHeight

	case models.StepHeight:
		h, err := parseDecimal(text)
		if err != nil || h <= 0 || h > maxHeightCm {
			return msgBadHeight
		}
		u.Draft.HeightCm = h
		u.Step = models.StepAge
		return msgAskAge

	case models.StepAge:
		a, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || a <= 0 || a > maxAgeYears {
			return msgBadAge
		}
		u.Draft.AgeYears = a
		u.Step = models.StepActivity
		return msgAskActivity

	case models.StepActivity:
		act, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || act < 0 || act > maxActivityMin {
			return msgBadActivity
		}
		u.Draft.ActivityMin = act
		u.Step = models.StepCity
		return msgAskCity

	case models.StepCity:
		city := strings.TrimSpace(text)
		if city == "" {
			return msgBadCity
		}
		return e.commitProfile(ctx, u, city)

	case models.StepCalorieGoal:
		return e.chooseCalorieGoal(u, text)

	case models.StepFoodGrams:
		return e.logFoodGrams(u, text)

	default:
		return msgUnknown
	}
}

// commitProfile moves the collected draft into the record, resolves the
// city temperature and derives both goals. An unavailable temperature is
// a valid outcome meaning no heat bonus, not an error.
func (e *Engine) commitProfile(ctx context.Context, u *models.User, city string) string {
	d := u.Draft
	u.WeightKg = &d.WeightKg
	u.HeightCm = &d.HeightCm
	u.AgeYears = &d.AgeYears
	u.ActivityMin = d.ActivityMin
	u.City = city

	var tempC *float64
	weatherLine := fmt.Sprintf(fmtWeatherUnavailable, city)
	if temp, ok := e.weather.TemperatureC(ctx, city); ok {
		tempC = &temp
		weatherLine = fmt.Sprintf(fmtWeatherLine, city, temp)
	}

	waterGoal := health.WaterGoalML(d.WeightKg, d.ActivityMin, tempC)
	calorieGoal := health.CalorieGoalKcal(d.WeightKg, d.HeightCm, d.AgeYears, d.ActivityMin)
	u.WaterGoalML = &waterGoal
	u.CalorieGoalKcal = &calorieGoal
	u.ManualCalorieGoal = false

	u.Draft = nil
	u.Step = models.StepCalorieGoal

	e.log.Info().
		Int64("user_id", u.ID).
		Str("city", city).
		Int("water_goal_ml", waterGoal).
		Int("calorie_goal_kcal", calorieGoal).
		Msg("profile committed")

	return fmt.Sprintf(fmtProfileSaved, weatherLine, waterGoal, calorieGoal)
}

// chooseCalorieGoal handles the last dialogue step: keep the calculated
// goal on a negative answer, or override it with a number in range.
func (e *Engine) chooseCalorieGoal(u *models.User, text string) string {
	answer := strings.ToLower(strings.TrimSpace(text))
	if negativeTokens[answer] {
		u.Step = models.StepNone
		return msgGoalAccepted
	}

	goal, err := strconv.Atoi(answer)
	if err != nil || goal < minCalorieGoal || goal > maxCalorieGoal {
		return msgBadCalorieGoal
	}

	u.CalorieGoalKcal = &goal
	u.ManualCalorieGoal = true
	u.Step = models.StepNone
	e.log.Info().Int64("user_id", u.ID).Int("calorie_goal_kcal", goal).Msg("manual calorie goal set")
	return fmt.Sprintf(fmtManualGoalSet, goal)
}
