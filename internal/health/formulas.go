// internal/health/formulas.go
// Package health holds the pure goal and expenditure formulas. Nothing in
// here touches state or does I/O, so every function is trivially testable.
package health

import "strings"

// Workout energy rates in kcal per minute, selected by keyword class.
const (
	rateRunning  = 10
	rateWalking  = 4
	rateCycling  = 8
	rateStrength = 6
	rateDefault  = 5
)

// WaterGoalML computes the daily water goal in ml.
//
// Base is weight * 30 ml, plus 500 ml per full 30 minutes of daily
// activity. Heat adds 500 ml above 25°C and 1000 ml above 30°C; a nil
// temperature means the weather was unavailable and adds nothing.
func WaterGoalML(weightKg float64, activityMin int, tempC *float64) int {
	base := weightKg * 30
	activityBonus := float64(activityMin/30) * 500
	heatBonus := 0.0
	if tempC != nil && *tempC > 25 {
		if *tempC <= 30 {
			heatBonus = 500
		} else {
			heatBonus = 1000
		}
	}
	return int(base + activityBonus + heatBonus)
}

// CalorieGoalKcal computes the daily calorie goal.
//
// BMR = 10*weight + 6.25*height - 5*age. The sex term of Mifflin-St Jeor
// is deliberately omitted; this is the simplified model the product uses.
// Activity adds a stepped bonus: +200 kcal from 30 min, +300 from 60,
// +400 from 90.
func CalorieGoalKcal(weightKg, heightCm float64, ageYears, activityMin int) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	bonus := 0
	switch {
	case activityMin >= 90:
		bonus = 400
	case activityMin >= 60:
		bonus = 300
	case activityMin >= 30:
		bonus = 200
	}
	return int(bmr + float64(bonus))
}

// WorkoutBurnKcal estimates calories burned by a workout. The type is
// matched case-insensitively against keyword classes in both Russian and
// English; the first matching class wins and unmatched text falls back to
// the default rate.
func WorkoutBurnKcal(workoutType string, minutes int) int {
	t := strings.ToLower(workoutType)
	rate := rateDefault
	switch {
	case strings.Contains(t, "бег") || strings.Contains(t, "run"):
		rate = rateRunning
	case strings.Contains(t, "ход") || strings.Contains(t, "walk"):
		rate = rateWalking
	case strings.Contains(t, "вел") || strings.Contains(t, "bike"):
		rate = rateCycling
	case strings.Contains(t, "сил") || strings.Contains(t, "gym"):
		rate = rateStrength
	}
	return rate * minutes
}

// WorkoutExtraWaterML is the bump applied to the water goal after a
// workout: 200 ml per full 30 minutes.
func WorkoutExtraWaterML(minutes int) int {
	return (minutes / 30) * 200
}
