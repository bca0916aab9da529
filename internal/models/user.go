// internal/models/user.go
package models

import (
	"sync"
)

// Step identifies which dialogue step, if any, a user is currently in.
// A user in StepNone has no open dialogue and free text is rejected.
type Step int

const (
	StepNone Step = iota
	StepWeight
	StepHeight
	StepAge
	StepActivity
	StepCity
	StepCalorieGoal
	StepFoodGrams
)

func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepWeight:
		return "weight"
	case StepHeight:
		return "height"
	case StepAge:
		return "age"
	case StepActivity:
		return "activity"
	case StepCity:
		return "city"
	case StepCalorieGoal:
		return "calorie_goal"
	case StepFoodGrams:
		return "food_grams"
	default:
		return "unknown"
	}
}

// ProfileDraft holds the values collected so far by an in-flight profile
// dialogue. It is discarded wholesale when the dialogue commits or a new
// one is started.
type ProfileDraft struct {
	WeightKg    float64
	HeightCm    float64
	AgeYears    int
	ActivityMin int
}

// PendingFood is the scratch state between the food lookup and the grams
// answer.
type PendingFood struct {
	Name        string
	KcalPer100g float64
}

// User is the per-user profile plus the day's running ledger. One record
// exists per Telegram user id, created lazily on first contact and kept
// only for the lifetime of the process.
//
// WaterGoalML and CalorieGoalKcal stay nil until the profile dialogue has
// completed at least once; every logging operation refuses to act while
// either is nil.
type User struct {
	mu sync.Mutex

	ID int64

	WeightKg    *float64
	HeightCm    *float64
	AgeYears    *int
	ActivityMin int
	City        string

	WaterGoalML       *int
	CalorieGoalKcal   *int
	ManualCalorieGoal bool

	LoggedWaterML      float64
	LoggedCaloriesKcal float64
	BurnedCaloriesKcal float64

	Step  Step
	Draft *ProfileDraft
	Food  *PendingFood
}

func NewUser(id int64) *User {
	return &User{ID: id}
}

// Lock serializes all read-modify-write access to the record. Events for
// the same user must not interleave; events for distinct users share
// nothing and run concurrently.
func (u *User) Lock() { u.mu.Lock() }

func (u *User) Unlock() { u.mu.Unlock() }
