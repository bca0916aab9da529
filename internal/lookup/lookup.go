// internal/lookup/lookup.go
// Package lookup isolates the two external services the assistant depends
// on. Both contracts degrade to a plain "not found" result instead of
// surfacing transport faults; the caller's policy decides what an absent
// value means.
package lookup

import "context"

// FoodInfo is a resolved food product: display name plus energy density.
type FoodInfo struct {
	Name        string
	KcalPer100g float64
}

// TemperatureResolver resolves the current temperature for a city.
// The second result is false when the weather service is unavailable,
// times out, or answers with something unparsable.
type TemperatureResolver interface {
	TemperatureC(ctx context.Context, city string) (float64, bool)
}

// FoodResolver resolves a free-text food query to the first ranked
// candidate exposing a parsable kcal-per-100g value.
type FoodResolver interface {
	FoodEnergy(ctx context.Context, query string) (FoodInfo, bool)
}
