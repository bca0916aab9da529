// internal/health/formulas_test.go
package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tempPtr(v float64) *float64 { return &v }

func TestWaterGoalML(t *testing.T) {
	// No activity, no weather: weight alone.
	assert.Equal(t, 2400, WaterGoalML(80, 0, nil))

	// Activity bonus steps at full 30-minute blocks.
	assert.Equal(t, 2400, WaterGoalML(80, 29, nil))
	assert.Equal(t, 2900, WaterGoalML(80, 30, nil))
	assert.Equal(t, 2900, WaterGoalML(80, 59, nil))
	assert.Equal(t, 3400, WaterGoalML(80, 60, nil))

	// Heat bonus: nothing at or below 25, +500 up to 30, +1000 above.
	assert.Equal(t, 2400, WaterGoalML(80, 0, tempPtr(25)))
	assert.Equal(t, 2900, WaterGoalML(80, 0, tempPtr(25.1)))
	assert.Equal(t, 2900, WaterGoalML(80, 0, tempPtr(30)))
	assert.Equal(t, 3400, WaterGoalML(80, 0, tempPtr(30.1)))

	// Reference scenario: 80 kg, 45 min, 28.0°C.
	assert.Equal(t, 3400, WaterGoalML(80, 45, tempPtr(28.0)))
}

func TestWaterGoalMLMonotonicInWeight(t *testing.T) {
	prev := 0
	for w := 40.0; w <= 200; w += 5 {
		got := WaterGoalML(w, 45, tempPtr(28))
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestCalorieGoalKcal(t *testing.T) {
	// Reference scenario: 10*80 + 6.25*184 - 5*26 + 200 = 2020.
	assert.Equal(t, 2020, CalorieGoalKcal(80, 184, 26, 45))

	// Activity bonus boundaries.
	base := CalorieGoalKcal(80, 184, 26, 0)
	assert.Equal(t, 1820, base)
	assert.Equal(t, base, CalorieGoalKcal(80, 184, 26, 29))
	assert.Equal(t, base+200, CalorieGoalKcal(80, 184, 26, 30))
	assert.Equal(t, base+200, CalorieGoalKcal(80, 184, 26, 59))
	assert.Equal(t, base+300, CalorieGoalKcal(80, 184, 26, 60))
	assert.Equal(t, base+300, CalorieGoalKcal(80, 184, 26, 89))
	assert.Equal(t, base+400, CalorieGoalKcal(80, 184, 26, 90))
	assert.Equal(t, base+400, CalorieGoalKcal(80, 184, 26, 500))
}

func TestWorkoutBurnKcal(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		minutes int
		want    int
	}{
		{"running english", "run", 30, 300},
		{"running russian", "бег", 30, 300},
		{"running substring", "morning running", 10, 100},
		{"walking", "walk", 30, 120},
		{"walking russian", "ходьба", 30, 120},
		{"cycling", "bike ride", 30, 240},
		{"cycling russian", "велосипед", 30, 240},
		{"strength", "gym", 30, 180},
		{"strength russian", "силовая", 30, 180},
		{"unknown falls back to default", "yoga", 30, 150},
		{"case insensitive", "RUN", 30, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkoutBurnKcal(tt.typ, tt.minutes))
		})
	}
}

func TestWorkoutExtraWaterML(t *testing.T) {
	assert.Equal(t, 0, WorkoutExtraWaterML(29))
	assert.Equal(t, 200, WorkoutExtraWaterML(30))
	assert.Equal(t, 200, WorkoutExtraWaterML(45))
	assert.Equal(t, 400, WorkoutExtraWaterML(60))
	assert.Equal(t, 600, WorkoutExtraWaterML(90))
}
