// internal/storage/memory_test.go
package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCreatesZeroRecord(t *testing.T) {
	s := NewStore()

	_, ok := s.Get(42)
	assert.False(t, ok)

	u := s.Ensure(42)
	require.NotNil(t, u)
	assert.Equal(t, int64(42), u.ID)
	assert.Nil(t, u.WeightKg)
	assert.Nil(t, u.WaterGoalML)
	assert.Nil(t, u.CalorieGoalKcal)
	assert.Zero(t, u.LoggedWaterML)
	assert.Zero(t, u.LoggedCaloriesKcal)
	assert.Zero(t, u.BurnedCaloriesKcal)
	assert.Equal(t, 1, s.Count())
}

func TestEnsureIsStable(t *testing.T) {
	s := NewStore()
	u := s.Ensure(7)
	u.LoggedWaterML = 300

	again := s.Ensure(7)
	assert.Same(t, u, again)
	assert.Equal(t, 300.0, again.LoggedWaterML)
}

func TestEnsureConcurrentSingleWinner(t *testing.T) {
	s := NewStore()

	const n = 64
	records := make([]any, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			records[i] = s.Ensure(99)
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, records[0], records[i])
	}
	assert.Equal(t, 1, s.Count())
}
