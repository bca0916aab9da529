// internal/lookup/lookup_test.go
package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherClientParsesTemperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Write([]byte(`{"main":{"temp":28.0,"humidity":40}}`))
	}))
	defer srv.Close()

	c := NewWeatherClient("test-key", srv.URL, zerolog.Nop())
	temp, ok := c.TemperatureC(context.Background(), "Berlin")
	require.True(t, ok)
	assert.Equal(t, 28.0, temp)
}

func TestWeatherClientUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}},
		{"missing temp", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"main":{}}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewWeatherClient("k", srv.URL, zerolog.Nop())
			_, ok := c.TemperatureC(context.Background(), "Nowhere")
			assert.False(t, ok)
		})
	}
}

func TestFoodClientFirstParsableWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "banana", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))
		w.Write([]byte(`{"products":[
			{"product_name":"Banana chips","nutriments":{"fat_100g":30}},
			{"product_name":"Banana","nutriments":{"energy-kcal_100g":89}},
			{"product_name":"Banana bread","nutriments":{"energy-kcal_100g":320}}
		]}`))
	}))
	defer srv.Close()

	c := NewFoodClient(srv.URL, zerolog.Nop())
	info, ok := c.FoodEnergy(context.Background(), "banana")
	require.True(t, ok)
	assert.Equal(t, "Banana", info.Name)
	assert.Equal(t, 89.0, info.KcalPer100g)
}

func TestFoodClientStringEnergyAndNameFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[
			{"product_name":"","generic_name":"","nutriments":{"energy-kcal_100g":"  oops"}},
			{"product_name":"","generic_name":"","nutriments":{"energy-kcal_100g":"52.5"}}
		]}`))
	}))
	defer srv.Close()

	c := NewFoodClient(srv.URL, zerolog.Nop())
	info, ok := c.FoodEnergy(context.Background(), "apple")
	require.True(t, ok)
	assert.Equal(t, "apple", info.Name, "display name falls back to the query")
	assert.Equal(t, 52.5, info.KcalPer100g)
}

func TestFoodClientNoCandidateQualifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"product_name":"Mystery","nutriments":{}}]}`))
	}))
	defer srv.Close()

	c := NewFoodClient(srv.URL, zerolog.Nop())
	_, ok := c.FoodEnergy(context.Background(), "mystery")
	assert.False(t, ok)
}

type countingTemp struct {
	calls atomic.Int64
	temp  float64
	ok    bool
}

func (c *countingTemp) TemperatureC(ctx context.Context, city string) (float64, bool) {
	c.calls.Add(1)
	return c.temp, c.ok
}

func TestCachedTemperature(t *testing.T) {
	inner := &countingTemp{temp: 22.5, ok: true}
	c := NewCachedTemperature(inner, 8)

	for i := 0; i < 3; i++ {
		temp, ok := c.TemperatureC(context.Background(), "  Moscow ")
		require.True(t, ok)
		assert.Equal(t, 22.5, temp)
	}
	// Key is normalised, so the variants share one entry.
	_, _ = c.TemperatureC(context.Background(), "moscow")
	assert.Equal(t, int64(1), inner.calls.Load())
}

func TestCachedTemperatureDoesNotCacheFailures(t *testing.T) {
	inner := &countingTemp{ok: false}
	c := NewCachedTemperature(inner, 8)

	_, ok := c.TemperatureC(context.Background(), "Atlantis")
	assert.False(t, ok)
	_, _ = c.TemperatureC(context.Background(), "Atlantis")
	assert.Equal(t, int64(2), inner.calls.Load())
}
