// internal/lookup/weather.go
package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultWeatherURL = "https://api.openweathermap.org/data/2.5/weather"
	lookupTimeout     = 10 * time.Second
)

// WeatherClient resolves city temperatures through the OpenWeather
// current-weather endpoint.
type WeatherClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        zerolog.Logger
}

func NewWeatherClient(apiKey, baseURL string, logger zerolog.Logger) *WeatherClient {
	if baseURL == "" {
		baseURL = defaultWeatherURL
	}
	return &WeatherClient{
		httpClient: &http.Client{Timeout: lookupTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        logger,
	}
}

type weatherResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// TemperatureC returns the current temperature in °C for the city, or
// false on any non-success response or malformed payload. It never
// propagates an error to the caller.
func (w *WeatherClient) TemperatureC(ctx context.Context, city string) (float64, bool) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", w.apiKey)
	params.Set("units", "metric")

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, false
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.log.Warn().Err(err).Str("city", city).Msg("weather request failed")
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		w.log.Warn().Int("status", resp.StatusCode).Str("city", city).Msg("weather service returned non-200")
		return 0, false
	}

	var payload weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		w.log.Warn().Err(err).Str("city", city).Msg("could not decode weather payload")
		return 0, false
	}
	if payload.Main == nil || payload.Main.Temp == nil {
		return 0, false
	}
	return *payload.Main.Temp, true
}
