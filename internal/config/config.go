// internal/config/config.go
// Package config reads process configuration from the environment. A .env
// file in the working directory is picked up automatically.
package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	// TelegramToken authenticates the bot against the Telegram Bot API.
	TelegramToken string

	// OpenWeatherKey authenticates temperature lookups.
	OpenWeatherKey string

	// Endpoint overrides, normally left empty outside of tests/staging.
	TelegramAPIURL   string
	OpenWeatherURL   string
	OpenFoodFactsURL string

	// Port for the HTTP tool surface.
	Port int
}

// Load builds the configuration. Both secrets are required: the process
// must refuse to start before accepting any events when either is absent.
func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenWeatherKey:   os.Getenv("OPENWEATHER_API_KEY"),
		TelegramAPIURL:   os.Getenv("TELEGRAM_API_URL"),
		OpenWeatherURL:   os.Getenv("OPENWEATHER_URL"),
		OpenFoodFactsURL: os.Getenv("OPENFOODFACTS_URL"),
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	if cfg.OpenWeatherKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is not set")
	}

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}
	cfg.Port = port

	return cfg, nil
}
