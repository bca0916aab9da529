// cmd/health-bot/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"health-bot/internal/bot"
	"health-bot/internal/config"
	"health-bot/internal/lookup"
	"health-bot/internal/server"
	"health-bot/internal/storage"
	"health-bot/internal/telegram"
)

var (
	transport   = flag.String("transport", "poll", "Transport mode: poll, http or both")
	host        = flag.String("host", "0.0.0.0", "Host address for the HTTP tool surface")
	port        = flag.Int("port", 0, "Port for the HTTP tool surface (defaults to $PORT or 8080)")
	pollTimeout = flag.Int("poll-timeout", 30, "Telegram long-poll timeout in seconds")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	version     = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("health-bot version 1.0.0")
		os.Exit(0)
	}

	if *transport != "poll" && *transport != "http" && *transport != "both" {
		fmt.Fprintf(os.Stderr, "unknown transport mode: %s\n", *transport)
		os.Exit(2)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Missing secrets abort here, before any event is accepted.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	store := storage.NewStore()
	weather := lookup.NewCachedTemperature(
		lookup.NewWeatherClient(cfg.OpenWeatherKey, cfg.OpenWeatherURL, log.With().Str("component", "weather").Logger()),
		256,
	)
	food := lookup.NewCachedFood(
		lookup.NewFoodClient(cfg.OpenFoodFactsURL, log.With().Str("component", "food").Logger()),
		512,
	)
	engine := bot.New(store, weather, food, log.With().Str("component", "engine").Logger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if *transport == "poll" || *transport == "both" {
		client := telegram.NewClient(cfg.TelegramToken, cfg.TelegramAPIURL, log.With().Str("component", "telegram").Logger())
		poller := telegram.NewPoller(client, engine, *pollTimeout, log.With().Str("component", "poller").Logger())
		g.Go(func() error {
			return poller.Run(ctx)
		})
	}

	if *transport == "http" || *transport == "both" {
		httpPort := *port
		if httpPort == 0 {
			httpPort = cfg.Port
		}
		srv := server.New(server.Config{Host: *host, Port: httpPort}, engine, store, log.With().Str("component", "server").Logger())
		g.Go(func() error {
			return srv.Start()
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		})
	}

	log.Info().Str("transport", *transport).Msg("health-bot started")
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("shutting down with error")
	}
	log.Info().Msg("shutdown complete")
}
