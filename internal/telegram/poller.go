// internal/telegram/poller.go
package telegram

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"health-bot/internal/bot"
)

const pollRetryDelay = 3 * time.Second

// Poller drives the long-poll loop and feeds message updates into the
// engine. Each update is handled on its own goroutine; the engine's
// per-user record lock keeps events for the same user from interleaving.
type Poller struct {
	client     *Client
	engine     *bot.Engine
	timeoutSec int
	log        zerolog.Logger
}

func NewPoller(client *Client, engine *bot.Engine, timeoutSec int, logger zerolog.Logger) *Poller {
	return &Poller{
		client:     client,
		engine:     engine,
		timeoutSec: timeoutSec,
		log:        logger,
	}
}

// Run polls until the context is cancelled. Transient getUpdates failures
// are logged and retried after a short delay.
func (p *Poller) Run(ctx context.Context) error {
	me, err := p.client.GetMe(ctx)
	if err != nil {
		return err
	}
	p.log.Info().Str("bot", me.Username).Msg("long polling started")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.timeoutSec)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.log.Warn().Err(err).Msg("getUpdates failed, retrying")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
				continue
			}
			go p.handle(ctx, update)
		}
	}
}

func (p *Poller) handle(ctx context.Context, update Update) {
	msg := update.Message
	logger := p.log.With().
		Str("correlation_id", uuid.New().String()).
		Int64("update_id", update.UpdateID).
		Int64("user_id", msg.From.ID).
		Logger()

	reply := p.engine.Handle(ctx, msg.From.ID, msg.Text)
	if reply == "" {
		return
	}
	if err := p.client.SendMessage(ctx, msg.Chat.ID, reply); err != nil {
		logger.Error().Err(err).Msg("failed to send reply")
		return
	}
	logger.Debug().Msg("reply sent")
}
