// Package telegram connects the command dispatcher to the Telegram Bot API
package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/jpillora/backoff"
	"github.com/raykavin/tickerbot/pkg/command"
	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/raykavin/tickerbot/pkg/logger"
	tb "gopkg.in/tucnak/telebot.v2"
)

const defaultWebhookAttempts = 3

// Bot answers chat commands delivered through the webhook
type Bot struct {
	ctx        context.Context
	settings   core.TelegramSettings
	dispatcher *command.Dispatcher
	client     *tb.Bot
	log        logger.Logger
	backoff    *backoff.Backoff
}

// Option is a function that configures a telegram Bot
type Option func(*Bot)

// WithBackoff overrides the delays between webhook registration attempts
func WithBackoff(b *backoff.Backoff) Option {
	return func(bot *Bot) {
		bot.backoff = b
	}
}

// NewBot creates the Telegram client and registers one handler per command.
// Updates are processed synchronously: ProcessUpdate returns once the reply
// has been sent.
func NewBot(ctx context.Context, settings core.TelegramSettings, dispatcher *command.Dispatcher,
	log logger.Logger, options ...Option) (*Bot, error) {

	client, err := tb.NewBot(tb.Settings{
		URL:         settings.APIURL,
		Token:       settings.Token,
		Synchronous: true,
		Reporter: func(err error) {
			log.WithError(err).Error("telegram client error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		ctx:        ctx,
		settings:   settings,
		dispatcher: dispatcher,
		client:     client,
		log:        log,
		backoff: &backoff.Backoff{
			Min:    500 * time.Millisecond,
			Max:    10 * time.Second,
			Factor: 2,
		},
	}

	for _, option := range options {
		option(bot)
	}

	bot.registerHandlers()

	return bot, nil
}

// registerHandlers sends every text message to the dispatcher, which matches
// command names case-insensitively. Commands addressed to another bot
// (/price@other_bot) are dropped by telebot before reaching OnText.
func (b *Bot) registerHandlers() {
	b.client.Handle(tb.OnText, b.handle)
}

// handle runs the dispatcher for m and replies in the originating chat
func (b *Bot) handle(m *tb.Message) {
	if m == nil || m.Chat == nil {
		return
	}

	reply, ok := b.dispatcher.Handle(b.ctx, m.Text)
	if !ok {
		return
	}

	if _, err := b.client.Send(m.Chat, reply); err != nil {
		b.log.WithField("chat", m.Chat.ID).WithError(err).Error("failed to send reply")
	}
}

// ProcessUpdate dispatches an update received on the webhook
func (b *Bot) ProcessUpdate(update tb.Update) {
	if update.Message != nil && update.Message.Chat != nil {
		b.log.WithFields(map[string]any{
			"chat": update.Message.Chat.ID,
			"text": update.Message.Text,
		}).Debug("update received")
	}
	b.client.ProcessUpdate(update)
}

// RegisterWebhook replaces any existing webhook with publicURL and publishes
// the command list. Failed attempts are retried with exponential backoff.
func (b *Bot) RegisterWebhook(publicURL string) error {
	attempts := b.settings.WebhookAttempts
	if attempts <= 0 {
		attempts = defaultWebhookAttempts
	}

	b.backoff.Reset()

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = b.registerWebhook(publicURL); err == nil {
			b.log.WithField("url", publicURL).Info("webhook registered")
			return nil
		}

		if attempt == attempts {
			break
		}

		delay := b.backoff.Duration()
		b.log.WithFields(map[string]any{
			"attempt": attempt,
			"retry":   delay.String(),
		}).WithError(err).Warn("webhook registration failed")

		select {
		case <-time.After(delay):
		case <-b.ctx.Done():
			return b.ctx.Err()
		}
	}

	return fmt.Errorf("failed to register webhook after %d attempts: %w", attempts, err)
}

func (b *Bot) registerWebhook(publicURL string) error {
	if err := b.client.RemoveWebhook(); err != nil {
		return fmt.Errorf("failed to remove webhook: %w", err)
	}

	err := b.client.SetWebhook(&tb.Webhook{
		Endpoint: &tb.WebhookEndpoint{PublicURL: publicURL},
	})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	if err := b.client.SetCommands(b.botCommands()); err != nil {
		return fmt.Errorf("failed to set commands: %w", err)
	}

	return nil
}

func (b *Bot) botCommands() []tb.Command {
	defs := b.dispatcher.Commands()
	commands := make([]tb.Command, 0, len(defs))
	for _, c := range defs {
		commands = append(commands, tb.Command{Text: c.Name, Description: c.Description})
	}
	return commands
}
