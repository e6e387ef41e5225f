package tickerbot

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/raykavin/tickerbot/pkg/command"
	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/raykavin/tickerbot/pkg/exchange/binance"
	"github.com/raykavin/tickerbot/pkg/logger"
	"github.com/raykavin/tickerbot/pkg/server"
	"github.com/raykavin/tickerbot/pkg/telegram"
)

// DefaultLog is the default logger instance
var DefaultLog logger.Logger

const shutdownTimeout = 10 * time.Second

// Bot relays Telegram commands to the market-data API
type Bot struct {
	settings   *core.Settings
	market     core.Market
	log        logger.Logger
	dispatcher *command.Dispatcher
	telegram   *telegram.Bot
	server     *server.Server

	commandOptions  []command.Option
	telegramOptions []telegram.Option
}

// NewBot creates a Bot from settings. The market defaults to the Binance
// public API configured in settings.Market.
func NewBot(ctx context.Context, settings *core.Settings, options ...Option) (*Bot, error) {
	if settings.Telegram.Token == "" {
		return nil, core.ErrMissingToken
	}
	if settings.Telegram.BaseURL == "" {
		return nil, core.ErrMissingBaseURL
	}

	bot := &Bot{
		settings: settings,
		log:      DefaultLog,
	}

	for _, option := range options {
		option(bot)
	}

	if bot.log == nil {
		bot.log = logger.Nop{}
	}
	if bot.market == nil {
		bot.market = binance.FromSettings(settings.Market)
	}

	bot.dispatcher = command.NewDispatcher(bot.market, bot.log, bot.commandOptions...)

	var err error
	bot.telegram, err = telegram.NewBot(ctx, settings.Telegram, bot.dispatcher, bot.log, bot.telegramOptions...)
	if err != nil {
		return nil, err
	}

	bot.server = server.NewServer(settings.Server.Port, settings.Telegram.Token, bot.telegram, bot.log)

	return bot, nil
}

// Handler exposes the HTTP routes without starting a listener
func (b *Bot) Handler() http.Handler {
	return b.server.Handler()
}

// Run registers the webhook and serves HTTP until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	webhookURL := b.settings.Telegram.WebhookURL()
	if err := b.telegram.RegisterWebhook(webhookURL); err != nil {
		return err
	}

	b.log.WithFields(map[string]any{
		"webhook": b.settings.Telegram.BaseURL + "/<token>",
		"port":    b.settings.Server.Port,
	}).Info("bot initialized")

	errc := make(chan error, 1)
	go func() {
		errc <- b.server.Start()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	b.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := b.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	return <-errc
}
