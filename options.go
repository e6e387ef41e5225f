package tickerbot

import (
	"github.com/jpillora/backoff"
	"github.com/raykavin/tickerbot/pkg/command"
	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/raykavin/tickerbot/pkg/logger"
	"github.com/raykavin/tickerbot/pkg/telegram"
)

// Option is a functional option for configuring a Bot instance
type Option func(*Bot)

// WithLogger replaces DefaultLog for this bot
func WithLogger(log logger.Logger) Option {
	return func(bot *Bot) {
		bot.log = log
	}
}

// WithMarket sets the market-data source, by default the Binance public API
func WithMarket(market core.Market) Option {
	return func(bot *Bot) {
		bot.market = market
	}
}

// WithTopSize changes how many pairs /top lists
func WithTopSize(n int) Option {
	return func(bot *Bot) {
		bot.commandOptions = append(bot.commandOptions, command.WithTopSize(n))
	}
}

// WithWebhookBackoff sets the delays between webhook registration attempts
func WithWebhookBackoff(b *backoff.Backoff) Option {
	return func(bot *Bot) {
		bot.telegramOptions = append(bot.telegramOptions, telegram.WithBackoff(b))
	}
}
