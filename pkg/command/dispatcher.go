package command

import (
	"context"

	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/raykavin/tickerbot/pkg/logger"
)

const defaultTopSize = 5

// HandlerFunc produces the reply for one command
type HandlerFunc func(ctx context.Context, cmd Command) string

// Definition describes a registered command
type Definition struct {
	Name        string
	Usage       string
	Description string
	handler     HandlerFunc
}

// Dispatcher maps command names to handlers backed by a market
type Dispatcher struct {
	market   core.Market
	log      logger.Logger
	topSize  int
	commands []Definition
	index    map[string]int
}

// Option is a function that configures a Dispatcher
type Option func(*Dispatcher)

// WithTopSize changes how many pairs /top lists
func WithTopSize(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.topSize = n
		}
	}
}

// NewDispatcher creates a dispatcher with /start, /price, /top and /info registered
func NewDispatcher(market core.Market, log logger.Logger, options ...Option) *Dispatcher {
	d := &Dispatcher{
		market:  market,
		log:     log,
		topSize: defaultTopSize,
		index:   make(map[string]int),
	}

	for _, option := range options {
		option(d)
	}

	d.register(Definition{Name: Start, Usage: "/start", Description: "show this help", handler: d.start})
	d.register(Definition{Name: Price, Usage: "/price BTC-USDT", Description: "live price", handler: d.price})
	d.register(Definition{Name: Top, Usage: "/top", Description: "top pairs by volume", handler: d.top})
	d.register(Definition{Name: Info, Usage: "/info BTC-USDT", Description: "full ticker info", handler: d.info})

	return d
}

func (d *Dispatcher) register(def Definition) {
	d.index[def.Name] = len(d.commands)
	d.commands = append(d.commands, def)
}

// Commands returns the registered commands in registration order
func (d *Dispatcher) Commands() []Definition {
	return append([]Definition(nil), d.commands...)
}

// Handle parses text and runs the matching handler. The second return value
// is false when text is not a known command and nothing should be replied.
func (d *Dispatcher) Handle(ctx context.Context, text string) (string, bool) {
	cmd, ok := Parse(text)
	if !ok {
		return "", false
	}

	i, ok := d.index[cmd.Name]
	if !ok {
		return "", false
	}

	return d.commands[i].handler(ctx, cmd), true
}

func (d *Dispatcher) start(_ context.Context, _ Command) string {
	return FormatHelp(d.commands, d.topSize)
}

func (d *Dispatcher) price(ctx context.Context, cmd Command) string {
	if cmd.Symbol == "" {
		return FormatUsage(d.commands[d.index[Price]])
	}

	price, err := d.market.Price(ctx, cmd.Symbol)
	if err != nil {
		d.logFailure(cmd, err)
		return ErrorText
	}

	return FormatPrice(cmd.Symbol, price)
}

func (d *Dispatcher) top(ctx context.Context, cmd Command) string {
	tickers, err := d.market.Tickers(ctx)
	if err != nil {
		d.logFailure(cmd, err)
		return ErrorText
	}

	ranked, err := TopByVolume(tickers, d.topSize)
	if err != nil {
		d.logFailure(cmd, err)
		return ErrorText
	}

	return FormatTop(ranked)
}

func (d *Dispatcher) info(ctx context.Context, cmd Command) string {
	if cmd.Symbol == "" {
		return FormatUsage(d.commands[d.index[Info]])
	}

	ticker, err := d.market.Ticker(ctx, cmd.Symbol)
	if err != nil {
		d.logFailure(cmd, err)
		return ErrorText
	}

	text, err := FormatInfo(cmd.Symbol, ticker)
	if err != nil {
		d.logFailure(cmd, err)
		return ErrorText
	}

	return text
}

func (d *Dispatcher) logFailure(cmd Command, err error) {
	d.log.WithFields(map[string]any{
		"command": cmd.Name,
		"symbol":  cmd.Symbol,
	}).WithError(err).Error("command failed")
}
