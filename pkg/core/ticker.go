package core

import (
	"context"
	"errors"
)

// ErrSymbolNotFound is returned when the upstream has no ticker for a pair.
var ErrSymbolNotFound = errors.New("symbol not found")

// Ticker is a 24h market snapshot for one trading pair. Numeric fields keep
// the upstream representation so they are displayed exactly as received.
type Ticker struct {
	Symbol        string
	Last          string
	High          string
	Low           string
	Volume        string // base asset volume
	QuoteVolume   string // quote asset volume, used for ranking
	ChangePercent string // already scaled to percent
}

// Market is the read-only market-data source behind the chat commands.
type Market interface {
	Price(ctx context.Context, symbol string) (string, error)
	Ticker(ctx context.Context, symbol string) (Ticker, error)
	Tickers(ctx context.Context) ([]Ticker, error)
}
