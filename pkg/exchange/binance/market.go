package binance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/raykavin/tickerbot/pkg/core"
)

// Binance answers -1121 for pairs it does not list.
const codeInvalidSymbol = -1121

// Market reads public spot market data from the Binance REST API
type Market struct {
	client *binance.Client
}

// Option is a function that configures a Market
type Option func(*Market)

// WithBaseURL points the client at a different REST endpoint
func WithBaseURL(url string) Option {
	return func(m *Market) {
		if url != "" {
			m.client.BaseURL = url
		}
	}
}

// WithTimeout bounds every upstream request. Zero keeps the client default.
func WithTimeout(timeout time.Duration) Option {
	return func(m *Market) {
		if timeout > 0 {
			m.client.HTTPClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithDebug enables request logging in the underlying client
func WithDebug(debug bool) Option {
	return func(m *Market) {
		m.client.Debug = debug
	}
}

// NewMarket creates a public (unauthenticated) market-data client
func NewMarket(options ...Option) *Market {
	m := &Market{client: binance.NewClient("", "")}
	for _, option := range options {
		option(m)
	}
	return m
}

// FromSettings builds a Market from the application settings
func FromSettings(settings core.MarketSettings) *Market {
	return NewMarket(
		WithBaseURL(settings.APIURL),
		WithTimeout(settings.Timeout),
		WithDebug(settings.Debug),
	)
}

// Price returns the last traded price for symbol
func (m *Market) Price(ctx context.Context, symbol string) (string, error) {
	pair := NormalizeSymbol(symbol)

	prices, err := m.client.NewListPricesService().Symbol(pair).Do(ctx)
	if err != nil {
		return "", wrapError(pair, err)
	}

	for _, p := range prices {
		if p.Symbol == pair {
			return p.Price, nil
		}
	}

	return "", fmt.Errorf("%s: %w", pair, core.ErrSymbolNotFound)
}

// Ticker returns the 24h statistics for symbol
func (m *Market) Ticker(ctx context.Context, symbol string) (core.Ticker, error) {
	pair := NormalizeSymbol(symbol)

	stats, err := m.client.NewListPriceChangeStatsService().Symbol(pair).Do(ctx)
	if err != nil {
		return core.Ticker{}, wrapError(pair, err)
	}

	for _, s := range stats {
		if s.Symbol == pair {
			return toTicker(s), nil
		}
	}

	return core.Ticker{}, fmt.Errorf("%s: %w", pair, core.ErrSymbolNotFound)
}

// Tickers returns the 24h statistics for every listed pair
func (m *Market) Tickers(ctx context.Context) ([]core.Ticker, error) {
	stats, err := m.client.NewListPriceChangeStatsService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}

	tickers := make([]core.Ticker, 0, len(stats))
	for _, s := range stats {
		tickers = append(tickers, toTicker(s))
	}

	return tickers, nil
}

func toTicker(s *binance.PriceChangeStats) core.Ticker {
	return core.Ticker{
		Symbol:        s.Symbol,
		Last:          s.LastPrice,
		High:          s.HighPrice,
		Low:           s.LowPrice,
		Volume:        s.Volume,
		QuoteVolume:   s.QuoteVolume,
		ChangePercent: s.PriceChangePercent,
	}
}

func wrapError(pair string, err error) error {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) && apiErr.Code == codeInvalidSymbol {
		return fmt.Errorf("%s: %w", pair, core.ErrSymbolNotFound)
	}
	return fmt.Errorf("failed to fetch %s: %w", pair, err)
}
