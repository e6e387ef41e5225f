package testutils

import (
	"context"
	"sync"

	"github.com/raykavin/tickerbot/pkg/core"
)

// StubMarket serves canned market data keyed by the requested symbol
type StubMarket struct {
	Prices map[string]string
	Stats  map[string]core.Ticker
	All    []core.Ticker
	Err    error

	mu    sync.Mutex
	calls int
}

// CallCount reports how many upstream calls were made
func (s *StubMarket) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *StubMarket) record() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

// Price implements core.Market
func (s *StubMarket) Price(_ context.Context, symbol string) (string, error) {
	s.record()
	if s.Err != nil {
		return "", s.Err
	}
	if p, ok := s.Prices[symbol]; ok {
		return p, nil
	}
	return "", core.ErrSymbolNotFound
}

// Ticker implements core.Market
func (s *StubMarket) Ticker(_ context.Context, symbol string) (core.Ticker, error) {
	s.record()
	if s.Err != nil {
		return core.Ticker{}, s.Err
	}
	if t, ok := s.Stats[symbol]; ok {
		return t, nil
	}
	return core.Ticker{}, core.ErrSymbolNotFound
}

// Tickers implements core.Market
func (s *StubMarket) Tickers(context.Context) ([]core.Ticker, error) {
	s.record()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.All, nil
}
