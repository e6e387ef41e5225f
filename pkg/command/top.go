package command

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/samber/lo"
)

type rankedTicker struct {
	ticker core.Ticker
	volume float64
}

// TopByVolume returns the n tickers with the highest quote volume. Ties keep
// their upstream order. Any unparsable volume fails the whole ranking.
func TopByVolume(tickers []core.Ticker, n int) ([]core.Ticker, error) {
	ranked := make([]rankedTicker, 0, len(tickers))
	for _, t := range tickers {
		volume, err := strconv.ParseFloat(t.QuoteVolume, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid volume for %s: %w", t.Symbol, err)
		}
		ranked = append(ranked, rankedTicker{ticker: t, volume: volume})
	}

	slices.SortStableFunc(ranked, func(a, b rankedTicker) int {
		return cmp.Compare(b.volume, a.volume)
	})

	return lo.Map(lo.Subset(ranked, 0, uint(max(n, 0))), func(r rankedTicker, _ int) core.Ticker {
		return r.ticker
	}), nil
}
