package command

import (
	"testing"

	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbols(tickers []core.Ticker) []string {
	out := make([]string, len(tickers))
	for i, t := range tickers {
		out[i] = t.Symbol
	}
	return out
}

func TestTopByVolume_StableDescending(t *testing.T) {
	tickers := []core.Ticker{
		{Symbol: "AAA", QuoteVolume: "5"},
		{Symbol: "BBB", QuoteVolume: "900.5"},
		{Symbol: "CCC", QuoteVolume: "5"},
		{Symbol: "DDD", QuoteVolume: "1e3"},
		{Symbol: "EEE", QuoteVolume: "0"},
		{Symbol: "FFF", QuoteVolume: "5"},
		{Symbol: "GGG", QuoteVolume: "12"},
	}

	top, err := TopByVolume(tickers, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"DDD", "BBB", "GGG", "AAA", "CCC"}, symbols(top))
}

func TestTopByVolume_FewerThanN(t *testing.T) {
	top, err := TopByVolume([]core.Ticker{{Symbol: "X", QuoteVolume: "1"}}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, symbols(top))

	top, err = TopByVolume(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestTopByVolume_InvalidVolume(t *testing.T) {
	_, err := TopByVolume([]core.Ticker{{Symbol: "X", QuoteVolume: "n/a"}}, 5)
	require.Error(t, err)
}
