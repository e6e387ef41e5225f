package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
		ok   bool
	}{
		{"with symbol", "/price btc-usdt", Command{Name: "price", Symbol: "BTC-USDT", Args: []string{"btc-usdt"}}, true},
		{"bot suffix", "/Info@ticker_bot eth-usdt", Command{Name: "info", Symbol: "ETH-USDT", Args: []string{"eth-usdt"}}, true},
		{"extra spaces", "  /price   SOL-USDT  extra", Command{Name: "price", Symbol: "SOL-USDT", Args: []string{"SOL-USDT", "extra"}}, true},
		{"no argument", "/top", Command{Name: "top", Args: []string{}}, true},
		{"plain text", "hello there", Command{}, false},
		{"empty", "   ", Command{}, false},
		{"lone slash", "/", Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
