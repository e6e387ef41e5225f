package binance

import "strings"

var symbolSeparators = strings.NewReplacer("-", "", "/", "", "_", "", " ", "")

// NormalizeSymbol converts user input such as "btc-usdt" or "BTC/USDT" into
// the exchange pair "BTCUSDT".
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(symbolSeparators.Replace(strings.TrimSpace(symbol)))
}
