package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raykavin/tickerbot/pkg/core"
)

// ErrorText is the single reply sent for any failed market request
const ErrorText = "❌ Failed to fetch market data."

const volumeWidth = 10

// FormatHelp renders the /start reply
func FormatHelp(commands []Definition, topSize int) string {
	var sb strings.Builder
	sb.WriteString("👋 Hi! I answer with public crypto market data.\n\n")
	sb.WriteString("Available commands:\n")
	for _, c := range commands {
		if c.Name == Start {
			continue
		}
		description := c.Description
		if c.Name == Top {
			description = fmt.Sprintf("top %d pairs by volume", topSize)
		}
		fmt.Fprintf(&sb, "• %s - %s\n", c.Usage, description)
	}
	return sb.String()
}

// FormatUsage renders the hint sent when a command misses its argument
func FormatUsage(c Definition) string {
	return "Usage: " + c.Usage
}

// FormatPrice renders the /price reply. The price is shown as received.
func FormatPrice(symbol, price string) string {
	return fmt.Sprintf("💰 Price %s: $%s", symbol, price)
}

// FormatTop renders the /top reply
func FormatTop(tickers []core.Ticker) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔥 Top %d pairs by volume:\n\n", len(tickers))
	for _, t := range tickers {
		fmt.Fprintf(&sb, "%s: $%s (vol $%s)\n", t.Symbol, t.Last, truncate(t.QuoteVolume, volumeWidth))
	}
	return sb.String()
}

// FormatInfo renders the /info reply
func FormatInfo(symbol string, t core.Ticker) (string, error) {
	change, err := strconv.ParseFloat(t.ChangePercent, 64)
	if err != nil {
		return "", fmt.Errorf("invalid change percent %q: %w", t.ChangePercent, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Info %s\n\n", symbol)
	fmt.Fprintf(&sb, "Price: $%s\n", t.Last)
	fmt.Fprintf(&sb, "Change: %.2f%%\n", change)
	fmt.Fprintf(&sb, "High: $%s\n", t.High)
	fmt.Fprintf(&sb, "Low: $%s\n", t.Low)
	fmt.Fprintf(&sb, "Volume: %s\n", t.Volume)
	return sb.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
