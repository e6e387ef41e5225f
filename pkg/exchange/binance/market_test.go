package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickerBTC = `{"symbol":"BTCUSDT","priceChange":"120.00","priceChangePercent":"1.234",
"lastPrice":"64000.10","highPrice":"65000.00","lowPrice":"63000.00",
"volume":"1500.5","quoteVolume":"96000000.12345"}`

const tickerETH = `{"symbol":"ETHUSDT","priceChange":"-3.00","priceChangePercent":"-0.500",
"lastPrice":"3100.5","highPrice":"3200","lowPrice":"3000",
"volume":"40000","quoteVolume":"124000000.9"}`

func newTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	calls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/ticker/price", func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("symbol") {
		case "BTCUSDT":
			_, _ = w.Write([]byte(`{"symbol":"BTCUSDT","price":"100.5"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
		}
	})
	mux.HandleFunc("/api/v3/ticker/24hr", func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("symbol") {
		case "":
			_, _ = w.Write([]byte("[" + tickerBTC + "," + tickerETH + "]"))
		case "BTCUSDT":
			_, _ = w.Write([]byte(tickerBTC))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestMarket_Price(t *testing.T) {
	srv, calls := newTestServer(t)
	market := NewMarket(WithBaseURL(srv.URL))

	price, err := market.Price(context.Background(), "btc-usdt")
	require.NoError(t, err)
	assert.Equal(t, "100.5", price)
	assert.Equal(t, 1, *calls)
}

func TestMarket_PriceUnknownSymbol(t *testing.T) {
	srv, _ := newTestServer(t)
	market := NewMarket(WithBaseURL(srv.URL))

	_, err := market.Price(context.Background(), "NOPE-USDT")
	require.ErrorIs(t, err, core.ErrSymbolNotFound)
}

func TestMarket_Ticker(t *testing.T) {
	srv, _ := newTestServer(t)
	market := FromSettings(core.MarketSettings{APIURL: srv.URL})

	ticker, err := market.Ticker(context.Background(), "BTC/USDT")
	require.NoError(t, err)
	assert.Equal(t, core.Ticker{
		Symbol:        "BTCUSDT",
		Last:          "64000.10",
		High:          "65000.00",
		Low:           "63000.00",
		Volume:        "1500.5",
		QuoteVolume:   "96000000.12345",
		ChangePercent: "1.234",
	}, ticker)
}

func TestMarket_TickerUnknownSymbol(t *testing.T) {
	srv, _ := newTestServer(t)
	market := NewMarket(WithBaseURL(srv.URL))

	_, err := market.Ticker(context.Background(), "DOGE-EUR")
	require.ErrorIs(t, err, core.ErrSymbolNotFound)
}

func TestMarket_Tickers(t *testing.T) {
	srv, calls := newTestServer(t)
	market := NewMarket(WithBaseURL(srv.URL))

	tickers, err := market.Tickers(context.Background())
	require.NoError(t, err)
	require.Len(t, tickers, 2)
	assert.Equal(t, "BTCUSDT", tickers[0].Symbol)
	assert.Equal(t, "124000000.9", tickers[1].QuoteVolume)
	assert.Equal(t, 1, *calls)
}

func TestMarket_UpstreamDown(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.Close()

	market := NewMarket(WithBaseURL(srv.URL))
	_, err := market.Tickers(context.Background())
	require.Error(t, err)
}

func TestNormalizeSymbol(t *testing.T) {
	tests := map[string]string{
		"BTC-USDT":  "BTCUSDT",
		"btc/usdt":  "BTCUSDT",
		"eth_btc":   "ETHBTC",
		" SOLUSDT ": "SOLUSDT",
		"":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeSymbol(in), in)
	}
}
