package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTickers(t *testing.T) {
	var buf bytes.Buffer
	renderTickers(&buf, []core.Ticker{{
		Symbol: "BTCUSDT", Last: "64000.1", ChangePercent: "1.2", High: "65000", Low: "63000",
		Volume: "1500", QuoteVolume: "96000000",
	}})

	out := buf.String()
	assert.Contains(t, out, "SYMBOL")
	assert.Contains(t, out, "BTCUSDT")
	assert.Contains(t, out, "1.2%")
}

func TestTopCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"symbol":"AAAUSDT","lastPrice":"1","priceChangePercent":"0","quoteVolume":"10"},
			{"symbol":"BBBUSDT","lastPrice":"2","priceChangePercent":"0","quoteVolume":"30"},
			{"symbol":"CCCUSDT","lastPrice":"3","priceChangePercent":"0","quoteVolume":"20"}
		]`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("MARKET_API_URL", srv.URL)

	var buf bytes.Buffer
	cmd := buildTopCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-n", "2"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "BBBUSDT")
	assert.Contains(t, out, "CCCUSDT")
	assert.NotContains(t, out, "AAAUSDT")
}
