package zerolog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/raykavin/tickerbot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	zl, err := New(Options{Level: "debug", JSON: true, Output: &buf})
	require.NoError(t, err)

	log := NewAdapter(zl)
	log.WithFields(map[string]any{"command": "price"}).
		WithField("symbol", "BTCUSDT").
		WithError(errors.New("boom")).
		Error("request failed")

	out := buf.String()
	assert.Contains(t, out, `"command":"price"`)
	assert.Contains(t, out, `"symbol":"BTCUSDT"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"message":"request failed"`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLevelConversion(t *testing.T) {
	for _, level := range []logger.Level{logger.DebugLevel, logger.InfoLevel, logger.ErrorLevel} {
		assert.Equal(t, level, toLevel(toZerologLevel(level)))
	}
}
