// Package testutils holds fakes shared by package tests.
package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// TelegramCall is one request received by the fake Bot API
type TelegramCall struct {
	Method string
	Params map[string]any
}

// FakeTelegram emulates the subset of the Telegram Bot API the bot uses
type FakeTelegram struct {
	*httptest.Server

	mu       sync.Mutex
	calls    []TelegramCall
	failures map[string]int
}

// NewFakeTelegram starts a fake Bot API that is closed with the test
func NewFakeTelegram(t *testing.T) *FakeTelegram {
	t.Helper()

	f := &FakeTelegram{failures: make(map[string]int)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)

	return f
}

// FailNext makes the next n calls to method answer with an API error
func (f *FakeTelegram) FailNext(method string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method] = n
}

// Calls returns every call made to method, or all calls when method is empty
func (f *FakeTelegram) Calls(method string) []TelegramCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []TelegramCall
	for _, c := range f.calls {
		if method == "" || c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Methods lists the called methods in order
func (f *FakeTelegram) Methods() []string {
	calls := f.Calls("")
	methods := make([]string, len(calls))
	for i, c := range calls {
		methods[i] = c.Method
	}
	return methods
}

func (f *FakeTelegram) serve(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	params := make(map[string]any)
	_ = json.NewDecoder(r.Body).Decode(&params)

	f.mu.Lock()
	f.calls = append(f.calls, TelegramCall{Method: method, Params: params})
	fail := f.failures[method] > 0
	if fail {
		f.failures[method]--
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if fail {
		_, _ = w.Write([]byte(`{"ok":false,"error_code":500,"description":"Internal Server Error"}`))
		return
	}

	switch method {
	case "getMe":
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Ticker","username":"ticker_bot"}}`))
	case "sendMessage":
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"},"text":"ok"}}`))
	default:
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}
}
