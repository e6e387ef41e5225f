package core

import (
	"errors"
	"time"
)

// Required settings for the webhook bot
var (
	ErrMissingToken   = errors.New("telegram bot token is not set")
	ErrMissingBaseURL = errors.New("webhook base url is not set")
)

// Settings represents the main configuration for the application
type Settings struct {
	Telegram TelegramSettings // Telegram bot and webhook settings
	Server   ServerSettings   // Inbound HTTP settings
	Market   MarketSettings   // Upstream market-data settings
}

// TelegramSettings holds configuration for the Telegram integration
type TelegramSettings struct {
	Token           string // Telegram bot token, also the webhook path
	BaseURL         string // Public base URL Telegram calls, e.g. https://bot.example.com
	APIURL          string // Telegram Bot API URL, empty for the default
	WebhookAttempts int    // Attempts made to register the webhook at startup
}

// ServerSettings holds the HTTP listener configuration
type ServerSettings struct {
	Port int
}

// MarketSettings holds the market-data client configuration
type MarketSettings struct {
	APIURL  string        // REST base URL
	Timeout time.Duration // Zero keeps the HTTP client default
	Debug   bool
}

// WebhookURL is the URL registered with Telegram.
func (t TelegramSettings) WebhookURL() string {
	return t.BaseURL + "/" + t.Token
}
