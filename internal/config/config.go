// Package config loads tickerbot settings from the environment using Viper
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/raykavin/tickerbot/pkg/core"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// Defaults
const (
	DefaultPort            = 5000
	DefaultMarketURL       = "https://api.binance.com"
	DefaultWebhookAttempts = 3
)

// AppConfig holds the application configuration
type AppConfig struct {
	Settings   core.Settings
	ConfigPath string
}

// Load reads .env (when present), an optional CONFIG_FILE and the process
// environment, in increasing order of precedence.
func Load() (*AppConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return load(viper.New())
}

// loadDotEnv loads .env (or the given files) into the process environment.
// Missing files are skipped; unreadable or malformed ones are an error.
func loadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func load(v *viper.Viper) (*AppConfig, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("MARKET_API_URL", DefaultMarketURL)
	v.SetDefault("MARKET_TIMEOUT", "")
	v.SetDefault("MARKET_DEBUG", false)
	v.SetDefault("WEBHOOK_ATTEMPTS", DefaultWebhookAttempts)
	v.SetDefault("TELEGRAM_API_URL", "")

	configPath := v.GetString("CONFIG_FILE")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	timeout, err := parseDuration(v.GetString("MARKET_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid MARKET_TIMEOUT: %w", err)
	}

	cfg := &AppConfig{
		Settings: core.Settings{
			Telegram: core.TelegramSettings{
				Token:           strings.TrimSpace(v.GetString("BOT_TOKEN")),
				BaseURL:         strings.TrimRight(strings.TrimSpace(v.GetString("BASE_URL")), "/"),
				APIURL:          v.GetString("TELEGRAM_API_URL"),
				WebhookAttempts: v.GetInt("WEBHOOK_ATTEMPTS"),
			},
			Server: core.ServerSettings{
				Port: v.GetInt("PORT"),
			},
			Market: core.MarketSettings{
				APIURL:  v.GetString("MARKET_API_URL"),
				Timeout: timeout,
				Debug:   v.GetBool("MARKET_DEBUG"),
			},
		},
		ConfigPath: configPath,
	}

	return cfg, nil
}

// Validate checks the values required to run the webhook server
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Settings.Telegram.Token == "" {
		errs = append(errs, fmt.Errorf("BOT_TOKEN: %w", core.ErrMissingToken))
	}
	if c.Settings.Telegram.BaseURL == "" {
		errs = append(errs, fmt.Errorf("BASE_URL: %w", core.ErrMissingBaseURL))
	}
	if c.Settings.Server.Port <= 0 || c.Settings.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %d", c.Settings.Server.Port))
	}
	return errors.Join(errs...)
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return str2duration.ParseDuration(s)
}
