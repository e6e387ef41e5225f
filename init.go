package tickerbot

import (
	"os"
	"strconv"

	"github.com/raykavin/tickerbot/pkg/logger/zerolog"
)

const (
	// Default configuration values
	defaultLogLevel      = "debug"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogLevel      = "TICKERBOT_LOG_LEVEL"
	envLogTimeFormat = "TICKERBOT_LOG_TIME_FORMAT"
	envLogColor      = "TICKERBOT_LOG_COLOR"
	envLogJSON       = "TICKERBOT_LOG_JSON"
)

func init() {
	opts, err := logOptionsFromEnv()
	if err != nil {
		panic(err)
	}

	log, err := zerolog.New(opts)
	if err != nil {
		panic(err)
	}

	DefaultLog = zerolog.NewAdapter(log)
}

// logOptionsFromEnv reads the logger configuration from environment variables
func logOptionsFromEnv() (zerolog.Options, error) {
	colored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return zerolog.Options{}, err
	}

	json, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return zerolog.Options{}, err
	}

	return zerolog.Options{
		Level:      getEnvWithDefault(envLogLevel, defaultLogLevel),
		TimeLayout: getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat),
		Colored:    colored,
		JSON:       json,
	}, nil
}

// getEnvWithDefault returns the value of the environment variable or the default if not set
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolEnv gets a boolean environment variable with a default value
func parseBoolEnv(key, defaultValue string) (bool, error) {
	return strconv.ParseBool(getEnvWithDefault(key, defaultValue))
}
