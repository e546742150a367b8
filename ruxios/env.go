package ruxios

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Getenv returns the value of the environment variable key.
// An unset variable yields a KindEnv *Error[Value] wrapping ErrEnvNotPresent.
func Getenv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", newError[Value](KindEnv, 0, fmt.Errorf("%s: %w", key, ErrEnvNotPresent))
	}
	return v, nil
}

type envLoader struct {
	files []string
}

// EnvOption configures ConfigFromEnv.
type EnvOption func(*envLoader)

// WithEnvFile loads dotenv files before reading the environment. Variables
// already set in the process take precedence over the files.
func WithEnvFile(paths ...string) EnvOption {
	return func(l *envLoader) {
		l.files = append(l.files, paths...)
	}
}

// ConfigFromEnv builds a Config from environment variables named after
// prefix:
//
//	<PREFIX>_BASE_URL    required
//	<PREFIX>_TIMEOUT_MS  optional, milliseconds, default 10000
//	<PREFIX>_HEADERS     optional, "Name: value" entries separated by ';'
//
// Failures are KindEnv *Error[Value]. The package never reads the
// environment unless this function or Getenv is called.
//
// Example:
//
//	// GITHUB_BASE_URL=https://api.github.com
//	// GITHUB_HEADERS="Accept: application/vnd.github+json"
//	cfg, err := ruxios.ConfigFromEnv("GITHUB", ruxios.WithEnvFile(".env"))
//	client := ruxios.New(ruxios.WithConfig(cfg))
func ConfigFromEnv(prefix string, opts ...EnvOption) (Config, error) {
	var l envLoader
	for _, opt := range opts {
		opt(&l)
	}

	if len(l.files) > 0 {
		if err := godotenv.Load(l.files...); err != nil {
			return Config{}, newError[Value](KindEnv, 0, fmt.Errorf("load env file: %w", err))
		}
	}

	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	cfg := DefaultConfig()

	if !v.IsSet("base_url") {
		return Config{}, newError[Value](KindEnv, 0, fmt.Errorf("%s: %w", envName(prefix, "BASE_URL"), ErrEnvNotPresent))
	}
	cfg.BaseURL = v.GetString("base_url")

	if raw := strings.TrimSpace(v.GetString("timeout_ms")); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return Config{}, newError[Value](KindEnv, 0,
				fmt.Errorf("%s: invalid timeout %q", envName(prefix, "TIMEOUT_MS"), raw))
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}

	for _, entry := range strings.Split(v.GetString("headers"), ";") {
		if entry = strings.TrimSpace(entry); entry != "" {
			cfg.DefaultHeaders = append(cfg.DefaultHeaders, entry)
		}
	}

	return cfg, nil
}

func envName(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.ToUpper(prefix) + "_" + key
}
