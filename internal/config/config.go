// Package config loads client settings from a .env file, the environment
// and an optional config file, in that order of discovery.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the well API root used when no override is configured.
const DefaultBaseURL = "https://vulkan.sumeetsaini.com/well"

// ErrMissingAPIKey is returned when no API key can be found anywhere.
var ErrMissingAPIKey = errors.New("WELL_API_KEY not set; add it to .env or the environment")

// Config holds everything the client needs to talk to the store and run
// the editor.
type Config struct {
	APIKey  string
	BaseURL string
	Editor  string
	Timeout time.Duration
}

// Load reads configuration. Lookup order per key: .env in the working
// directory, process environment (WELL_*), then config.yaml in
// ~/.config/well or the working directory. The API key is required;
// everything else has defaults.
func Load() (*Config, error) {
	// .env holds the API key for the original client; missing is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "well"))
	}
	v.SetEnvPrefix("WELL")
	v.AutomaticEnv()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("editor", "")
	v.SetDefault("timeout", "30s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	apiKey := v.GetString("api_key")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout := v.GetDuration("timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Config{
		APIKey:  apiKey,
		BaseURL: v.GetString("base_url"),
		Editor:  v.GetString("editor"),
		Timeout: timeout,
	}, nil
}
