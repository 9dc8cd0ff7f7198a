package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "SUECA_BOT_"

// Config holds the bot's run options.
type Config struct {
	Strategy string
	// Seed for the random source; 0 seeds from the clock.
	Seed     int64
	LogLevel string
	// Verbose prints the decoded game state to stderr.
	Verbose bool
}

// Defaults returns a Config with the values used when nothing is set.
func Defaults() *Config {
	return &Config{
		Strategy: "follow",
		LogLevel: "warn",
	}
}

// Load starts from Defaults, reads envFile into the environment if it
// exists (variables already set win), then applies SUECA_BOT_* overrides.
func Load(envFile string) (*Config, error) {
	cfg := Defaults()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("couldn't load %s: %w", envFile, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	overrideString(&cfg.Strategy, "STRATEGY")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	if err := overrideInt64(&cfg.Seed, "SEED"); err != nil {
		return nil, err
	}
	if err := overrideBool(&cfg.Verbose, "VERBOSE"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overrideString(field *string, key string) {
	if val := os.Getenv(envPrefix + key); val != "" {
		*field = val
	}
}

func overrideInt64(field *int64, key string) error {
	if val := os.Getenv(envPrefix + key); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s%s: %q", envPrefix, key, val)
		}
		*field = n
	}
	return nil
}

func overrideBool(field *bool, key string) error {
	if val := os.Getenv(envPrefix + key); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid value for %s%s: %q", envPrefix, key, val)
		}
		*field = b
	}
	return nil
}
