// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr              string        `env:"CALPUZZLE_ADDR" envDefault:":8080"`
	LogLevel          string        `env:"CALPUZZLE_LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"CALPUZZLE_LOG_FORMAT" envDefault:"console"`
	Timezone          string        `env:"CALPUZZLE_TIMEZONE" envDefault:"Local"`
	MaxSessions       int           `env:"CALPUZZLE_MAX_SESSIONS" envDefault:"1024"`
	ReadHeaderTimeout time.Duration `env:"CALPUZZLE_READ_HEADER_TIMEOUT" envDefault:"5s"`
}

// LoadDotEnv loads the first .env file found among paths. Variables already
// set in the environment win. Missing files are not an error; a file that
// exists but does not parse is.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		return nil
	}
	return nil
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxSessions <= 0 {
		return Config{}, fmt.Errorf("parse env: CALPUZZLE_MAX_SESSIONS must be positive, got %d", cfg.MaxSessions)
	}
	return cfg, nil
}

// Location resolves Timezone; "Local" and "" mean the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Level maps LogLevel to a zerolog level, defaulting to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
