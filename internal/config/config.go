package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Config is the root application configuration, read from the environment.
type Config struct {
	Server     ServerConfig
	Puzzle     PuzzleConfig
	Dictionary DictionaryConfig
	Translate  TranslateConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `env:"PORT"             env-default:"8080"`
	Env             string        `env:"ENV"              env-default:"development"`
	GinMode         string        `env:"GIN_MODE"`
	LogLevel        string        `env:"LOG_LEVEL"        env-default:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// PuzzleConfig holds the upstream puzzle service and date selection settings.
type PuzzleConfig struct {
	BaseURL      string        `env:"PUZZLE_BASE_URL" env-default:"https://www.nytimes.com/svc/wordle/v2"`
	Timeout      time.Duration `env:"PUZZLE_TIMEOUT"  env-default:"10s"`
	Timezone     string        `env:"TIMEZONE"        env-default:"Asia/Kolkata"`
	LookbackDays int           `env:"LOOKBACK_DAYS"   env-default:"730"`
}

// DictionaryConfig holds the meaning source endpoints and keys.
type DictionaryConfig struct {
	FreeDictionaryURL string        `env:"FREEDICT_BASE_URL"     env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	MerriamWebsterURL string        `env:"MW_BASE_URL"           env-default:"https://www.dictionaryapi.com/api/v3/references"`
	CollegiateAPIKey  string        `env:"MW_COLLEGIATE_API_KEY"`
	LearnersAPIKey    string        `env:"MW_LEARNERS_API_KEY"`
	Timeout           time.Duration `env:"DICTIONARY_TIMEOUT"    env-default:"5s"`
}

// TranslateConfig holds translation service settings.
type TranslateConfig struct {
	BaseURL    string        `env:"TRANSLATE_BASE_URL"    env-default:"https://translate.googleapis.com/translate_a/single"`
	SourceLang string        `env:"TRANSLATE_SOURCE_LANG" env-default:"en"`
	TargetLang string        `env:"TRANSLATE_TARGET_LANG" env-default:"hi"`
	Timeout    time.Duration `env:"TRANSLATE_TIMEOUT"     env-default:"5s"`
}

// IsProduction reports whether the server runs in release mode.
func (c ServerConfig) IsProduction() bool {
	return c.GinMode == "release" || c.Env == "production"
}

// Level parses LogLevel ("debug", "info", "warn" or "error").
func (c ServerConfig) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("server.log_level: %w", err)
	}
	return level, nil
}

// Location resolves the configured timezone. When the zone database is not
// available, Asia/Kolkata degrades to a fixed +05:30 zone.
func (c PuzzleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err == nil {
		return loc, nil
	}
	if c.Timezone == "Asia/Kolkata" {
		return time.FixedZone("IST", 5*60*60+30*60), nil
	}
	return nil, fmt.Errorf("load location %q: %w", c.Timezone, err)
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if _, err := c.Server.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Puzzle.BaseURL == "" {
		errs = append(errs, errors.New("puzzle.base_url is required"))
	}
	if c.Puzzle.LookbackDays < 1 {
		errs = append(errs, fmt.Errorf("puzzle.lookback_days must be positive, got %d", c.Puzzle.LookbackDays))
	}
	if c.Puzzle.Timeout <= 0 {
		errs = append(errs, errors.New("puzzle.timeout must be positive"))
	}
	if _, err := c.Puzzle.Location(); err != nil {
		errs = append(errs, err)
	}
	if c.Dictionary.Timeout <= 0 {
		errs = append(errs, errors.New("dictionary.timeout must be positive"))
	}
	if c.Translate.Timeout <= 0 {
		errs = append(errs, errors.New("translate.timeout must be positive"))
	}
	return errors.Join(errs...)
}
