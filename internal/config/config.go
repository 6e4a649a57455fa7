// Package config loads the runtime settings of the game from an optional
// .env file, SINGE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	HistoryMemory = "memory"
	HistorySQLite = "sqlite"
)

// Config holds the game settings.
type Config struct {
	Dictionary string `env:"SINGE_DICTIONARY" envDefault:"./ods4.txt"`
	LogLevel   string `env:"SINGE_LOG_LEVEL"  envDefault:"warn"`
	Seed       int64  `env:"SINGE_SEED"` // 0: seed from the clock
	History    string `env:"SINGE_HISTORY"    envDefault:"memory"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads .env (if present), the environment, then flags from args.
// The remaining positional arguments are returned.
func Load(fs *flag.FlagSet, args []string) (Config, []string, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, nil, err
	}

	fs.StringVar(&cfg.Dictionary, "dict", cfg.Dictionary, "path to the sorted word list")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the robots (0: clock)")
	fs.StringVar(&cfg.History, "history", cfg.History, "round journal backend (memory, sqlite)")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	switch cfg.History {
	case HistoryMemory, HistorySQLite:
	default:
		return Config{}, nil, fmt.Errorf("unknown history backend %q", cfg.History)
	}
	return cfg, fs.Args(), nil
}
