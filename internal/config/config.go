package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	MinBoardSize = 6
	MaxBoardSize = 9
)

type Config struct {
	Stage     string `env:"STAGE" envDefault:"dev"`
	BoardSize int    `env:"SEABATTLE_BOARD_SIZE" envDefault:"6"`

	// 0 means a fresh seed on every run
	Seed    int64  `env:"SEABATTLE_SEED" envDefault:"0"`
	Locale  string `env:"SEABATTLE_LOCALE" envDefault:"en-US"`
	Verbose bool   `env:"SEABATTLE_VERBOSE" envDefault:"false"`
}

// Load reads the .env file outside of prod, then the environment.
// A missing .env file is not an error for a local run.
func Load(envFile string) (Config, error) {
	var cfg Config

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	if cfg.Stage != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
		if err := ParseEnv(&cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Stage != StageDev && c.Stage != StageProd {
		return cerr.ErrInvalidStage(c.Stage)
	}
	if c.BoardSize < MinBoardSize || c.BoardSize > MaxBoardSize {
		return cerr.ErrBoardSizeOutOfRange(c.BoardSize, MinBoardSize, MaxBoardSize)
	}
	return nil
}
