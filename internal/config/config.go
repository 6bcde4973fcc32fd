package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	KindHuman   = "human"
	KindRandom  = "random"
	KindMinimax = "minimax"
)

type Config struct {
	LogLevel      string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	MaxRejections int      `yaml:"max-rejections" env:"MAX_REJECTIONS" env-default:"3" validate:"gte=1"`
	Players       []Player `yaml:"players" validate:"len=2,dive"`
}

// Player configures one side. The first configured player is X and
// moves first.
type Player struct {
	Name string `yaml:"name" validate:"required"`
	Kind string `yaml:"kind" validate:"required,oneof=human random minimax"`
}

// MustLoad - loads the config file if present, falls back to defaults
// plus environment overrides otherwise, and panics on anything invalid.
func MustLoad(path string) *Config {
	config := defaults()

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment: %w", err))
	}

	if err := validator.New().Struct(config); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return config
}

func defaults() *Config {
	return &Config{
		LogLevel:      "info",
		MaxRejections: 3,
		Players: []Player{
			{Name: "You", Kind: KindHuman},
			{Name: "Computer", Kind: KindMinimax},
		},
	}
}
