package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FirstPlayerHuman    = "human"
	FirstPlayerComputer = "computer"

	UndoPolicyRound  = "round"
	UndoPolicySingle = "single"
)

var (
	ErrUnknownFirstPlayer = errors.New("unknown first player")
	ErrUnknownUndoPolicy  = errors.New("unknown undo policy")
)

type Config struct {
	LogLevel    string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	FirstPlayer string     `yaml:"first-player" env:"FIRST_PLAYER" env-default:"human"`
	UndoPolicy  string     `yaml:"undo-policy" env:"UNDO_POLICY" env-default:"round"`
	TreeExport  TreeExport `yaml:"tree-export"`
}

// TreeExport controls the optional Graphviz dump of the game tree at start-up.
type TreeExport struct {
	Path  string `yaml:"path" env:"TREE_EXPORT_PATH" env-default:""`
	Depth int    `yaml:"depth" env:"TREE_EXPORT_DEPTH" env-default:"2"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.FirstPlayer {
	case FirstPlayerHuman, FirstPlayerComputer:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFirstPlayer, that.FirstPlayer)
	}

	switch that.UndoPolicy {
	case UndoPolicyRound, UndoPolicySingle:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUndoPolicy, that.UndoPolicy)
	}

	return nil
}

func (that *Config) ComputerFirst() bool {
	return that.FirstPlayer == FirstPlayerComputer
}
