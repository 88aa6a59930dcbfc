// Package config provides YAML-based configuration loading for autotetris.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for a simulation run.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Agent  AgentConfig  `yaml:"agent"`
	Pacing PacingConfig `yaml:"pacing"`
}

// BoardConfig defines board geometry.
type BoardConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	SpawnRow int `yaml:"spawn_row"`
	SpawnCol int `yaml:"spawn_col"`
}

// AgentConfig selects the evaluator and search parallelism.
type AgentConfig struct {
	Evaluator string `yaml:"evaluator"`
	Workers   int    `yaml:"workers"` // 0 = GOMAXPROCS
}

// PacingConfig controls how fast turns are shown.
type PacingConfig struct {
	TurnDelay time.Duration `yaml:"turn_delay"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports the first inconsistent setting.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Rows <= 0 || c.Board.Cols <= 0:
		return fmt.Errorf("config: board %dx%d: %w", c.Board.Rows, c.Board.Cols, ErrInvalid)
	case c.Board.SpawnRow < 0 || c.Board.SpawnRow >= c.Board.Rows,
		c.Board.SpawnCol < 0 || c.Board.SpawnCol >= c.Board.Cols:
		return fmt.Errorf("config: spawn (%d,%d) outside board: %w", c.Board.SpawnRow, c.Board.SpawnCol, ErrInvalid)
	case c.Agent.Workers < 0:
		return fmt.Errorf("config: workers %d: %w", c.Agent.Workers, ErrInvalid)
	case c.Agent.Evaluator == "":
		return fmt.Errorf("config: empty evaluator: %w", ErrInvalid)
	case c.Pacing.TurnDelay < 0:
		return fmt.Errorf("config: negative turn delay: %w", ErrInvalid)
	}
	return nil
}
