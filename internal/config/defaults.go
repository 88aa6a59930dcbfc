package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows:     20,
			Cols:     10,
			SpawnRow: 0,
			SpawnCol: 4,
		},
		Agent: AgentConfig{
			Evaluator: "lowest",
			Workers:   0,
		},
		Pacing: PacingConfig{
			TurnDelay: 100 * time.Millisecond,
		},
	}
}
