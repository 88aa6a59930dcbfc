package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/autotetris/internal/config"
	"github.com/vovakirdan/autotetris/internal/games/tetris"
	"github.com/vovakirdan/autotetris/internal/games/tetris/presets"
)

const defaultDelay = 100 * time.Millisecond

var (
	// Global flags
	flagSeed      int64
	flagDelay     time.Duration
	flagConfig    string
	flagPreset    string
	flagEvaluator string
	flagWorkers   int
	flagLogLevel  string
)

// settings is everything a command needs to build games.
type settings struct {
	cfg    config.TetrisConfig
	preset *presets.Preset
	logger *log.Logger
}

// loadSettings reads the config file, then lets explicitly set flags
// override it.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "autotetris",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.Pacing.TurnDelay = flagDelay
	}
	if flags.Changed("evaluator") {
		cfg.Agent.Evaluator = flagEvaluator
	}
	if flags.Changed("workers") {
		cfg.Agent.Workers = flagWorkers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg, logger: logger}
	if flagPreset != "" {
		p, err := presets.Resolve(flagPreset)
		if err != nil {
			return nil, err
		}
		s.preset = &p
		logger.Info("using preset", "id", p.ID, "name", p.Name)
	}
	return s, nil
}

// newGame builds an unstarted game from the settings.
func (s *settings) newGame() (*tetris.Game, error) {
	opts := []tetris.Option{tetris.WithLogger(s.logger)}
	if s.preset != nil {
		opts = append(opts, tetris.WithPreset(s.preset))
	}
	return tetris.New(s.cfg, opts...)
}

// resolveSeed turns the zero seed into a clock-based one.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
