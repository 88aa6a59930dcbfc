package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autotetris/internal/core"
)

// clearScreen homes the cursor and erases the terminal.
const clearScreen = "\033[H\033[2J"

var (
	flagTurns int
	flagQuiet bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a game headless and print each board",
	Long: `Run the agent in the current terminal without a full-screen UI.

Before every turn the screen is cleared and the board is printed with the
score under it. The run stops when the agent finds no placement, when
--turns is reached, or on Ctrl+C.

Examples:
  autotetris run
  autotetris run --seed 7 --delay 0
  autotetris run --quiet --turns 1000`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTurns, "turns", 0, "Stop after this many turns (0 = until game over)")
	runCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print only the final summary")
}

func runRun(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	g, err := s.newGame()
	if err != nil {
		return err
	}

	seed := resolveSeed(flagSeed)
	rc := core.DefaultConfig()
	rc.TurnDelay = s.cfg.Pacing.TurnDelay
	rc.Seed = seed
	g.Reset(rc)
	s.logger.Debug("run started", "seed", seed, "evaluator", g.Evaluator())

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	delay := s.cfg.Pacing.TurnDelay

	for {
		if !flagQuiet {
			fmt.Fprint(out, clearScreen)
			fmt.Fprint(out, g.Frame())

			select {
			case <-ctx.Done():
				s.logger.Info("interrupted", "turns", g.State().Turns)
				return nil
			case <-time.After(delay):
			}
		} else if ctx.Err() != nil {
			return nil
		}

		st := g.Step().State
		if st.GameOver {
			fmt.Fprintln(out, "Game Over!")
			break
		}
		if flagTurns > 0 && st.Turns >= flagTurns {
			break
		}
	}

	fmt.Fprintln(out, "Thanks for playing!")
	fmt.Fprintln(out, g.Summary())
	return nil
}
