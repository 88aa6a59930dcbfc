package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/autotetris/internal/core"
	"github.com/vovakirdan/autotetris/internal/platform/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the agent in a full-screen view",
	Long: `Open a full-screen terminal view and watch the agent play.

The view is passive: there are no gameplay controls.

Controls:
  Q/Ctrl+C   - Quit

Examples:
  autotetris watch
  autotetris watch --delay 30ms --seed 42`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	g, err := s.newGame()
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TurnDelay = s.cfg.Pacing.TurnDelay
	cfg.Seed = resolveSeed(flagSeed)

	st, err := tui.Run(g, cfg)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	out := cmd.OutOrStdout()
	if st.GameOver {
		fmt.Fprintln(out, "Game Over!")
	}
	fmt.Fprintln(out, "Thanks for playing!")
	fmt.Fprintln(out, g.Summary())
	return nil
}
