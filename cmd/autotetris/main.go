// autotetris watches an autonomous agent play a falling-block puzzle.
//
// Usage:
//
//	autotetris run           - Play headless, printing each board to stdout
//	autotetris watch         - Watch the agent in a full-screen terminal view
//	autotetris serve         - Start SSH server; every connection watches its own game
//	autotetris evaluators    - List placement evaluators
//
// Global flags:
//
//	--seed <value>       - RNG seed for a reproducible run (0 = time based)
//	--delay <duration>   - Pause between turns (default: 100ms)
//	--config <path>      - YAML config file
//	--preset <id|path>   - Start from a board preset
//	--evaluator <name>   - Placement evaluator (default: lowest)
//	--workers <n>        - Concurrent candidate evaluations (0 = one per CPU)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autotetris",
	Short: "Autotetris - watch an agent play falling blocks",
	Long: `Autotetris drops random pieces onto a 20x10 board and lets an agent
place every one of them. Each turn the agent tries every rotation and
column, scores where the piece would land, and plays the best spot.
The run ends when no placement is left.

Available commands:
  run         - Headless run printed to stdout
  watch       - Full-screen spectator view
  serve       - SSH spectator server
  evaluators  - List placement evaluators

Examples:
  autotetris run --seed 42
  autotetris run --quiet --turns 500
  autotetris watch --delay 50ms --evaluator random
  autotetris run --preset well
  autotetris serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.DurationVar(&flagDelay, "delay", defaultDelay, "Pause between agent turns")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagPreset, "preset", "", "Board preset: builtin id or YAML file")
	pf.StringVar(&flagEvaluator, "evaluator", "lowest", "Placement evaluator (see 'autotetris evaluators')")
	pf.IntVar(&flagWorkers, "workers", 0, "Concurrent candidate evaluations (0 = one per CPU)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(evaluatorsCmd)
}
