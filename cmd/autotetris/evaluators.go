package main

import (
	"fmt"

	"github.com/spf13/cobra"

	// Registers the built-in evaluators.
	_ "github.com/vovakirdan/autotetris/internal/agent"
	"github.com/vovakirdan/autotetris/internal/registry"
)

var evaluatorsCmd = &cobra.Command{
	Use:   "evaluators",
	Short: "List placement evaluators",
	Long:  `Shows every evaluator the agent can use with --evaluator.`,
	Args:  cobra.NoArgs,
	Run:   runEvaluators,
}

func runEvaluators(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	evals := registry.List()

	if len(evals) == 0 {
		fmt.Fprintln(out, "No evaluators available.")
		return
	}

	fmt.Fprintln(out, "Available evaluators:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range evals {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, e := range evals {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, e.Name, e.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'autotetris run --evaluator <name>' to use one.")
}
