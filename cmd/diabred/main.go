// Package main provides the diabred CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "diabred",
		Short: "DIABRED BOLIVIA educational glycemic risk tools",
		Long: `diabred evaluates the educational glycemic risk predictor, answers
questions with the FAQ assistant, and manages the evaluation database.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newEvaluateCmd(),
		newAskCmd(),
		newMigrateCmd(),
	)
	return rootCmd
}
