// Package cli implements the verdyce command line: create proposals, cast
// votes and trigger evaluation against the Redis-backed proposal store.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verdyce",
	Short: "Verdyce time-decay voting CLI",
	Long: `Verdyce evaluates governance proposals under a time-decay voting model:
vote influence shrinks the longer a voter waits, and the approval bar a
proposal must clear rises over time.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newProposalCmd)
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(listCmd)
}
