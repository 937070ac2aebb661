package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] <command>",
		Short: "Feed mutated seed inputs to a command until it exits non-zero",
		Long: `Run builds the candidate pools, expands the seed into the full mutation
sequence and feeds each mutated input to the command's standard input, one
process at a time. The run stops at the first non-zero exit status or after
--max-tests inputs, and the report is stored under --output.`,
		Args: cobra.ArbitraryArgs,
		RunE: runFuzz,
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
