package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List shows the candidate pools generated for --rand-seed, the number of
mutations each pool contributes for the seed, and how many of them a run
would execute given --max-tests. Nothing is executed.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show candidate pools and mutation counts",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			args, err := s.estimateArgs()
			if err != nil {
				return err
			}

			return s.workflowFor(cmd, func() {}).Estimate(args)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
