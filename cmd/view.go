package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/stdinfuzz/internal/domain"
	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last stored run report",
		Long:  "View the most recent run report stored in the --output directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			return s.workflowFor(cmd, func() {}).View(domain.ViewArgs{Reports: m.Path(s.cfg.Output)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
