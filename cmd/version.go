package cmd

import (
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Build metadata, overridden at build time with
// -ldflags "-X github.com/mouse-blink/stdinfuzz/cmd.version=v1.2.3".
var (
	version   = ""
	gitCommit = ""
)

var versionStyle = color.New(color.Bold)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the stdinfuzz version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v, commit := buildVersion()

			cmd.Printf("stdinfuzz %s\n", versionStyle.Sprint(v))

			if commit != "" {
				cmd.Printf("commit %s\n", commit)
			}
		},
	}

	return cmd
}

// buildVersion prefers ldflags values and falls back to module build info.
func buildVersion() (string, string) {
	v, commit := version, gitCommit

	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "" && info.Main.Version != "" {
			v = info.Main.Version
		}

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && commit == "" {
				commit = setting.Value
			}
		}
	}

	if v == "" {
		v = "dev"
	}

	return v, commit
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
