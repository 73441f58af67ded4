package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vidcat/vidcat/shell"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <script>...",
	Short: "Execute command scripts in a single session",
	Long: `Execute command scripts in a single session.
Scripts hold one command per line, as typed in the shell. Blank lines and lines starting with # are skipped, EXIT ends the run.`,
	Example: "vidcat run playlists.txt --seed 42",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return shell.RunFiles(d, args...)
	},
}
