package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(videosCmd)
	videosCmd.Flags().BoolP("count", "c", false, "Print only the number of videos")
}

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "List every video in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if lo.Must(cmd.Flags().GetBool("count")) {
			return d.Player().NumberOfVideos()
		}
		return d.Player().ShowAllVideos()
	},
}
