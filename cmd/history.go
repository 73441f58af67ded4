package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidcat/vidcat/color"
	"github.com/vidcat/vidcat/history"
	"github.com/vidcat/vidcat/style"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Show at most this many commands")
}

var historyCmd = &cobra.Command{
	Use:   "history [partial]",
	Short: "Show remembered shell commands, most used first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := history.Get()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			matched := history.SuggestMany(args[0])
			records = lo.Filter(records, func(r *history.Record, _ int) bool {
				return lo.Contains(matched, r.Line)
			})
		}

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(records) > limit {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(records)
		}

		for _, r := range records {
			cmd.Printf("%s %s\n", style.Fg(color.Yellow)(fmt.Sprintf("%4d", r.Rank)), r.Line)
		}
		return nil
	},
}
