package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidcat/vidcat/color"
	"github.com/vidcat/vidcat/constant"
	"github.com/vidcat/vidcat/style"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Print build metadata as json")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
		default:
			cmd.Println(style.Fg(color.Purple)("▇▇▇ " + constant.Vidcat))
			cmd.Println()
			for _, row := range [][2]string{
				{"Version", info.Version},
				{"Git Commit", info.Revision},
				{"Build Date", info.BuiltAt},
				{"Built By", info.BuiltBy},
				{"Platform", info.Platform},
			} {
				cmd.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-15s", row[0])), style.Bold(row[1]))
			}
		}
	},
}
