// Package cmd implements the command-line interface for vidcat.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidcat/vidcat/color"
	"github.com/vidcat/vidcat/constant"
	"github.com/vidcat/vidcat/icon"
	"github.com/vidcat/vidcat/key"
	"github.com/vidcat/vidcat/log"
	"github.com/vidcat/vidcat/shell"
	"github.com/vidcat/vidcat/style"
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("library", "l", "", "Load videos from this library file instead of the embedded one")
	lo.Must0(viper.BindPFlag(key.LibraryPath, rootCmd.PersistentFlags().Lookup("library")))

	rootCmd.PersistentFlags().Int("seed", 0, "Seed random playback for reproducible sessions")
	lo.Must0(viper.BindPFlag(key.PlayerRandomSeed, rootCmd.PersistentFlags().Lookup("seed")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

var rootCmd = &cobra.Command{
	Use:   constant.Vidcat,
	Short: "Browse a video catalog, play videos and keep playlists",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse a video catalog, play videos and keep playlists"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		d, err := newDispatcher(cmd.OutOrStdout())
		handleErr(err)

		handleErr(shell.Run(d, &shell.Options{
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			Prompt: viper.GetString(key.ShellPrompt),
		}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
