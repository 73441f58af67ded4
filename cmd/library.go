package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidcat/vidcat/icon"
	"github.com/vidcat/vidcat/key"
	"github.com/vidcat/vidcat/library"
	"github.com/vidcat/vidcat/style"
)

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(librarySchemaCmd, libraryCheckCmd)
}

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect video library files",
}

var librarySchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of .json library files",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(string(lo.Must(library.Schema())))
	},
}

var libraryCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a library file, defaulting to the configured one",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := viper.GetString(key.LibraryPath)
		if len(args) == 1 {
			path = args[0]
		}

		lib, err := library.Load(path)
		if err != nil {
			cmd.PrintErrln(style.ErrorBox(
				fmt.Sprintf("%s Invalid library", icon.Get(icon.Fail)),
				err.Error(),
				"Run \"vidcat library schema\" for the JSON format, or use lines like \"Title | video_id | #tag1 , #tag2\"",
			))
			handleErr(fmt.Errorf("library check failed"))
		}

		cmd.Printf("%d videos in the library\n", lib.Len())
	},
}
