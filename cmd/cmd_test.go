package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidcat/vidcat/config"
	"github.com/vidcat/vidcat/constant"
	"github.com/vidcat/vidcat/filesystem"
	"github.com/vidcat/vidcat/key"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func execute(args ...string) string {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	So(rootCmd.Execute(), ShouldBeNil)
	return out.String()
}

func TestRunCommand(t *testing.T) {
	Convey("Given a script on disk", t, func() {
		script := strings.Join([]string{
			"CREATE_PLAYLIST favourites",
			"ADD_TO_PLAYLIST FAVOURITES funny_dogs_video_id",
			"PLAY funny_dogs_video_id",
			"SHOW_PLAYING",
		}, "\n")
		So(filesystem.API().WriteFile("/scripts/session.txt", []byte(script), 0o644), ShouldBeNil)

		Convey("run prints the session output", func() {
			So(execute("run", "/scripts/session.txt"), ShouldEqual, strings.Join([]string{
				"Successfully created new playlist: favourites",
				"Added video to FAVOURITES: Funny Dogs",
				"Playing video: Funny Dogs",
				"Currently playing: Funny Dogs (funny_dogs_video_id) [#dog #animal]",
				"",
			}, "\n"))
		})
	})
}

func TestVideosCommand(t *testing.T) {
	Convey("videos lists the configured library", t, func() {
		So(filesystem.API().WriteFile("/lib/two.txt", []byte("B video | b | #b\nA video | a |\n"), 0o644), ShouldBeNil)
		viper.Set(key.LibraryPath, "/lib/two.txt")
		defer viper.Set(key.LibraryPath, "")

		So(execute("videos"), ShouldEqual, "Here's a list of all available videos:\nA video (a) []\nB video (b) [#b]\n")
	})
}

func TestLibraryCommands(t *testing.T) {
	Convey("library schema prints a JSON schema", t, func() {
		So(execute("library", "schema"), ShouldContainSubstring, `"type": "array"`)
	})

	Convey("library check counts the embedded videos", t, func() {
		So(execute("library", "check"), ShouldEqual, "5 videos in the library\n")
	})
}

func TestConfigKeys(t *testing.T) {
	Convey("Unknown keys suggest the closest one", t, func() {
		So(errUnknownKey("shell.promt").Error(), ShouldContainSubstring, key.ShellPrompt)
	})
}

func TestVersionCommand(t *testing.T) {
	Convey("version --short prints the bare version", t, func() {
		So(execute("version", "--short"), ShouldEqual, constant.Version+"\n")
	})
}
