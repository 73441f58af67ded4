package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidcat/vidcat/filesystem"
	"github.com/vidcat/vidcat/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error when no config file exists", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetString(key.ShellPrompt), ShouldEqual, "YT> ")
			So(viper.GetInt(key.PlayerRandomSeed), ShouldEqual, 0)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("player.random_seed"), ShouldEqual, "player_random_seed")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.LibraryPath]

		Convey("Its env name carries the application prefix", func() {
			So(field.Env(), ShouldEqual, "VIDCAT_LIBRARY_PATH")
		})

		Convey("Its type name follows the default value", func() {
			So(field.typeName(), ShouldEqual, "string")
			seed := Default[key.PlayerRandomSeed]
			So(seed.typeName(), ShouldEqual, "int")
		})
	})
}

func TestFieldParse(t *testing.T) {
	Convey("Parse follows the default's type", t, func() {
		seed := Default[key.PlayerRandomSeed]
		v, err := seed.Parse("42")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 42)

		save := Default[key.HistorySave]
		_, err = save.Parse("maybe")
		So(err, ShouldNotBeNil)

		prompt := Default[key.ShellPrompt]
		v, err = prompt.Parse("> ")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "> ")
	})

	Convey("Parse rejects values outside the options", t, func() {
		icons := Default[key.IconsVariant]
		_, err := icons.Parse("emoji")
		So(err, ShouldBeNil)
		_, err = icons.Parse("sparkles")
		So(err, ShouldNotBeNil)
	})

	Convey("Pretty shows the key and its options", t, func() {
		level := Default[key.LogsLevel]
		So(level.Pretty(), ShouldContainSubstring, key.LogsLevel)
		So(level.Pretty(), ShouldContainSubstring, "debug")
	})
}
