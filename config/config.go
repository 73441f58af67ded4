// Package config loads vidcat settings from defaults, VIDCAT_ environment
// variables and an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/vidcat/vidcat/constant"
	"github.com/vidcat/vidcat/filesystem"
	"github.com/vidcat/vidcat/where"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state: defaults, environment bindings and the optional TOML file.
// A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Vidcat)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Vidcat)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)
	for _, field := range fields {
		viper.MustBindEnv(field.Key)
		viper.SetDefault(field.Key, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// Path returns the location of the TOML config file, whether or not it exists yet.
func Path() string {
	return filepath.Join(where.Config(), constant.Vidcat+".toml")
}
