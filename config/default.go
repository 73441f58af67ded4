package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidcat/vidcat/color"
	"github.com/vidcat/vidcat/constant"
	"github.com/vidcat/vidcat/key"
	"github.com/vidcat/vidcat/style"
)

// Field is a configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string

	// Options restricts string values when non-empty.
	Options []string
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Vidcat + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Parse converts raw input to the type of the default value.
func (f *Field) Parse(raw string) (any, error) {
	switch f.Value.(type) {
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", f.Key, raw)
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean, got %q", f.Key, raw)
		}
		return v, nil
	}

	if len(f.Options) > 0 && !lo.Contains(f.Options, raw) {
		return nil, fmt.Errorf("%s must be one of %s, got %q", f.Key, strings.Join(f.Options, ", "), raw)
	}
	return raw, nil
}

// Pretty renders the field with its current value for `config info`.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	rows := []string{
		style.Faint(f.Description),
		label("Key:") + "     " + style.Fg(color.Purple)(f.Key),
		label("Env:") + "     " + f.Env(),
		label("Value:") + "   " + highlight(viper.Get(f.Key)),
		label("Default:") + " " + highlight(f.Value),
		label("Type:") + "    " + f.typeName(),
	}
	if len(f.Options) > 0 {
		rows = append(rows, label("Options:")+" "+strings.Join(f.Options, ", "))
	}
	return strings.Join(rows, "\n")
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Options:     f.Options,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	default:
		return fmt.Sprint(value)
	}
}

var fields = []Field{
	{Key: key.LibraryPath, Value: "", Description: "Video library file, .txt or .json.\nThe embedded library is used when empty"},
	{Key: key.PlayerRandomSeed, Value: 0, Description: "Seed for PLAY_RANDOM.\n0 seeds from the current time"},
	{Key: key.ShellPrompt, Value: "YT> ", Description: "Prompt of the interactive shell"},
	{Key: key.ShellSuggestions, Value: true, Description: "Suggest previously entered commands while typing"},
	{Key: key.HistorySave, Value: true, Description: "Remember valid commands entered in the shell"},
	{Key: key.IconsVariant, Value: "plain", Description: "Icons used by the CLI", Options: []string{"plain", "emoji", "kaomoji", "squares", "nerd"}},
	{Key: key.LogsWrite, Value: false, Description: "Write logs to the logs directory"},
	{Key: key.LogsLevel, Value: "info", Description: "Log level, from least to most verbose", Options: []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}},
	{Key: key.LogsJson, Value: false, Description: "Write logs as json"},
	{Key: key.CliColored, Value: true, Description: "Colored CLI output"},
}

// Default indexes every known field by key.
var Default = lo.KeyBy(fields, func(f Field) string { return f.Key })
