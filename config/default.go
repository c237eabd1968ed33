// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/shua-cli/shua/color"
	"github.com/shua-cli/shua/constant"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/style"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string

	// Aliases are additional environment variables read for this key, highest priority first.
	Aliases []string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Shua + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Envs returns every environment variable bound to this field.
func (f *Field) Envs() []string {
	return append([]string{f.Env()}, f.Aliases...)
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Env         []string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Envs(),
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
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string, aliases ...string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Aliases: aliases}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.YouTubeAPIKey, "", "YouTube Data API key.\nLeave empty to search anonymously.\nType \"shua key set\" to store it in the system keyring instead", "YOUTUBE_API_KEY")
	register(key.YouTubeChannelHandle, constant.ChannelHandle, "Channel handle used to scope keyed searches")
	register(key.YouTubeTag, constant.ChannelTag, "Tag appended to the anonymous fallback query")
	register(key.SearchTimeout, 10, "Timeout of a single search request, in seconds")
	register(key.SearchMaxResults, 5, "Number of results requested per search (the first one is used)")
	register(key.Player, constant.DefaultPlayer, "Media player executable to launch with the watch URL", "TERMPROG")
	register(key.PlayerFallback, constant.DefaultPlayer, "Media player retried once if the default one fails to launch")
	register(key.PlaybackExtractStream, false, "Resolve a direct stream URL and pass it to the player instead of the watch URL")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"join":     strings.Join,
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ join .Envs ", " }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
