// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"
	"time"

	"github.com/shua-cli/shua/constant"
	"github.com/shua-cli/shua/filesystem"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Shua)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	// Prefixed names first, then the plain names the tool has always honored.
	viper.SetEnvPrefix(constant.Shua)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		field := Default[env]
		viper.MustBindEnv(append([]string{env}, field.Envs()...)...)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// SearchTimeout returns the configured per-attempt search timeout.
func SearchTimeout() time.Duration {
	seconds := viper.GetInt(key.SearchTimeout)
	if seconds <= 0 {
		seconds = Default[key.SearchTimeout].Value.(int)
	}
	return time.Duration(seconds) * time.Second
}
