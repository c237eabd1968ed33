// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/shua-cli/shua/constant"
	"github.com/shua-cli/shua/filesystem"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "SHUA_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring SHUA_CONFIG_PATH before the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.Shua))
}

// ConfigFile is the TOML file viper reads and writes.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Shua+".toml")
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
