// Package config loads persisted user defaults that pre-seed the wizard
// context before any flag or prompt is considered.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Loader reads the optional per-user defaults file from the
// XDG-compliant config directory.
type Loader struct {
	// Path overrides the default defaults-file location.
	Path string
}

// NewLoader creates a loader for the given application name. The
// defaults file lives at $XDG_CONFIG_HOME/<appName>/defaults.yaml.
func NewLoader(appName string) *Loader {
	return &Loader{
		Path: filepath.Join(xdg.ConfigHome, appName, "defaults.yaml"),
	}
}

// Load returns the saved default answers, keyed the same way the menu
// catalogue keys the context. A missing file is not an error: the
// defaults file is optional.
func (l *Loader) Load() (map[string]any, error) {
	if _, err := os.Stat(l.Path); os.IsNotExist(err) {
		return map[string]any{}, nil
	}

	v := viper.New()
	v.SetConfigFile(l.Path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read defaults file %s: %w", l.Path, err)
	}
	return v.AllSettings(), nil
}
