// Package config provides the configuration loader for garmin-stats.
package config

import (
	"os"
	"path/filepath"

	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches upward from cwd for garmin.yaml and merges it over the
// defaults. A missing file is not an error: the launcher must work in a
// bare dashboard checkout with no configuration at all.
func (l *Loader) Load(cwd string) (domain.LaunchConfig, error) {
	cfg := domain.DefaultLaunchConfig()
	cfg.WorkingDir = cwd

	configPath, found := findConfiguration(cwd)
	if !found {
		return cfg, nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.LaunchConfig{}, err
	}

	applyFile(&cfg, &file)
	cfg.WorkingDir = filepath.Dir(configPath)

	return cfg, nil
}

// findConfiguration walks up the directory tree looking for garmin.yaml.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// applyFile overlays non-zero file values onto the defaults.
func applyFile(cfg *domain.LaunchConfig, file *File) {
	if file.Runtime != "" {
		cfg.Runtime = file.Runtime
	}
	if len(file.PackageManager) > 0 {
		cfg.PackageManager = file.PackageManager
	}
	if file.Manifest != "" {
		cfg.Manifest = file.Manifest
	}
	if len(file.Entrypoint) > 0 {
		cfg.Entrypoint = file.Entrypoint
	}
	if file.Port != 0 {
		cfg.Port = file.Port
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by upward search from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
