package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/config"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/logger"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load(t *testing.T) {
	loader := config.NewLoader(logger.New())

	t.Run("returns defaults when no file exists", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := loader.Load(dir)
		require.NoError(t, err)

		assert.Equal(t, "python3", cfg.Runtime)
		assert.Equal(t, domain.DefaultManifestName, cfg.Manifest)
		assert.Equal(t, domain.DefaultPort, cfg.Port)
		assert.Equal(t, dir, cfg.WorkingDir)
	})

	t.Run("overlays file values onto defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
version: "1"
runtime: python3.12
port: 9000
`)

		cfg, err := loader.Load(dir)
		require.NoError(t, err)

		assert.Equal(t, "python3.12", cfg.Runtime)
		assert.Equal(t, 9000, cfg.Port)
		// Unset fields keep their defaults.
		assert.Equal(t, domain.DefaultManifestName, cfg.Manifest)
		assert.Equal(t, []string{"python3", "-m", "pip"}, cfg.PackageManager)
	})

	t.Run("finds the file in a parent directory", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, "port: 9000\n")

		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o750))

		cfg, err := loader.Load(nested)
		require.NoError(t, err)

		assert.Equal(t, 9000, cfg.Port)
		// The working directory follows the config file, not the cwd.
		assert.Equal(t, root, cfg.WorkingDir)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "port: [not a port\n")

		_, err := loader.Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
	})
}
