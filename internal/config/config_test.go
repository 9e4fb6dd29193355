package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "0/3", c.ProgressLabel)
	assert.True(t, c.Mouse)
	assert.False(t, c.Debug)
	assert.Empty(t, c.ProgressFile)
}

func TestPath(t *testing.T) {
	path, err := Path()
	assert.NoError(t, err)

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "detectaive", "config.json")
	assert.Equal(t, expected, path)
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"), "")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("invalid JSON returns defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		cfg, err := LoadFrom(path, "")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads every field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data := `{"progress_label":"1/3","progress_file":"/tmp/p.json","debug":true,"mouse":false}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))
		want := Config{ProgressLabel: "1/3", ProgressFile: "/tmp/p.json", Debug: true, Mouse: false}

		cfg, err := LoadFrom(path, "")
		require.NoError(t, err)
		assert.Equal(t, want, cfg)
	})

	t.Run("empty label falls back to default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"progress_label":""}`), 0644))

		cfg, err := LoadFrom(path, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultProgressLabel, cfg.ProgressLabel)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvProgressLabel, "2/3")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvMouse, "0")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"), "")
	require.NoError(t, err)

	assert.Equal(t, "2/3", cfg.ProgressLabel)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Mouse)
}

func TestEnvInvalidBool(t *testing.T) {
	t.Setenv(EnvDebug, "maybe")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)
}

func TestDotenv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte(EnvLogFile+"=/tmp/from-dotenv.log\n"), 0644))

	// Registered so t.Setenv's cleanup unsets what godotenv sets.
	t.Setenv(EnvLogFile, "")
	os.Unsetenv(EnvLogFile)

	cfg, err := LoadFrom(filepath.Join(dir, "nope.json"), dotenv)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv.log", cfg.LogFile)
}

func TestDotenvMissingIsIgnored(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"), filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
