package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	configDirName  = ".config"
	appDirName     = "detectaive"
	configFileName = "config.json"
)

// Environment variables that override the config file.
const (
	EnvProgressLabel = "DETECTAIVE_PROGRESS_LABEL"
	EnvProgressFile  = "DETECTAIVE_PROGRESS_FILE"
	EnvLogFile       = "DETECTAIVE_LOG_FILE"
	EnvDebug         = "DETECTAIVE_DEBUG"
	EnvMouse         = "DETECTAIVE_MOUSE"
)

// DefaultProgressLabel is shown next to "New Case" when nothing else is configured.
const DefaultProgressLabel = "0/3"

// Config holds the settings read at startup. The theme is deliberately absent:
// every launch starts dark.
type Config struct {
	// ProgressLabel is the display value next to "New Case"
	ProgressLabel string `json:"progress_label,omitempty"`
	// ProgressFile, if set, is watched for progress written by the game engine
	ProgressFile string `json:"progress_file,omitempty"`
	// LogFile is where debug logs go
	LogFile string `json:"log_file,omitempty"`
	// Debug enables debug level logging
	Debug bool `json:"debug,omitempty"`
	// Mouse enables click handling
	Mouse bool `json:"mouse"`
}

// Default returns the configuration used on first run.
func Default() Config {
	return Config{
		ProgressLabel: DefaultProgressLabel,
		Mouse:         true,
	}
}

// configDir returns the path to the config directory (~/.config/detectaive).
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, appDirName), nil
}

// Path returns the global path to the config file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the global config file, then .env, then the environment.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path, ".env")
}

// LoadFrom reads the config file at path and applies overrides from the
// dotenv file (if it exists) and the process environment. A missing or
// invalid config file yields defaults; a malformed env value is an error.
func LoadFrom(path, dotenv string) (Config, error) {
	cfg := readFile(path)

	if dotenv != "" {
		// Existing environment wins over .env.
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if cfg.ProgressLabel == "" {
		cfg.ProgressLabel = DefaultProgressLabel
	}
	return cfg, nil
}

func readFile(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		// File doesn't exist or can't be read - return defaults
		return Default()
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Invalid JSON - return defaults
		return Default()
	}
	return cfg
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvProgressLabel); ok {
		c.ProgressLabel = v
	}
	if v, ok := os.LookupEnv(EnvProgressFile); ok {
		c.ProgressFile = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v, ok := os.LookupEnv(EnvMouse); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMouse, err)
		}
		c.Mouse = b
	}
	return nil
}
