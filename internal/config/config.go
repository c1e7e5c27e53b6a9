package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDecks         = "TWENTYONE_DECKS"
	EnvRoundPause    = "TWENTYONE_ROUND_PAUSE"
	EnvColor         = "TWENTYONE_COLOR"
	EnvCardBackColor = "TWENTYONE_CARD_BACK_COLOR"
	EnvLogLevel      = "TWENTYONE_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	Decks         int      `toml:"decks"`
	RoundPause    Duration `toml:"round_pause"`
	Color         bool     `toml:"color"`
	CardBackColor string   `toml:"card_back_color"`
	LogLevel      string   `toml:"log_level"`
}

// Duration is a time.Duration stored as a string such as "2s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Decks:         4,
		RoundPause:    Duration{2 * time.Second},
		Color:         true,
		CardBackColor: "#1e3a8a",
		LogLevel:      "warn",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "twentyone", "config.toml")
}

// Load reads the config file, creating it with defaults when missing, then
// applies .env and environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile(GetConfigFilePath())
	if err != nil {
		return nil, err
	}

	// A missing .env is fine.
	_ = godotenv.Load()

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads the config file at path. A missing file is created with defaults.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultConfig(path)
	}
	return decodeFile(path)
}

func decodeFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := Save(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to path as TOML.
func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDecks); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDecks, err)
		}
		c.Decks = n
	}
	if v, ok := lookup(EnvRoundPause); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRoundPause, err)
		}
		c.RoundPause = Duration{d}
	}
	if v, ok := lookup(EnvColor); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvColor, err)
		}
		c.Color = b
	}
	if v, ok := lookup(EnvCardBackColor); ok {
		c.CardBackColor = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Encode renders the config as TOML.
func (c *Config) Encode() (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return "", fmt.Errorf("error encoding config: %w", err)
	}
	return sb.String(), nil
}
