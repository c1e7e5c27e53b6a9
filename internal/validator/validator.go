package validator

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/twentyone/internal/config"
)

const (
	minDecks = 1
	maxDecks = 8
)

var logLevels = []string{"debug", "info", "warn", "error"}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate decodes the config file and checks every setting. The error is
// reserved for files that cannot be read or parsed.
func (v *Validator) Validate() (ValidationResults, error) {
	cfg, err := v.decode()
	if err != nil {
		return v.Results, err
	}

	v.ValidateConfig(cfg)
	return v.Results, nil
}

// ValidateConfig checks an already loaded configuration.
func (v *Validator) ValidateConfig(cfg *config.Config) {
	v.validateDecks(cfg)
	v.validateRoundPause(cfg)
	v.validateCardBackColor(cfg)
	v.validateLogLevel(cfg)
}

func (v *Validator) decode() (*config.Config, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	md, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	for _, key := range md.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key: %s", key.String()))
	}
	return cfg, nil
}

func (v *Validator) validateDecks(cfg *config.Config) {
	if cfg.Decks < minDecks || cfg.Decks > maxDecks {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("decks must be between %d and %d, got %d", minDecks, maxDecks, cfg.Decks))
		return
	}
	if cfg.Decks == 1 {
		v.Results.Warnings = append(v.Results.Warnings,
			"a single deck shoe makes card counting easy")
	}
}

func (v *Validator) validateRoundPause(cfg *config.Config) {
	if cfg.RoundPause.Duration < 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("round_pause must not be negative, got %s", cfg.RoundPause))
		return
	}
	if cfg.RoundPause.Duration > time.Minute {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("round_pause of %s is unusually long", cfg.RoundPause))
	}
}

func (v *Validator) validateCardBackColor(cfg *config.Config) {
	if _, err := colorful.Hex(cfg.CardBackColor); err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("card_back_color must be a #rrggbb hex color, got %q", cfg.CardBackColor))
		return
	}
	if !cfg.Color {
		v.Results.Warnings = append(v.Results.Warnings,
			"card_back_color has no effect while color is disabled")
	}
}

func (v *Validator) validateLogLevel(cfg *config.Config) {
	for _, l := range logLevels {
		if cfg.LogLevel == l {
			return
		}
	}
	v.Results.Errors = append(v.Results.Errors,
		fmt.Sprintf("log_level must be one of %s, got %q", strings.Join(logLevels, ", "), cfg.LogLevel))
}
