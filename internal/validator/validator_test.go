package validator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/twentyone/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidateDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.Save(path, config.Default()))

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{name: "too many decks", body: "decks = 9\n", contains: "decks must be between 1 and 8"},
		{name: "no decks", body: "decks = 0\n", contains: "decks must be between 1 and 8"},
		{name: "negative pause", body: "round_pause = \"-1s\"\n", contains: "round_pause must not be negative"},
		{name: "bad color", body: "card_back_color = \"navy\"\n", contains: "card_back_color"},
		{name: "bad level", body: "log_level = \"loud\"\n", contains: "log_level must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := NewValidator(writeConfig(t, tt.body)).Validate()
			require.NoError(t, err)
			require.Len(t, results.Errors, 1)
			assert.Contains(t, results.Errors[0], tt.contains)
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	body := "decks = 1\nround_pause = \"2m\"\ncolor = false\nshuffle = true\n"
	results, err := NewValidator(writeConfig(t, body)).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Len(t, results.Warnings, 4)
	assert.Contains(t, results.Warnings, "unknown key: shuffle")
}

func TestValidateMissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "nope.toml")).Validate()
	assert.ErrorContains(t, err, "config file not found")
}

func TestValidateUnparsable(t *testing.T) {
	_, err := NewValidator(writeConfig(t, "decks = [\n")).Validate()
	assert.ErrorContains(t, err, "error parsing config file")
}

func TestValidateConfig(t *testing.T) {
	cfg := config.Default()
	cfg.RoundPause = config.Duration{Duration: -time.Second}
	cfg.LogLevel = "trace"

	v := NewValidator("")
	v.ValidateConfig(cfg)
	assert.Len(t, v.Results.Errors, 2)
}
