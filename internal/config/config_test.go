package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/penwyp/go-gap-plot/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plot.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "dates.txt", cfg.Input)
	assert.Equal(t, "output.png", cfg.Output)
	assert.Equal(t, 2025, cfg.Year)
	assert.Equal(t, "minutes", cfg.Unit)
	assert.Equal(t, 2048, cfg.Width)
	assert.Equal(t, 1024, cfg.Height)
	assert.Equal(t, "Date Differences in Minutes", cfg.Caption)
	assert.Empty(t, cfg.DumpPath)
	assert.False(t, cfg.Summary)
	assert.NoError(t, cfg.Validate())
}

func TestApplyVariant(t *testing.T) {
	cfg := Default()
	cfg.Unit = "seconds"

	require.NoError(t, cfg.ApplyVariant())

	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, "Date Differences in Seconds", cfg.Caption)

	cfg.Unit = "fortnights"
	assert.Error(t, cfg.ApplyVariant())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "empty input", modify: func(c *Config) { c.Input = " " }},
		{name: "empty output", modify: func(c *Config) { c.Output = "" }},
		{name: "zero year", modify: func(c *Config) { c.Year = 0 }},
		{name: "bad unit", modify: func(c *Config) { c.Unit = "hours" }},
		{name: "zero width", modify: func(c *Config) { c.Width = 0 }},
		{name: "negative height", modify: func(c *Config) { c.Height = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadTOMLOverlay(t *testing.T) {
	path := writeTOML(t, `
input = "events.txt"
year = 2023
summary = true
`)
	cfg := Default()

	require.NoError(t, LoadTOML(cfg, path))

	assert.Equal(t, "events.txt", cfg.Input)
	assert.Equal(t, 2023, cfg.Year)
	assert.True(t, cfg.Summary)
	// Untouched keys keep defaults
	assert.Equal(t, "output.png", cfg.Output)
	assert.Equal(t, 2048, cfg.Width)
}

func TestLoadTOMLUnitSelectsVariant(t *testing.T) {
	cfg := Default()

	require.NoError(t, LoadTOML(cfg, writeTOML(t, `unit = "seconds"`)))

	unit, err := cfg.GapUnit()
	require.NoError(t, err)
	assert.Equal(t, model.Seconds, unit)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, "Date Differences in Seconds", cfg.Caption)
}

func TestLoadTOMLUnitKeepsExplicitCanvas(t *testing.T) {
	cfg := Default()

	require.NoError(t, LoadTOML(cfg, writeTOML(t, `
unit = "seconds"
width = 1200
caption = "Ping gaps"
`)))

	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, "Ping gaps", cfg.Caption)
}

func TestLoadTOMLErrors(t *testing.T) {
	cfg := Default()

	assert.Error(t, LoadTOML(cfg, filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, LoadTOML(cfg, writeTOML(t, `width = "wide"`)))
	assert.Error(t, LoadTOML(cfg, writeTOML(t, `colour = "red"`)))
	assert.Error(t, LoadTOML(cfg, writeTOML(t, `unit = "hours"`)))
}
