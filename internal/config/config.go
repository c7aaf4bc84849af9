package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/penwyp/go-gap-plot/internal/core/constants"
	"github.com/penwyp/go-gap-plot/internal/core/model"
)

const (
	DefaultInput  = "dates.txt"
	DefaultOutput = "output.png"
)

// Variant is a canvas/caption preset for one gap unit.
type Variant struct {
	Width   int
	Height  int
	Caption string
}

// Variants maps each gap unit to its preset.
var Variants = map[model.GapUnit]Variant{
	model.Seconds: {Width: 640, Height: 480, Caption: "Date Differences in Seconds"},
	model.Minutes: {Width: 2048, Height: 1024, Caption: "Date Differences in Minutes"},
}

// Config controls one plotting run.
type Config struct {
	Input   string `toml:"input"`
	Output  string `toml:"output"`
	Year    int    `toml:"year"`
	Unit    string `toml:"unit"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Caption string `toml:"caption"`

	// Optional extra artifacts
	DumpPath string `toml:"dump"`
	Summary  bool   `toml:"summary"`
}

// Default returns the minutes variant reading dates.txt and writing output.png.
func Default() *Config {
	v := Variants[model.Minutes]
	return &Config{
		Input:   DefaultInput,
		Output:  DefaultOutput,
		Year:    constants.DefaultYear,
		Unit:    model.Minutes.String(),
		Width:   v.Width,
		Height:  v.Height,
		Caption: v.Caption,
	}
}

// LoadTOML overlays the settings found in the TOML file at path onto cfg.
// Keys absent from the file keep their current values.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}

	// A unit switch brings its own canvas and caption unless the file
	// sets them too.
	if md.IsDefined("unit") {
		explicit := *cfg
		if err := cfg.ApplyVariant(); err != nil {
			return err
		}
		if md.IsDefined("width") {
			cfg.Width = explicit.Width
		}
		if md.IsDefined("height") {
			cfg.Height = explicit.Height
		}
		if md.IsDefined("caption") {
			cfg.Caption = explicit.Caption
		}
	}
	return nil
}

// ApplyVariant resets canvas size and caption to the preset of the
// configured unit.
func (c *Config) ApplyVariant() error {
	unit, err := c.GapUnit()
	if err != nil {
		return err
	}
	v := Variants[unit]
	c.Width, c.Height, c.Caption = v.Width, v.Height, v.Caption
	return nil
}

// GapUnit parses the configured unit name.
func (c *Config) GapUnit() (model.GapUnit, error) {
	return model.ParseGapUnit(c.Unit)
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.Year < 1 || c.Year > 9999 {
		return fmt.Errorf("year %d out of range 1-9999", c.Year)
	}
	if _, err := c.GapUnit(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	return nil
}
