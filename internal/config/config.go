// Package config provides configuration for textchess.
package config

import (
	"io"
	"os"
)

// Computer levels accepted in configuration.
const (
	MinLevel = 1
	MaxLevel = 4
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls diagnostics: 0=nothing, 1=game results, 2=every move.
	Verbosity int `json:"verbosity"`

	Game     GameConfig     `json:"game"`
	SelfPlay SelfPlayConfig `json:"selfplay"`
	Theme    Theme          `json:"theme"`

	// Output streams
	OutputFile io.Writer `json:"-"`
	LogFile    io.Writer `json:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       *NewGameConfig(),
		SelfPlay:   *NewSelfPlayConfig(),
		Theme:      DefaultTheme(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for user-facing output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.SelfPlay.Validate(); err != nil {
		return err
	}
	return c.Theme.Validate()
}
