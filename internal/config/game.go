package config

import (
	"fmt"

	"github.com/lgbarn/textchess-go/internal/errors"
)

// GameConfig holds settings for interactive games.
type GameConfig struct {
	// DefaultLevel is used for a bare "computer" player
	DefaultLevel int `json:"default_level"`

	// Seed for the computer players' random source; 0 picks one from the clock
	Seed int64 `json:"seed"`

	// MaxPlies ends a game as a draw after this many plies; 0 means no limit
	MaxPlies int `json:"max_plies"`
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		DefaultLevel: 2,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.DefaultLevel < MinLevel || g.DefaultLevel > MaxLevel {
		return fmt.Errorf("default level %d not in %d-%d: %w",
			g.DefaultLevel, MinLevel, MaxLevel, errors.ErrInvalidConfig)
	}
	if g.MaxPlies < 0 {
		return fmt.Errorf("max plies %d is negative: %w", g.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
