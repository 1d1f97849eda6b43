package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/textchess-go/internal/errors"
)

// SelfPlayConfig holds settings for headless computer-versus-computer
// batches.
type SelfPlayConfig struct {
	// Games is the number of matches to play
	Games int `json:"games"`

	// WhiteLevel and BlackLevel pick the computer level for each side
	WhiteLevel int `json:"white_level"`
	BlackLevel int `json:"black_level"`

	// Workers is the number of matches played in parallel
	Workers int `json:"workers"`

	// MaxPlies caps each match; self-play always needs a cap
	MaxPlies int `json:"max_plies"`
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		WhiteLevel: 3,
		BlackLevel: 2,
		Workers:    runtime.NumCPU(),
		MaxPlies:   400,
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("self-play game count %d is negative: %w", s.Games, errors.ErrInvalidConfig)
	}
	for _, l := range []int{s.WhiteLevel, s.BlackLevel} {
		if l < MinLevel || l > MaxLevel {
			return fmt.Errorf("self-play level %d not in %d-%d: %w", l, MinLevel, MaxLevel, errors.ErrInvalidConfig)
		}
	}
	if s.Workers < 1 {
		return fmt.Errorf("worker count %d must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.MaxPlies < 1 {
		return fmt.Errorf("self-play max plies %d must be at least 1: %w", s.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
