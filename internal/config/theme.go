package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/lgbarn/textchess-go/internal/errors"
)

// ThemeColors are xterm-256 palette indices for the screen display.
type ThemeColors struct {
	LightSquare int `json:"light_square"`
	DarkSquare  int `json:"dark_square"`
	WhitePiece  int `json:"white_piece"`
	BlackPiece  int `json:"black_piece"`
	Label       int `json:"label"`
}

// Theme controls how the screen display draws the board.
type Theme struct {
	// Figurines draws Unicode chess symbols instead of letters
	Figurines bool        `json:"figurines"`
	Colors    ThemeColors `json:"colors"`
	// EmptyLight and EmptyDark are drawn on empty squares in text mode.
	// Each is a single character.
	EmptyLight string `json:"empty_light"`
	EmptyDark  string `json:"empty_dark"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Figurines: true,
		Colors: ThemeColors{
			LightSquare: 180,
			DarkSquare:  94,
			WhitePiece:  255,
			BlackPiece:  232,
			Label:       250,
		},
		EmptyLight: " ",
		EmptyDark:  "_",
	}
}

// Validate rejects empty-square symbols that are not a single printable
// character, and out-of-palette colours.
func (t *Theme) Validate() error {
	for _, sym := range []string{t.EmptyLight, t.EmptyDark} {
		if utf8.RuneCountInString(sym) != 1 {
			return fmt.Errorf("theme symbol %q must be one character: %w", sym, errors.ErrInvalidConfig)
		}
		r, _ := utf8.DecodeRuneInString(sym)
		if r == utf8.RuneError || r < 32 || (r >= 127 && r <= 159) {
			return fmt.Errorf("theme symbol %U is a control character: %w", r, errors.ErrInvalidConfig)
		}
	}
	c := t.Colors
	for _, v := range []int{c.LightSquare, c.DarkSquare, c.WhitePiece, c.BlackPiece, c.Label} {
		if v < 0 || v > 255 {
			return fmt.Errorf("theme colour %d not in 0-255: %w", v, errors.ErrInvalidConfig)
		}
	}
	return nil
}
