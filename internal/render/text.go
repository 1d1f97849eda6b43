// Package render draws the board for game observers.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/config"
	"github.com/lgbarn/textchess-go/internal/game"
)

// TextObserver prints the board as text after every notification.
type TextObserver struct {
	w     io.Writer
	theme config.Theme
}

// NewTextObserver creates a TextObserver writing to w.
func NewTextObserver(w io.Writer, theme config.Theme) *TextObserver {
	return &TextObserver{w: w, theme: theme}
}

// Notify writes the snapshot's board.
func (o *TextObserver) Notify(s game.Snapshot) {
	fmt.Fprint(o.w, Text(s.Board, o.theme))
}

// Text renders a board with rank 8 at the top. Pieces are their setup
// letters and empty squares alternate between the theme's light and dark
// symbols, with a1 dark.
func Text(board *chess.Board, theme config.Theme) string {
	var sb strings.Builder
	dim := board.Dimension()
	labelWidth := len(fmt.Sprint(dim))

	for row := dim - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%*d ", labelWidth, row+1)
		for col := 0; col < dim; col++ {
			c := chess.Coordinate{Row: row, Col: col}
			if p, ok := board.Get(c); ok {
				sb.WriteByte(p.Code())
			} else if isDark(c) {
				sb.WriteString(theme.EmptyDark)
			} else {
				sb.WriteString(theme.EmptyLight)
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	for col := 0; col < dim; col++ {
		sb.WriteByte(byte('a' + col))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func isDark(c chess.Coordinate) bool {
	return (c.Row+c.Col)%2 == 0
}
