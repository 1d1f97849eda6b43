package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/config"
	"github.com/lgbarn/textchess-go/internal/game"
)

// Board layout on the screen.
const (
	boardX    = 3 // first square column, after the rank labels
	cellWidth = 2 // 2 characters per cell for square appearance
)

var figurines = map[chess.PieceType][2]rune{
	chess.King:   {'♚', '♔'},
	chess.Queen:  {'♛', '♕'},
	chess.Rook:   {'♜', '♖'},
	chess.Bishop: {'♝', '♗'},
	chess.Knight: {'♞', '♘'},
	chess.Pawn:   {'♟', '♙'},
}

// ScreenObserver draws the board on a tcell screen.
type ScreenObserver struct {
	screen tcell.Screen
	theme  config.Theme

	light, dark  tcell.Color
	white, black tcell.Color
	label        tcell.Style
}

// NewScreenObserver creates an observer drawing on an initialised screen.
func NewScreenObserver(screen tcell.Screen, theme config.Theme) *ScreenObserver {
	c := theme.Colors
	return &ScreenObserver{
		screen: screen,
		theme:  theme,
		light:  tcell.PaletteColor(c.LightSquare),
		dark:   tcell.PaletteColor(c.DarkSquare),
		white:  tcell.PaletteColor(c.WhitePiece),
		black:  tcell.PaletteColor(c.BlackPiece),
		label:  tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Label)),
	}
}

// Notify redraws the whole screen.
func (o *ScreenObserver) Notify(s game.Snapshot) {
	o.screen.Clear()
	o.drawBoard(s.Board)
	o.drawText(0, s.Board.Dimension()+1, o.label, Status(s))
	o.screen.Show()
}

func (o *ScreenObserver) drawBoard(board *chess.Board) {
	dim := board.Dimension()
	for row := dim - 1; row >= 0; row-- {
		y := dim - 1 - row
		o.drawText(0, y, o.label, fmt.Sprintf("%2d", row+1))

		for col := 0; col < dim; col++ {
			c := chess.Coordinate{Row: row, Col: col}
			bg := o.light
			if isDark(c) {
				bg = o.dark
			}
			square := tcell.StyleDefault.Background(bg)

			r, style := ' ', square
			if p, ok := board.Get(c); ok {
				r = o.glyph(p)
				fg := o.black
				if p.Colour == chess.White {
					fg = o.white
				}
				style = square.Foreground(fg).Bold(true)
			}
			x := boardX + col*cellWidth
			o.screen.SetContent(x, y, r, nil, style)
			o.screen.SetContent(x+1, y, ' ', nil, square)
		}
	}
	for col := 0; col < dim; col++ {
		o.screen.SetContent(boardX+col*cellWidth, dim, rune('a'+col), nil, o.label)
	}
}

func (o *ScreenObserver) glyph(p chess.Piece) rune {
	if o.theme.Figurines {
		if g, ok := figurines[p.Type]; ok {
			return g[p.Colour]
		}
	}
	return rune(p.Code())
}

func (o *ScreenObserver) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		o.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Status summarises a snapshot in one line, e.g.
// "White to move, check | White 1 - Black 0".
func Status(s game.Snapshot) string {
	var state string
	switch {
	case !s.InProgress:
		state = "no game in progress"
	case s.State == chess.Checked(s.Turn):
		state = fmt.Sprintf("%s to move, check", s.Turn)
	case s.State == chess.Checkmated(s.Turn):
		state = fmt.Sprintf("%s is checkmated", s.Turn)
	case s.State == chess.Stalemate:
		state = "stalemate"
	default:
		state = fmt.Sprintf("%s to move", s.Turn)
	}
	return fmt.Sprintf("%s | White %g - Black %g", state, s.WhiteScore, s.BlackScore)
}
