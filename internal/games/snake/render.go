package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps each cell kind to its background color.
type palette [cellKindCount]core.Color

func newPalette(p config.Palette) palette {
	var t palette
	t[CellEmpty] = p.Empty
	t[CellWall] = p.Wall
	t[CellSnakeBody] = p.Body
	t[CellSnakeHead] = p.Head
	t[CellFood] = p.Food
	return t
}

// cellGlyphs keeps the field readable without colors (screenshots, dumb terminals).
var cellGlyphs = [cellKindCount]rune{
	CellEmpty:     ' ',
	CellWall:      '#',
	CellSnakeHead: '@',
	CellSnakeBody: 'o',
	CellFood:      '*',
}

// Panel colors for the menu and game-over screens.
const (
	panelBg   = core.ColorBrightWhite
	panelFg   = core.ColorBlack
	glyphFg   = core.ColorBrightWhite
	tileRatio = 2 // Terminal cells are about twice as tall as wide
)

// TooSmallText is shown when the board cannot fit the terminal.
const TooSmallText = "Terminal too small\nEnlarge the window to play"

// boardLayout places the field and the score panel inside a viewport.
type boardLayout struct {
	board core.Rect // Area covered by the tiles
	score core.Rect // Right-hand score panel
	tileW int
	tileH int
}

// layoutBoard gives the field the left two thirds of the viewport and the
// score the right third. Tiles are the largest size that fits both axes.
func layoutBoard(view core.Rect, cols, rows int) (boardLayout, bool) {
	gamePart := view.TopLeft(view.W/3*2, view.H)
	scorePart := view.TopRight(view.W/3, view.H)

	tileH := max(min(gamePart.H/rows, gamePart.W/(tileRatio*cols)), 0)
	tileW := tileH * tileRatio

	board := gamePart.CenteredIn(tileW*cols, tileH*rows)
	if board.Empty() {
		return boardLayout{}, false
	}

	return boardLayout{
		board: board,
		score: scorePart,
		tileW: tileW,
		tileH: tileH,
	}, true
}

// Render draws the active screen into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	view := dst.Bounds()

	switch s.state {
	case StateMainMenu:
		renderPanel(dst, view, InviteText)
	case StateGame:
		s.renderGame(dst, view)
	case StateGameOver:
		renderPanel(dst, view, s.gameOverText)
	}
}

// renderPanel paints a plain background with centered text.
func renderPanel(dst *core.Screen, r core.Rect, text string) {
	dst.FillRect(r, panelBg)
	dst.DrawTextIn(r, text, panelFg)
}

func (s *Session) renderGame(dst *core.Screen, view core.Rect) {
	layout, ok := layoutBoard(view, s.grid.Width(), s.grid.Height())
	if !ok {
		dst.DrawTextIn(view, TooSmallText, core.ColorDefault)
		return
	}

	for row := 0; row < s.grid.Height(); row++ {
		for col := 0; col < s.grid.Width(); col++ {
			kind := s.grid.At(Point{Row: row, Col: col})
			tile := core.NewRect(
				layout.board.X+col*layout.tileW,
				layout.board.Y+row*layout.tileH,
				layout.tileW, layout.tileH,
			)
			dst.FillRect(tile, s.palette[kind])
			if g := cellGlyphs[kind]; g != ' ' {
				dst.DrawText(tile.X, tile.Y, string(g), glyphFg)
			}
		}
	}

	dst.DrawBox(layout.score.Inset(1, 0), core.ColorGray)
	dst.DrawTextIn(layout.score, s.scoreText, core.ColorDefault)
}
