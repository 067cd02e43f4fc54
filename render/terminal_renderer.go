package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/components"
	"github.com/lixenwraith/term-snake/constants"
)

// Surface is the cell-level terminal output consumed by the renderer.
// tcell.Screen satisfies it.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Frame is everything drawn for one tick
type Frame struct {
	Bounds components.Bounds
	Border []components.Position
	Snake  []components.Position
	Food   components.Position
	Score  int
}

// TerminalRenderer draws frames onto a Surface
type TerminalRenderer struct {
	surface Surface
	palette Palette
}

// NewTerminalRenderer creates a renderer with a palette resolved at startup
func NewTerminalRenderer(surface Surface, palette Palette) *TerminalRenderer {
	return &TerminalRenderer{
		surface: surface,
		palette: palette,
	}
}

// DrawFrame renders the playing field. Layering: background, food, border, snake.
func (r *TerminalRenderer) DrawFrame(f Frame) {
	r.clearField(f.Bounds)
	r.writeCell(f.Food.Row, f.Food.Col, constants.GlyphFood, r.palette.Style(RoleFood))
	r.drawBorder(f.Bounds, f.Border)
	r.drawSnake(f.Snake)
	r.drawStatus(f)
	r.surface.Show()
}

// DrawGameOver writes the death message below the bottom border
func (r *TerminalRenderer) DrawGameOver(b components.Bounds) {
	r.writeText(b.MaxRow+constants.GameOverRowOffset, b.MinCol+constants.GameOverColOffset,
		constants.GameOverText, r.palette.Style(RoleText))
	r.surface.Show()
}

// BorderGlyph returns the glyph for a perimeter cell
func BorderGlyph(b components.Bounds, p components.Position) rune {
	switch {
	case b.IsCorner(p):
		return constants.GlyphCorner
	case p.Row == b.MinRow || p.Row == b.MaxRow:
		return constants.GlyphBorderRow
	default:
		return constants.GlyphBorderCol
	}
}

func (r *TerminalRenderer) clearField(b components.Bounds) {
	style := r.palette.Style(RoleBackground)
	for row := b.MinRow; row <= b.MaxRow; row++ {
		for col := b.MinCol; col <= b.MaxCol; col++ {
			r.writeCell(row, col, constants.GlyphBackground, style)
		}
	}
}

func (r *TerminalRenderer) drawBorder(b components.Bounds, border []components.Position) {
	style := r.palette.Style(RoleBorder)
	for _, p := range border {
		r.writeCell(p.Row, p.Col, BorderGlyph(b, p), style)
	}
}

func (r *TerminalRenderer) drawSnake(body []components.Position) {
	style := r.palette.Style(RoleSnake)
	for _, p := range body {
		r.writeCell(p.Row, p.Col, constants.GlyphSnake, style)
	}
}

func (r *TerminalRenderer) drawStatus(f Frame) {
	text := fmt.Sprintf(constants.StatusFormat, len(f.Snake), f.Score)
	r.writeText(f.Bounds.MaxRow+constants.StatusRowOffset, f.Bounds.MinCol, text, r.palette.Style(RoleText))
}

func (r *TerminalRenderer) writeText(row, col int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.writeCell(row, col+i, ch, style)
	}
}

// writeCell maps grid coordinates to screen x/y; clipping is the surface's job
func (r *TerminalRenderer) writeCell(row, col int, glyph rune, style tcell.Style) {
	r.surface.SetContent(col, row, glyph, nil, style)
}
