package board

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrMarginTooSmall is returned when a mark stroke could touch a grid line
	ErrMarginTooSmall = errors.New("mark margin must be wider than the stroke")

	// ErrMarginTooLarge is returned when the margin leaves no room for a mark
	ErrMarginTooLarge = errors.New("mark margin leaves no room inside the cell")
)

// Style holds the colours and spacing used to paint the board
type Style struct {
	Foreground color.Color // marks
	Background color.Color // erased marks
	Grid       color.Color // board lines

	// Margin is the gap in pixels between a mark's extent and the cell edge
	Margin int

	// Stroke is the canvas stroke width, used to keep marks clear of the grid
	Stroke int
}

// Renderer draws and erases marks inside board cells.
// It keeps no record of what is on the board.
type Renderer struct {
	geom   *Geometry
	canvas Canvas
	style  Style
	extent int // half-size of a mark in pixels
}

// NewRenderer checks that marks sized by the style fit strictly inside a cell
func NewRenderer(geom *Geometry, canvas Canvas, style Style) (*Renderer, error) {
	// Half the mark stroke plus half the grid stroke must stay inside the margin
	if style.Margin <= style.Stroke {
		return nil, fmt.Errorf("%w: margin %d, stroke %d", ErrMarginTooSmall, style.Margin, style.Stroke)
	}

	cw, ch := geom.CellSize()
	extent := min(cw, ch)/2 - style.Margin
	if extent < 1 {
		return nil, fmt.Errorf("%w: margin %d, cell %dx%d", ErrMarginTooLarge, style.Margin, cw, ch)
	}

	return &Renderer{
		geom:   geom,
		canvas: canvas,
		style:  style,
		extent: extent,
	}, nil
}

// MarkExtent returns the distance from a cell centre to the edge of a mark
func (r *Renderer) MarkExtent() int {
	return r.extent
}

// DrawMark draws a mark in a cell, or erases it by redrawing it in the background colour
func (r *Renderer) DrawMark(row, column int, mark Mark, erase bool) {
	switch mark {
	case X:
		r.DrawX(row, column, erase)
	case O:
		r.DrawO(row, column, erase)
	}
}

// DrawX draws two crossing diagonals centred in the cell
func (r *Renderer) DrawX(row, column int, erase bool) {
	c := r.geom.CellCenter(row, column)
	clr := r.ink(erase)
	e := r.extent

	r.canvas.DrawLine(c.X-e, c.Y-e, c.X+e, c.Y+e, clr)
	r.canvas.DrawLine(c.X-e, c.Y+e, c.X+e, c.Y-e, clr)
}

// DrawO draws a circle centred in the cell
func (r *Renderer) DrawO(row, column int, erase bool) {
	c := r.geom.CellCenter(row, column)
	r.canvas.DrawCircle(c.X, c.Y, r.extent, r.ink(erase))
}

func (r *Renderer) ink(erase bool) color.Color {
	if erase {
		return r.style.Background
	}
	return r.style.Foreground
}
