package board

import "image/color"

// LineDrawer draws the grid lines that separate the cells
type LineDrawer struct {
	geom   *Geometry
	canvas Canvas
	clr    color.Color
}

// NewLineDrawer creates a line drawer painting in the given colour
func NewLineDrawer(geom *Geometry, canvas Canvas, clr color.Color) *LineDrawer {
	return &LineDrawer{
		geom:   geom,
		canvas: canvas,
		clr:    clr,
	}
}

// DrawBoardLines draws the two vertical and two horizontal board lines,
// each spanning the full board at the 1/3 and 2/3 divisions.
func (d *LineDrawer) DrawBoardLines() {
	region := d.geom.Region()
	cw, ch := d.geom.CellSize()
	left, top := region.Origin.X, region.Origin.Y
	right, bottom := left+region.Width, top+region.Height

	for k := 1; k < Size; k++ {
		x := left + k*cw
		d.canvas.DrawLine(x, top, x, bottom, d.clr)
	}
	for k := 1; k < Size; k++ {
		y := top + k*ch
		d.canvas.DrawLine(left, y, right, y, d.clr)
	}
}
