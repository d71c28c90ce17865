package board

import (
	"errors"
	"fmt"
	"image"
)

// Size is the number of rows and columns on the board
const Size = 3

var (
	// ErrRegionEmpty is returned when the board region has no area
	ErrRegionEmpty = errors.New("board region must have a positive width and height")

	// ErrRegionNotDivisible is returned when the region cannot be split into equal cells
	ErrRegionNotDivisible = errors.New("board region must divide evenly into 3 columns and 3 rows")
)

// Region is the pixel rectangle occupied by the full 3x3 grid
type Region struct {
	// Origin is the top-left pixel of the board
	Origin image.Point `yaml:"origin"`

	// Width is the total board width in pixels
	Width int `yaml:"width"`

	// Height is the total board height in pixels
	Height int `yaml:"height"`
}

// Rect returns the region as a half-open rectangle
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.Origin.X, r.Origin.Y, r.Origin.X+r.Width, r.Origin.Y+r.Height)
}

// Cell addresses one of the 9 board positions
type Cell struct {
	Row    int
	Column int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Geometry maps between board cells and display pixels.
// It is created once from a Region and never changes afterwards.
type Geometry struct {
	region     Region
	cellWidth  int
	cellHeight int
}

// NewGeometry validates the region and derives the cell size
func NewGeometry(region Region) (*Geometry, error) {
	if region.Width <= 0 || region.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrRegionEmpty, region.Width, region.Height)
	}
	if region.Width%Size != 0 || region.Height%Size != 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrRegionNotDivisible, region.Width, region.Height)
	}

	return &Geometry{
		region:     region,
		cellWidth:  region.Width / Size,
		cellHeight: region.Height / Size,
	}, nil
}

// Region returns the board region the geometry was built from
func (g *Geometry) Region() Region {
	return g.region
}

// CellSize returns the width and height of a single cell
func (g *Geometry) CellSize() (int, int) {
	return g.cellWidth, g.cellHeight
}

// CellBounds returns the pixel rectangle of a cell.
// Row and column must be in [0, Size); they are not checked.
func (g *Geometry) CellBounds(row, column int) image.Rectangle {
	x0 := g.region.Origin.X + column*g.cellWidth
	y0 := g.region.Origin.Y + row*g.cellHeight
	return image.Rect(x0, y0, x0+g.cellWidth, y0+g.cellHeight)
}

// CellCenter returns the centre pixel of a cell
func (g *Geometry) CellCenter(row, column int) image.Point {
	b := g.CellBounds(row, column)
	return image.Pt(b.Min.X+g.cellWidth/2, b.Min.Y+g.cellHeight/2)
}

// PointToCell converts display coordinates to the cell under them.
// Points outside the board are clamped to the nearest edge cell, so every
// touch resolves to a playable cell.
func (g *Geometry) PointToCell(x, y int) Cell {
	row := floorDiv(y-g.region.Origin.Y, g.cellHeight)
	column := floorDiv(x-g.region.Origin.X, g.cellWidth)

	return Cell{
		Row:    clamp(row, 0, Size-1),
		Column: clamp(column, 0, Size-1),
	}
}

// Contains reports whether a point lies inside the board region
func (g *Geometry) Contains(x, y int) bool {
	return image.Pt(x, y).In(g.region.Rect())
}

// floorDiv divides rounding towards negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
