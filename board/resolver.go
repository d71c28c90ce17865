package board

import "image"

// Resolver turns settled touches into board cells
type Resolver struct {
	geom  *Geometry
	touch TouchController
}

// NewResolver creates a resolver reading from the given touch controller
func NewResolver(geom *Geometry, touch TouchController) *Resolver {
	return &Resolver{
		geom:  geom,
		touch: touch,
	}
}

// ResolveTouch waits for the controller to report a settled touch and
// returns the cell under it. It never fails: off-board touches clamp.
func (r *Resolver) ResolveTouch() Cell {
	r.touch.AwaitSettle()
	return r.CellAt(r.touch.TouchedPoint())
}

// CellAt maps a raw touch point without waiting on the controller
func (r *Resolver) CellAt(p image.Point) Cell {
	return r.geom.PointToCell(p.X, p.Y)
}
