package board

import (
	"image"
	"image/color"
)

// Canvas is the drawing surface the board is painted on.
// Lines run endpoint to endpoint; both primitives use the surface's stroke width.
type Canvas interface {
	// DrawLine strokes the segment from (x0, y0) to (x1, y1)
	DrawLine(x0, y0, x1, y1 int, clr color.Color)

	// DrawCircle strokes a circle outline centred on (cx, cy)
	DrawCircle(cx, cy, radius int, clr color.Color)
}

// TouchController reports settled touches on the display
type TouchController interface {
	// AwaitSettle blocks until the current touch has settled.
	// Debounce timing is entirely the controller's concern.
	AwaitSettle()

	// TouchedPoint returns the raw pixel coordinates of the settled touch
	TouchedPoint() image.Point
}
