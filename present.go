package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tttdisplay/board"
	"tttdisplay/surface"
)

// Surface is a board canvas that can be shown on the ebiten screen.
// Drawing happens on the harness goroutine; Present runs inside Draw.
type Surface interface {
	board.Canvas

	// Fill paints the whole surface
	Fill(clr color.Color)

	// Present draws the surface onto the screen
	Present(screen *ebiten.Image)
}

// rasterSurface uploads a software raster to the GPU whenever it changes
type rasterSurface struct {
	*surface.Raster

	frame   *ebiten.Image
	pixels  []byte
	version uint64
}

func newRasterSurface(width, height, stroke int) *rasterSurface {
	return &rasterSurface{
		Raster: surface.NewRaster(width, height, stroke),
		pixels: make([]byte, 4*width*height),
	}
}

func (s *rasterSurface) Present(screen *ebiten.Image) {
	if s.frame == nil {
		b := s.Bounds()
		s.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}

	version := s.CopyPixels(s.pixels, s.version)
	if version != s.version {
		s.frame.WritePixels(s.pixels)
		s.version = version
	}
	screen.DrawImage(s.frame, nil)
}

type opKind int

const (
	opFill opKind = iota
	opLine
	opCircle
)

type drawOp struct {
	kind           opKind
	x0, y0, x1, y1 int
	radius         int
	clr            color.Color
}

// vectorSurface records primitives from any goroutine and replays them with
// ebiten's vector package onto a persistent offscreen image
type vectorSurface struct {
	mu      sync.Mutex
	pending []drawOp

	width, height int
	stroke        float32
	frame         *ebiten.Image
}

func newVectorSurface(width, height, stroke int) *vectorSurface {
	return &vectorSurface{
		width:  width,
		height: height,
		stroke: float32(max(stroke, 1)),
	}
}

func (s *vectorSurface) Fill(clr color.Color) {
	s.push(drawOp{kind: opFill, clr: clr})
}

func (s *vectorSurface) DrawLine(x0, y0, x1, y1 int, clr color.Color) {
	s.push(drawOp{kind: opLine, x0: x0, y0: y0, x1: x1, y1: y1, clr: clr})
}

func (s *vectorSurface) DrawCircle(cx, cy, radius int, clr color.Color) {
	s.push(drawOp{kind: opCircle, x0: cx, y0: cy, radius: radius, clr: clr})
}

func (s *vectorSurface) push(op drawOp) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, op)
}

func (s *vectorSurface) Present(screen *ebiten.Image) {
	if s.frame == nil {
		s.frame = ebiten.NewImage(s.width, s.height)
	}

	s.mu.Lock()
	ops := s.pending
	s.pending = nil
	s.mu.Unlock()

	// Antialiasing is off so an erase covers exactly the pixels a draw touched
	for _, op := range ops {
		switch op.kind {
		case opFill:
			s.frame.Fill(op.clr)
		case opLine:
			vector.StrokeLine(s.frame,
				float32(op.x0)+0.5, float32(op.y0)+0.5, float32(op.x1)+0.5, float32(op.y1)+0.5,
				s.stroke, op.clr, false)
		case opCircle:
			vector.StrokeCircle(s.frame,
				float32(op.x0)+0.5, float32(op.y0)+0.5, float32(op.radius),
				s.stroke, op.clr, false)
		}
	}
	screen.DrawImage(s.frame, nil)
}
