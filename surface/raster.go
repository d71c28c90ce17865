package surface

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/vector"
)

// coverageThreshold is the minimum mask alpha for a pixel to be painted.
// Painting whole pixels instead of blending keeps redraws pixel-identical,
// so drawing in the background colour removes a shape completely.
const coverageThreshold = 0x80

// Raster is a software canvas backed by an RGBA image.
// It is safe to draw from one goroutine while another reads it.
type Raster struct {
	mu      sync.Mutex
	img     *image.RGBA
	stroke  float32
	z       *vector.Rasterizer
	mask    *image.Alpha
	version uint64 // bumped on every change
}

// NewRaster creates a raster surface of the given size and stroke width
func NewRaster(width, height, stroke int) *Raster {
	bounds := image.Rect(0, 0, width, height)
	return &Raster{
		img:    image.NewRGBA(bounds),
		stroke: float32(max(stroke, 1)),
		z:      vector.NewRasterizer(width, height),
		mask:   image.NewAlpha(bounds),
	}
}

// Bounds returns the surface size
func (s *Raster) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Fill paints the whole surface with one colour
func (s *Raster) Fill(clr color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
	s.version++
}

// DrawLine strokes a segment covering both endpoint pixels
func (s *Raster) DrawLine(x0, y0, x1, y1 int, clr color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginPath()
	if !addSegment(s.z, pixelCenter(x0), pixelCenter(y0), pixelCenter(x1), pixelCenter(y1), s.stroke/2) {
		return
	}
	s.paint(clr)
}

// DrawCircle strokes a circle outline
func (s *Raster) DrawCircle(cx, cy, radius int, clr color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginPath()
	addRing(s.z, pixelCenter(cx), pixelCenter(cy), float32(radius), s.stroke/2)
	s.paint(clr)
}

// At returns the colour of one pixel
func (s *Raster) At(x, y int) color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.img.RGBAAt(x, y)
}

// Image returns a copy of the current surface contents
func (s *Raster) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// CopyPixels copies the surface into dst (which must match its size) if it
// changed since version. It returns the version that dst now holds.
func (s *Raster) CopyPixels(dst []byte, version uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version == s.version {
		return version
	}
	copy(dst, s.img.Pix)
	return s.version
}

// EncodePNG writes the surface contents as a PNG image
func (s *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

func (s *Raster) beginPath() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
}

// paint rasterises the current path into the mask and writes every covered pixel
func (s *Raster) paint(clr color.Color) {
	clear(s.mask.Pix)
	s.z.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})

	rgba := color.RGBAModel.Convert(clr).(color.RGBA)
	b := s.mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.mask.AlphaAt(x, y).A >= coverageThreshold {
				s.img.SetRGBA(x, y, rgba)
			}
		}
	}
	s.version++
}

func pixelCenter(v int) float32 {
	return float32(v) + 0.5
}

// addSegment adds a rectangle of half-width hw around the segment. The ends
// are pushed out half a pixel so both endpoint pixels are fully covered.
// It returns false for a zero-length segment.
func addSegment(z *vector.Rasterizer, x0, y0, x1, y1, hw float32) bool {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return false
	}

	ux, uy := dx/length, dy/length
	x0, y0 = x0-ux/2, y0-uy/2
	x1, y1 = x1+ux/2, y1+uy/2

	// Normal scaled to the half width
	nx := -uy * hw
	ny := ux * hw

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
	return true
}

// addRing adds an annulus of half-width hw around the circle. The inner
// contour winds the opposite way so the rasteriser leaves it empty.
func addRing(z *vector.Rasterizer, cx, cy, radius, hw float32) {
	outer := radius + hw
	inner := radius - hw
	steps := 32 + int(outer)

	addPolygon(z, cx, cy, outer, steps, 1)
	if inner > 0 {
		addPolygon(z, cx, cy, inner, steps, -1)
	}
}

func addPolygon(z *vector.Rasterizer, cx, cy, radius float32, steps int, dir float64) {
	for i := 0; i <= steps; i++ {
		angle := dir * float64(i) / float64(steps) * 2 * math.Pi
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}
