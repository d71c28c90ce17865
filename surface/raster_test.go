package surface

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black  = color.RGBA{A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
)

func countColor(s *Raster, clr color.RGBA) int {
	img := s.Image()
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == clr {
				n++
			}
		}
	}
	return n
}

func TestRaster_Fill(t *testing.T) {
	s := NewRaster(20, 10, 1)
	s.Fill(black)

	assert.Equal(t, 200, countColor(s, black))
}

func TestRaster_HorizontalLineCoversPixelRow(t *testing.T) {
	s := NewRaster(20, 10, 1)
	s.Fill(black)
	s.DrawLine(2, 5, 12, 5, yellow)

	for x := 2; x <= 12; x++ {
		assert.Equal(t, yellow, s.At(x, 5), "pixel %d,5", x)
	}
	assert.Equal(t, black, s.At(1, 5))
	assert.Equal(t, black, s.At(13, 5))
	assert.Equal(t, black, s.At(5, 4))
	assert.Equal(t, black, s.At(5, 6))
	assert.Equal(t, 11, countColor(s, yellow))
}

func TestRaster_StrokeWidth(t *testing.T) {
	s := NewRaster(20, 20, 3)
	s.Fill(black)
	s.DrawLine(10, 2, 10, 18, yellow)

	for _, x := range []int{9, 10, 11} {
		assert.Equal(t, yellow, s.At(x, 10), "column %d", x)
	}
	assert.Equal(t, black, s.At(8, 10))
	assert.Equal(t, black, s.At(12, 10))
}

func TestRaster_ZeroLengthLineIsIgnored(t *testing.T) {
	s := NewRaster(10, 10, 3)
	s.Fill(black)
	s.DrawLine(5, 5, 5, 5, yellow)

	assert.Zero(t, countColor(s, yellow))
}

func TestRaster_CircleIsHollow(t *testing.T) {
	s := NewRaster(60, 60, 3)
	s.Fill(black)
	s.DrawCircle(30, 30, 20, yellow)

	assert.Equal(t, black, s.At(30, 30), "centre stays empty")
	assert.Equal(t, yellow, s.At(50, 30), "right edge")
	assert.Equal(t, yellow, s.At(30, 10), "top edge")
	assert.Equal(t, yellow, s.At(10, 30), "left edge")
	assert.Equal(t, black, s.At(55, 30), "outside")
}

func TestRaster_RedrawInBackgroundRestores(t *testing.T) {
	s := NewRaster(80, 80, 3)
	s.Fill(black)
	before := s.Image()

	s.DrawCircle(40, 40, 25, yellow)
	s.DrawLine(5, 5, 70, 60, yellow)
	s.DrawCircle(40, 40, 25, yellow)

	s.DrawLine(5, 5, 70, 60, black)
	s.DrawCircle(40, 40, 25, black)

	assert.Equal(t, before.Pix, s.Image().Pix)
}

func TestRaster_CopyPixelsTracksVersion(t *testing.T) {
	s := NewRaster(4, 4, 1)
	dst := make([]byte, 4*4*4)

	v := s.CopyPixels(dst, 0)
	assert.Equal(t, uint64(0), v, "nothing drawn yet")

	s.Fill(yellow)
	v = s.CopyPixels(dst, v)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, []byte{255, 255, 0, 255}, dst[:4])

	assert.Equal(t, v, s.CopyPixels(dst, v), "unchanged surface is not copied again")
}

func TestRaster_EncodePNG(t *testing.T) {
	s := NewRaster(12, 9, 1)
	s.Fill(black)
	s.DrawLine(0, 4, 12, 4, yellow)

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())

	r, g, b, _ := img.At(6, 4).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0}, [3]uint32{r, g, b})
}
