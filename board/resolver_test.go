package board

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTouch returns queued points, one per settle
type fakeTouch struct {
	points  []image.Point
	current image.Point
	settles int
}

func (f *fakeTouch) AwaitSettle() {
	f.current = f.points[0]
	f.points = f.points[1:]
	f.settles++
}

func (f *fakeTouch) TouchedPoint() image.Point {
	return f.current
}

func TestResolver_ResolveTouch(t *testing.T) {
	touch := &fakeTouch{points: []image.Point{
		{150, 150},
		{310, 310},
		{-5, -5},
		{299, 0},
	}}
	r := NewResolver(newTestGeometry(t, Region{Width: 300, Height: 300}), touch)

	assert.Equal(t, Cell{1, 1}, r.ResolveTouch())
	assert.Equal(t, Cell{2, 2}, r.ResolveTouch())
	assert.Equal(t, Cell{0, 0}, r.ResolveTouch())
	assert.Equal(t, Cell{0, 2}, r.ResolveTouch())
	assert.Equal(t, 4, touch.settles, "every resolve waits for the controller")
}

func TestResolver_CellAtDoesNotWait(t *testing.T) {
	touch := &fakeTouch{}
	r := NewResolver(newTestGeometry(t, Region{Origin: image.Pt(40, 0), Width: 240, Height: 240}), touch)

	assert.Equal(t, Cell{0, 0}, r.CellAt(image.Pt(0, 0)))
	assert.Equal(t, Cell{2, 2}, r.CellAt(image.Pt(319, 239)))
	assert.Zero(t, touch.settles)
}

func TestNewDisplay_PropagatesErrors(t *testing.T) {
	_, err := NewDisplay(Region{Width: 100, Height: 99}, &mockCanvas{}, nil, testStyle())
	assert.ErrorIs(t, err, ErrRegionNotDivisible)

	style := testStyle()
	style.Margin = 1
	_, err = NewDisplay(Region{Width: 99, Height: 99}, &mockCanvas{}, nil, style)
	assert.ErrorIs(t, err, ErrMarginTooSmall)

	d, err := NewDisplay(Region{Width: 300, Height: 300}, &mockCanvas{}, nil, testStyle())
	require.NoError(t, err)
	assert.Equal(t, Cell{1, 1}, d.CellAt(image.Pt(150, 150)))
	assert.Equal(t, image.Rect(100, 100, 200, 200), d.Geometry.CellBounds(1, 1))
}

func TestParseMark(t *testing.T) {
	for r, want := range map[rune]Mark{'X': X, 'x': X, 'O': O, 'o': O, '.': None} {
		got, err := ParseMark(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseMark('?')
	assert.Error(t, err)
}
