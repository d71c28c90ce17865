package game

import (
	"image"
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tttdisplay/board"
	"tttdisplay/surface"
)

type fakePanel struct {
	queue   []image.Point
	current image.Point
	cleared int
}

func (f *fakePanel) IsTouched() bool { return len(f.queue) > 0 }

func (f *fakePanel) AwaitSettle() {
	f.current = f.queue[0]
	f.queue = f.queue[1:]
}

func (f *fakePanel) TouchedPoint() image.Point { return f.current }

func (f *fakePanel) ClearOldTouchData() {
	f.queue = nil
	f.cleared++
}

type fakeControls struct {
	mark  board.Mark
	clear bool
	exit  bool
}

func (f *fakeControls) MarkSwitch() board.Mark { return f.mark }

func (f *fakeControls) ClearPressed() bool {
	pressed := f.clear
	f.clear = false
	return pressed
}

func (f *fakeControls) ExitPressed() bool { return f.exit }

type mockCanvas struct {
	mock.Mock
}

func (m *mockCanvas) DrawLine(x0, y0, x1, y1 int, clr color.Color) {
	m.Called(x0, y0, x1, y1, clr)
}

func (m *mockCanvas) DrawCircle(cx, cy, radius int, clr color.Color) {
	m.Called(cx, cy, radius, clr)
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestHarness(t *testing.T, canvas board.Canvas) (*Harness, *fakePanel, *fakeControls) {
	t.Helper()
	config := DefaultConfig()
	style, err := config.Style()
	require.NoError(t, err)

	panel := &fakePanel{}
	display, err := board.NewDisplay(config.Board, canvas, panel, style)
	require.NoError(t, err)

	controls := &fakeControls{mark: board.X}
	return NewHarness(display, panel, controls, quietLogger()), panel, controls
}

func TestHarness_TouchDrawsSelectedMark(t *testing.T) {
	canvas := surface.NewRaster(320, 240, 3)
	h, panel, controls := newTestHarness(t, canvas)
	h.Start()

	// Board is at x 40..280, cells are 80px
	panel.queue = []image.Point{{50, 10}}
	assert.True(t, h.Step())

	controls.mark = board.O
	panel.queue = []image.Point{{300, 230}}
	assert.True(t, h.Step())

	marks := h.Marks()
	assert.Equal(t, board.X, marks[0][0])
	assert.Equal(t, board.O, marks[2][2], "off-board touch clamps to the corner cell")

	last := h.LastTouch()
	assert.True(t, last.Valid)
	assert.Equal(t, image.Pt(300, 230), last.Point)
	assert.Equal(t, board.Cell{Row: 2, Column: 2}, last.Cell)
	assert.Equal(t, board.O, last.Mark)
}

func TestHarness_IdleStepDoesNothing(t *testing.T) {
	canvas := &mockCanvas{}
	h, _, _ := newTestHarness(t, canvas)

	assert.True(t, h.Step())
	assert.False(t, h.LastTouch().Valid)
	canvas.AssertNotCalled(t, "DrawLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHarness_PlaceReplacesMark(t *testing.T) {
	config := DefaultConfig()
	style, err := config.Style()
	require.NoError(t, err)

	canvas := &mockCanvas{}
	h, _, _ := newTestHarness(t, canvas)

	// Centre cell: centre (160,120), extent 40-16 = 24
	canvas.On("DrawLine", 136, 96, 184, 144, style.Foreground).Once()
	canvas.On("DrawLine", 136, 144, 184, 96, style.Foreground).Once()
	h.Place(board.Cell{Row: 1, Column: 1}, board.X)
	canvas.AssertExpectations(t)

	// Same mark again is not redrawn
	h.Place(board.Cell{Row: 1, Column: 1}, board.X)
	canvas.AssertNumberOfCalls(t, "DrawLine", 2)

	canvas.On("DrawLine", 136, 96, 184, 144, style.Background).Once()
	canvas.On("DrawLine", 136, 144, 184, 96, style.Background).Once()
	canvas.On("DrawCircle", 160, 120, 24, style.Foreground).Once()
	h.Place(board.Cell{Row: 1, Column: 1}, board.O)
	canvas.AssertExpectations(t)

	assert.Equal(t, board.O, h.Marks()[1][1])
}

func TestHarness_ClearRestoresEmptyBoard(t *testing.T) {
	canvas := surface.NewRaster(320, 240, 3)
	canvas.Fill(color.Black)
	h, panel, controls := newTestHarness(t, canvas)
	h.Start()
	empty := canvas.Image()

	for i, p := range []image.Point{{60, 20}, {160, 120}, {250, 200}, {100, 200}} {
		if i%2 == 1 {
			controls.mark = board.O
		} else {
			controls.mark = board.X
		}
		panel.queue = []image.Point{p}
		require.True(t, h.Step())
	}
	assert.NotEqual(t, empty.Pix, canvas.Image().Pix)

	controls.clear = true
	panel.queue = []image.Point{{1, 1}}
	assert.True(t, h.Step())

	assert.Equal(t, empty.Pix, canvas.Image().Pix)
	assert.Equal(t, [board.Size][board.Size]board.Mark{}, h.Marks())
	assert.Empty(t, panel.queue, "touches made while clearing are dropped")
}

func TestHarness_ExitStopsRun(t *testing.T) {
	canvas := surface.NewRaster(320, 240, 3)
	h, panel, controls := newTestHarness(t, canvas)
	controls.exit = true

	done := make(chan struct{})
	go func() {
		h.Run(time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on exit")
	}
	assert.Equal(t, 1, panel.cleared, "Start drops stale touches")
}
