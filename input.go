package main

import (
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tttdisplay/board"
)

// touchSampler reads the first active touch, falling back to the left mouse
// button so the display test also runs on a desktop
type touchSampler struct {
	ids []ebiten.TouchID
}

func newTouchSampler() *touchSampler {
	return &touchSampler{
		ids: make([]ebiten.TouchID, 0, 4),
	}
}

// Sample implements touch.Sampler. It must be called from Update.
func (s *touchSampler) Sample() (image.Point, bool) {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	if len(s.ids) > 0 {
		x, y := ebiten.TouchPosition(s.ids[0])
		return image.Pt(x, y), true
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return image.Pt(x, y), true
	}
	return image.Point{}, false
}

// keyControls maps the board's switch and buttons to keys:
// Tab flips SW0, C is BTN0 (clear) and Escape is BTN1 (exit).
// Update runs on the ebiten goroutine; the getters are read by the harness.
type keyControls struct {
	switchUp atomic.Bool
	clear    atomic.Bool
	exit     atomic.Bool
}

// Update latches key presses for the harness
func (k *keyControls) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		k.switchUp.Store(!k.switchUp.Load())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		k.clear.Store(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.exit.Store(true)
	}
}

// MarkSwitch returns O with the switch up and X with it down
func (k *keyControls) MarkSwitch() board.Mark {
	if k.switchUp.Load() {
		return board.O
	}
	return board.X
}

func (k *keyControls) ClearPressed() bool {
	return k.clear.Swap(false)
}

func (k *keyControls) ExitPressed() bool {
	return k.exit.Load()
}
