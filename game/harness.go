package game

import (
	"image"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tttdisplay/board"
)

// TouchPanel is the touch controller as seen by the test harness
type TouchPanel interface {
	board.TouchController

	// IsTouched reports whether a touch is waiting to be resolved
	IsTouched() bool

	// ClearOldTouchData drops touches that were never resolved
	ClearOldTouchData()
}

// Controls are the switch and buttons that drive the manual test
type Controls interface {
	// MarkSwitch returns O when the switch is up and X when it is down
	MarkSwitch() board.Mark

	// ClearPressed reports (once) that the clear button was pushed
	ClearPressed() bool

	// ExitPressed reports that the exit button was pushed
	ExitPressed() bool
}

// Touch describes the last touch the harness handled
type Touch struct {
	Point image.Point
	Cell  board.Cell
	Mark  board.Mark
	Valid bool
}

// Harness is the manual display test: every touch paints the mark selected
// by the switch, the clear button wipes the board and the exit button stops.
// The harness, not the display, remembers which marks are on screen.
type Harness struct {
	display  *board.Display
	touch    TouchPanel
	controls Controls
	log      logrus.FieldLogger

	mu    sync.Mutex
	marks [board.Size][board.Size]board.Mark
	last  Touch
}

// NewHarness creates a test harness over a display
func NewHarness(display *board.Display, touch TouchPanel, controls Controls, log logrus.FieldLogger) *Harness {
	return &Harness{
		display:  display,
		touch:    touch,
		controls: controls,
		log:      log,
	}
}

// Start draws the board lines and discards touches made before the test began
func (h *Harness) Start() {
	h.display.DrawBoardLines()
	h.touch.ClearOldTouchData()
	h.log.Info("display test started: touch to draw, SW0 selects X/O, BTN0 clears, BTN1 exits")
}

// Run starts the test and polls until the exit button is pushed
func (h *Harness) Run(interval time.Duration) {
	h.Start()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if !h.Step() {
			return
		}
	}
}

// Step performs one poll of the buttons and the touch panel.
// It returns false once the test should end.
func (h *Harness) Step() bool {
	if h.controls.ExitPressed() {
		h.log.Info("display test finished")
		return false
	}

	if h.controls.ClearPressed() {
		h.Clear()
		h.touch.ClearOldTouchData()
		return true
	}

	if !h.touch.IsTouched() {
		return true
	}

	cell := h.display.ResolveTouch()
	point := h.touch.TouchedPoint()
	mark := h.controls.MarkSwitch()
	h.Place(cell, mark)

	h.mu.Lock()
	h.last = Touch{Point: point, Cell: cell, Mark: mark, Valid: true}
	h.mu.Unlock()

	h.log.WithFields(logrus.Fields{
		"x":      point.X,
		"y":      point.Y,
		"row":    cell.Row,
		"column": cell.Column,
		"mark":   mark,
	}).Info("touch resolved")
	return true
}

// Place draws a mark in a cell, erasing whatever mark was there before
func (h *Harness) Place(cell board.Cell, mark board.Mark) {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev := h.marks[cell.Row][cell.Column]
	if prev == mark {
		return
	}
	if prev != board.None {
		h.display.DrawMark(cell.Row, cell.Column, prev, true)
	}
	h.display.DrawMark(cell.Row, cell.Column, mark, false)
	h.marks[cell.Row][cell.Column] = mark
}

// Clear erases every mark the harness has drawn
func (h *Harness) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	erased := 0
	for row := range board.Size {
		for column := range board.Size {
			mark := h.marks[row][column]
			if mark == board.None {
				continue
			}
			h.display.DrawMark(row, column, mark, true)
			h.marks[row][column] = board.None
			erased++
		}
	}
	h.log.WithField("erased", erased).Info("board cleared")
}

// Marks returns a copy of the marks currently on screen
func (h *Harness) Marks() [board.Size][board.Size]board.Mark {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.marks
}

// LastTouch returns the last touch handled by Step
func (h *Harness) LastTouch() Touch {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.last
}
