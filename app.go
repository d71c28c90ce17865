package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"tttdisplay/board"
	"tttdisplay/game"
	"tttdisplay/touch"
)

// Game runs the display test inside ebiten. The harness loop lives on its own
// goroutine and blocks on the touch controller; Update feeds the controller
// and the keys, Draw shows whatever the harness painted.
type Game struct {
	config     game.Config
	surface    Surface
	panel      *touch.Controller
	controls   *keyControls
	harness    *game.Harness
	background color.Color
	log        logrus.FieldLogger

	done chan struct{}
}

// NewGame wires the board display to the screen, touch panel and keys
func NewGame(config game.Config, log logrus.FieldLogger) (*Game, error) {
	style, err := config.Style()
	if err != nil {
		return nil, err
	}

	var surface Surface
	switch config.Surface {
	case game.SurfaceVector:
		surface = newVectorSurface(config.ScreenWidth, config.ScreenHeight, config.Stroke)
	default:
		surface = newRasterSurface(config.ScreenWidth, config.ScreenHeight, config.Stroke)
	}

	panel := touch.NewController(newTouchSampler(), config.SettleDelay, log.WithField("component", "touch"))

	display, err := board.NewDisplay(config.Board, surface, panel, style)
	if err != nil {
		return nil, fmt.Errorf("failed to create display: %w", err)
	}

	controls := &keyControls{}
	harness := game.NewHarness(display, panel, controls, log.WithField("component", "harness"))

	return &Game{
		config:     config,
		surface:    surface,
		panel:      panel,
		controls:   controls,
		harness:    harness,
		background: style.Background,
		log:        log,
		done:       make(chan struct{}),
	}, nil
}

// Start clears the screen and launches the test harness
func (g *Game) Start() {
	g.surface.Fill(g.background)

	go func() {
		defer close(g.done)
		g.harness.Run(g.config.PollInterval)
	}()
}

// Close unblocks the harness if it is waiting on a touch
func (g *Game) Close() {
	g.panel.Close()
}

// Update samples input once per tick
func (g *Game) Update() error {
	// F1 toggles the touch overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := game.GetDebugState()
		debugState.ShowTouch = !debugState.ShowTouch
	}

	g.controls.Update()
	g.panel.Tick(time.Now())

	select {
	case <-g.done:
		return ebiten.Termination
	default:
		return nil
	}
}

// Draw renders the board surface
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.surface.Present(screen)

	if game.GetDebugState().ShowTouch {
		g.drawOverlay(screen)
	}
}

// drawOverlay prints the last resolved touch and the switch position
func (g *Game) drawOverlay(screen *ebiten.Image) {
	text := fmt.Sprintf("SW0: %v", g.controls.MarkSwitch())
	if last := g.harness.LastTouch(); last.Valid {
		text += fmt.Sprintf("\ntouch: %d,%d\ncell: %v", last.Point.X, last.Point.Y, last.Cell)
	}
	ebitenutil.DebugPrintAt(screen, text, 2, 2)
}

// Layout returns the logical display size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
