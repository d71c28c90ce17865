package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v2"

	"tttdisplay/board"
	"tttdisplay/touch"
)

// Surface names accepted in Config.Surface
const (
	SurfaceRaster = "raster" // software rasteriser, uploaded to the screen each change
	SurfaceVector = "vector" // ebiten vector strokes on an offscreen image
)

var (
	// ErrUnknownColor is returned for a colour that is neither a CSS name nor #rrggbb
	ErrUnknownColor = errors.New("unknown colour")

	// ErrInvalidConfig is returned when a config value is out of range
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds display configuration
type Config struct {
	// ScreenWidth is the logical display width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the logical display height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// WindowScale multiplies the logical size for the desktop window
	WindowScale int `yaml:"window_scale"`

	// Board is where the 3x3 grid sits on the display
	Board board.Region `yaml:"board"`

	// Margin is the gap between a mark and its cell edge in pixels
	Margin int `yaml:"margin"`

	// Stroke is the line width for the grid and the marks
	Stroke int `yaml:"stroke"`

	// Colours, as CSS colour names or #rrggbb
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`

	// SettleDelay is how long a touch is held before it is read
	SettleDelay time.Duration `yaml:"settle_delay"`

	// PollInterval is how often the test harness polls buttons and touches
	PollInterval time.Duration `yaml:"poll_interval"`

	// Surface selects the canvas implementation (raster or vector)
	Surface string `yaml:"surface"`

	// LogLevel is a logrus level name
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a default configuration for a 320x240 touch display
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  320,
		ScreenHeight: 240,
		WindowScale:  3,
		Board: board.Region{
			Origin: image.Pt(40, 0),
			Width:  240,
			Height: 240,
		},
		Margin:       16,
		Stroke:       3,
		Foreground:   "yellow",
		Background:   "black",
		Grid:         "white",
		SettleDelay:  touch.DefaultSettleDelay,
		PollInterval: 10 * time.Millisecond,
		Surface:      SurfaceRaster,
		LogLevel:     "info",
	}
}

// LoadConfig builds a Config from the defaults, an optional YAML file and
// TTT_* environment variables (a .env file in the working directory is read first)
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("failed to load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := config.applyEnv(os.LookupEnv); err != nil {
		return config, err
	}

	return config, config.Validate()
}

// applyEnv overrides fields from environment variables
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("TTT_SURFACE"); ok {
		c.Surface = v
	}
	if v, ok := lookup("TTT_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("TTT_SETTLE_DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TTT_SETTLE_DELAY: %w", err)
		}
		c.SettleDelay = d
	}
	if v, ok := lookup("TTT_WINDOW_SCALE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TTT_WINDOW_SCALE: %w", err)
		}
		c.WindowScale = n
	}
	return nil
}

// Validate checks that the board fits the screen and that marks fit their cells
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.WindowScale < 1 {
		return fmt.Errorf("%w: window scale %d", ErrInvalidConfig, c.WindowScale)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval %v", ErrInvalidConfig, c.PollInterval)
	}
	if c.Surface != SurfaceRaster && c.Surface != SurfaceVector {
		return fmt.Errorf("%w: surface %q", ErrInvalidConfig, c.Surface)
	}

	screen := image.Rect(0, 0, c.ScreenWidth, c.ScreenHeight)
	if !c.Board.Rect().In(screen) {
		return fmt.Errorf("%w: board %v does not fit screen %v", ErrInvalidConfig, c.Board.Rect(), screen)
	}

	style, err := c.Style()
	if err != nil {
		return err
	}
	geom, err := board.NewGeometry(c.Board)
	if err != nil {
		return err
	}
	if _, err := board.NewRenderer(geom, nil, style); err != nil {
		return err
	}
	return nil
}

// Style resolves the configured colours into a board style
func (c Config) Style() (board.Style, error) {
	fg, err := ParseColor(c.Foreground)
	if err != nil {
		return board.Style{}, err
	}
	bg, err := ParseColor(c.Background)
	if err != nil {
		return board.Style{}, err
	}
	grid, err := ParseColor(c.Grid)
	if err != nil {
		return board.Style{}, err
	}

	return board.Style{
		Foreground: fg,
		Background: bg,
		Grid:       grid,
		Margin:     c.Margin,
		Stroke:     c.Stroke,
	}, nil
}

// ParseColor accepts an SVG/CSS colour name or a #rrggbb hex value
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if clr, ok := colornames.Map[name]; ok {
		return clr, nil
	}

	hex, ok := strings.CutPrefix(name, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
