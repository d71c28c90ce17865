package touch

import (
	"image"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultSettleDelay is how long a touch must be held before its position is trusted
const DefaultSettleDelay = 50 * time.Millisecond

// Sampler reads the raw state of the touch panel
type Sampler interface {
	// Sample returns the current touch position and whether the panel is pressed
	Sample() (image.Point, bool)
}

// state of the touch currently on the panel
type state int

const (
	stateIdle     state = iota // nothing touching the panel
	stateSettling              // touched, waiting out the settle delay
	stateSettled               // touched and stable
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateSettling:
		return "settling"
	case stateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Controller debounces a touch panel. It is fed once per frame through Tick
// and hands every touch to exactly one AwaitSettle call.
type Controller struct {
	mu   sync.Mutex
	cond *sync.Cond

	sampler     Sampler
	settleDelay time.Duration
	log         logrus.FieldLogger

	state     state
	touchedAt time.Time
	current   image.Point // latest raw position of the touch in progress

	resolved uint64      // touches that finished settling (or lifted early)
	consumed uint64      // touches handed out through AwaitSettle
	point    image.Point // position of the last resolved touch
	closed   bool
}

// NewController creates a controller that polls the sampler on every Tick
func NewController(sampler Sampler, settleDelay time.Duration, log logrus.FieldLogger) *Controller {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	c := &Controller{
		sampler:     sampler,
		settleDelay: settleDelay,
		log:         log,
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Tick samples the panel and advances the settle state machine
func (c *Controller) Tick(now time.Time) {
	p, pressed := c.sampler.Sample()

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case stateIdle:
		if !pressed {
			return
		}
		c.state = stateSettling
		c.touchedAt = now
		c.current = p

	case stateSettling:
		if !pressed {
			// Lifted before settling: report the last position seen
			c.log.WithFields(logrus.Fields{"x": c.current.X, "y": c.current.Y}).Debug("touch released before settle delay")
			c.resolve(c.current)
			c.state = stateIdle
			return
		}
		c.current = p
		if now.Sub(c.touchedAt) >= c.settleDelay {
			c.resolve(p)
			c.state = stateSettled
		}

	case stateSettled:
		if !pressed {
			c.state = stateIdle
			return
		}
		c.current = p
	}
}

// resolve publishes a finished touch to waiters. Caller holds mu.
func (c *Controller) resolve(p image.Point) {
	c.point = p
	c.resolved++
	c.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y}).Debug("touch settled")
	c.cond.Broadcast()
}

// IsTouched reports whether a new touch is in progress or has settled without
// being picked up by AwaitSettle yet. A finger held after its touch was
// handed out does not count.
func (c *Controller) IsTouched() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == stateSettling || c.resolved > c.consumed
}

// AwaitSettle blocks until a touch the caller has not seen yet has settled,
// or the controller is closed
func (c *Controller) AwaitSettle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for !c.closed && c.resolved <= c.consumed {
		c.cond.Wait()
	}
	c.consumed = c.resolved
}

// TouchedPoint returns the position of the most recently settled touch
func (c *Controller) TouchedPoint() image.Point {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.point
}

// ClearOldTouchData drops any settled touch that has not been picked up yet
func (c *Controller) ClearOldTouchData() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consumed = c.resolved
}

// Close releases every goroutine blocked in AwaitSettle. Later calls return immediately.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.cond.Broadcast()
}
