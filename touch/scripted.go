package touch

import (
	"image"
	"sync"
)

// Scripted is a Sampler fed by code instead of hardware. It backs headless
// runs and tests.
type Scripted struct {
	mu      sync.Mutex
	point   image.Point
	pressed bool
}

// Press puts a finger down (or moves it) at p
func (s *Scripted) Press(p image.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.point = p
	s.pressed = true
}

// Release lifts the finger
func (s *Scripted) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pressed = false
}

// Sample implements Sampler
func (s *Scripted) Sample() (image.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.point, s.pressed
}
