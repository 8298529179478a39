package services

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// ErrorSurface is the single slot holding the transient user-visible error.
// A new message overwrites the previous one. Each Set bumps a generation and
// the clear timer only clears the generation it was armed for, so an old
// timer never wipes a newer message.
type ErrorSurface struct {
	mu         sync.Mutex
	clock      clock.Clock
	message    string
	generation uint64
	timer      *clock.Timer
	onChange   func()
}

func NewErrorSurface(clk clock.Clock, onChange func()) *ErrorSurface {
	if onChange == nil {
		onChange = func() {}
	}
	return &ErrorSurface{clock: clk, onChange: onChange}
}

// Set shows message for ttl.
func (s *ErrorSurface) Set(message string, ttl time.Duration) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.message = message
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.clock.AfterFunc(ttl, func() { s.clear(generation) })
	s.mu.Unlock()
	s.onChange()
}

func (s *ErrorSurface) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Stop clears the slot and cancels the pending clear.
func (s *ErrorSurface) Stop() {
	s.mu.Lock()
	s.generation++
	s.message = ""
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
}

func (s *ErrorSurface) clear(generation uint64) {
	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		return
	}
	s.message = ""
	s.timer = nil
	s.mu.Unlock()
	s.onChange()
}
