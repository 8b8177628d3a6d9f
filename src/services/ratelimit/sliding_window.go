package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	mu     sync.Mutex
	stamps []time.Time
}

// SlidingWindow admits at most limit requests per identity within any trailing window.
// Counters live in process memory only.
type SlidingWindow struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewSlidingWindow() *SlidingWindow {
	return NewSlidingWindowWithClock(time.Now)
}

func NewSlidingWindowWithClock(now func() time.Time) *SlidingWindow {
	return &SlidingWindow{
		windows: make(map[string]*window),
		now:     now,
	}
}

// Admit prunes stamps older than the window, then records the request if the
// identity is still under limit. A rejected request leaves the window untouched.
func (s *SlidingWindow) Admit(identity string, limit int, windowSize time.Duration) bool {
	w := s.windowFor(identity)

	w.mu.Lock()
	defer w.mu.Unlock()

	now := s.now()
	w.stamps = prune(w.stamps, now.Add(-windowSize))

	if len(w.stamps) >= limit {
		return false
	}
	w.stamps = append(w.stamps, now)
	return true
}

// Len reports how many admitted requests the identity has on record.
func (s *SlidingWindow) Len(identity string) int {
	s.mu.Lock()
	w, ok := s.windows[identity]
	s.mu.Unlock()
	if !ok {
		return 0
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.stamps)
}

func (s *SlidingWindow) windowFor(identity string) *window {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[identity]
	if !ok {
		w = &window{}
		s.windows[identity] = w
	}
	return w
}

// prune drops stamps at or before cutoff; stamps are kept in ascending order.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(stamps) && !stamps[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return stamps
	}
	return append(stamps[:0], stamps[i:]...)
}
