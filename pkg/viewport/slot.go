package viewport

import "sync"

// Slot holds the active Classifier for callers that rebuild it, e.g. after
// a configuration change. Replacing the held classifier closes the old one.
type Slot struct {
	mu  sync.Mutex
	cur *Classifier
}

// Replace installs c and closes the previously held classifier, if any.
func (s *Slot) Replace(c *Classifier) {
	s.mu.Lock()
	old := s.cur
	s.cur = c
	s.mu.Unlock()

	if old != nil && old != c {
		old.Close()
	}
}

// Current returns the held classifier, or nil.
func (s *Slot) Current() *Classifier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Close closes and releases the held classifier.
func (s *Slot) Close() {
	s.mu.Lock()
	old := s.cur
	s.cur = nil
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
}
