package discord

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessionStore keeps component state between interactions. Each entry
// expires after ttl without use; expire runs once for entries that time
// out, never for entries taken with Remove.
type sessionStore[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*sessionEntry[T]
	expire  func(id string, value T)
	now     func() time.Time
}

type sessionEntry[T any] struct {
	value    T
	deadline time.Time
	timer    *time.Timer
}

func newSessionStore[T any](ttl time.Duration, expire func(id string, value T)) *sessionStore[T] {
	return &sessionStore[T]{
		ttl:     ttl,
		entries: make(map[string]*sessionEntry[T]),
		expire:  expire,
		now:     time.Now,
	}
}

// Add stores value under a fresh ID and starts its inactivity timer.
func (s *sessionStore[T]) Add(value T) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &sessionEntry[T]{value: value, deadline: s.now().Add(s.ttl)}
	e.timer = time.AfterFunc(s.ttl, func() { s.fire(id, e) })
	s.entries[id] = e
	return id
}

// Peek returns the value for id without extending its deadline.
func (s *sessionStore[T]) Peek(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Touch pushes the deadline of id back by ttl. It reports false when the
// session is gone.
func (s *sessionStore[T]) Touch(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return false
	}
	e.deadline = s.now().Add(s.ttl)
	e.timer.Reset(s.ttl)
	return true
}

// Remove deletes id without running the expire hook.
func (s *sessionStore[T]) Remove(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		var zero T
		return zero, false
	}
	e.timer.Stop()
	delete(s.entries, id)
	return e.value, true
}

// Len returns the number of live sessions.
func (s *sessionStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops every timer and drops all sessions without expiring them.
func (s *sessionStore[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, id)
	}
}

func (s *sessionStore[T]) fire(id string, e *sessionEntry[T]) {
	s.mu.Lock()
	current, ok := s.entries[id]
	if !ok || current != e {
		s.mu.Unlock()
		return
	}
	// A Touch that raced with this callback has already rescheduled the timer.
	if s.now().Before(e.deadline) {
		s.mu.Unlock()
		return
	}
	delete(s.entries, id)
	s.mu.Unlock()

	if s.expire != nil {
		s.expire(id, e.value)
	}
}
