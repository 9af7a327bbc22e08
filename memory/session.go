// Package memory implements coverletter.SessionStore in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/fwojciec/coverletter"
	"github.com/google/uuid"
)

// EvictionPolicy chooses which session to drop when the store is over
// capacity. ids is ordered oldest first; the returned index is removed.
type EvictionPolicy func(ids []string) int

// EvictOldest drops the first inserted session.
func EvictOldest(ids []string) int {
	return 0
}

// Ensure SessionStore implements coverletter.SessionStore at compile time.
var _ coverletter.SessionStore = (*SessionStore)(nil)

// SessionStore is a bounded, insertion-ordered session store. Reads never
// change the order.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*coverletter.Session
	order    []string

	capacity int
	evict    EvictionPolicy
	newID    func() (uuid.UUID, error)
}

// Option configures a SessionStore.
type Option func(*SessionStore)

// WithCapacity sets the number of sessions retained.
func WithCapacity(n int) Option {
	return func(s *SessionStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithEvictionPolicy sets the policy used when capacity is exceeded.
func WithEvictionPolicy(p EvictionPolicy) Option {
	return func(s *SessionStore) {
		if p != nil {
			s.evict = p
		}
	}
}

// NewSessionStore creates a SessionStore holding DefaultSessionCapacity
// sessions with oldest-first eviction.
func NewSessionStore(opts ...Option) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]*coverletter.Session),
		capacity: coverletter.DefaultSessionCapacity,
		evict:    EvictOldest,
		newID:    uuid.NewV7,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put stores a copy of session under a new time-ordered ID and returns it.
func (s *SessionStore) Put(_ context.Context, session *coverletter.Session) (string, error) {
	if session == nil {
		return "", coverletter.Errorf(coverletter.EINVALID, "session required")
	}

	id, err := s.newID()
	if err != nil {
		return "", coverletter.Errorf(coverletter.EINTERNAL, "generate session id: %v", err)
	}

	stored := *session
	stored.ID = id.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	for len(s.order) > s.capacity {
		i := s.evict(s.order)
		if i < 0 || i >= len(s.order) {
			i = 0
		}
		delete(s.sessions, s.order[i])
		s.order = append(s.order[:i], s.order[i+1:]...)
	}
	return stored.ID, nil
}

// Get returns a copy of the session with id.
// Returns ENOTFOUND if the session was evicted or never existed.
func (s *SessionStore) Get(_ context.Context, id string) (*coverletter.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, coverletter.Errorf(coverletter.ENOTFOUND, "Session not found")
	}
	out := *session
	return &out, nil
}

// Len returns the number of sessions currently held.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
