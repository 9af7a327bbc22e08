package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/coverletter"
)

// Ensure LoggingSessionStore implements coverletter.SessionStore.
var _ coverletter.SessionStore = (*LoggingSessionStore)(nil)

// LoggingSessionStore wraps a SessionStore with debug logging.
type LoggingSessionStore struct {
	next   coverletter.SessionStore
	logger *slog.Logger
}

// NewLoggingSessionStore creates a new LoggingSessionStore.
func NewLoggingSessionStore(next coverletter.SessionStore, logger *slog.Logger) *LoggingSessionStore {
	return &LoggingSessionStore{next: next, logger: logger}
}

// Put delegates to the wrapped store and logs the assigned ID.
func (s *LoggingSessionStore) Put(ctx context.Context, session *coverletter.Session) (id string, err error) {
	defer func() {
		s.logger.DebugContext(ctx, "session put", "id", id, "err", err)
	}()
	return s.next.Put(ctx, session)
}

// Get delegates to the wrapped store and logs whether the session was found.
func (s *LoggingSessionStore) Get(ctx context.Context, id string) (session *coverletter.Session, err error) {
	defer func() {
		s.logger.DebugContext(ctx, "session get", "id", id, "found", err == nil)
	}()
	return s.next.Get(ctx, id)
}
