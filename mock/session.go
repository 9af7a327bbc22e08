package mock

import (
	"context"

	"github.com/fwojciec/coverletter"
)

var _ coverletter.SessionStore = (*SessionStore)(nil)

// SessionStore is a mock implementation of coverletter.SessionStore.
type SessionStore struct {
	PutFn func(ctx context.Context, session *coverletter.Session) (string, error)
	GetFn func(ctx context.Context, id string) (*coverletter.Session, error)
}

func (s *SessionStore) Put(ctx context.Context, session *coverletter.Session) (string, error) {
	return s.PutFn(ctx, session)
}

func (s *SessionStore) Get(ctx context.Context, id string) (*coverletter.Session, error) {
	return s.GetFn(ctx, id)
}
