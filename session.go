package coverletter

import (
	"context"
	"time"
)

// DefaultSessionCapacity is the number of sessions retained for download.
const DefaultSessionCapacity = 10

// Session is a completed generation retained for later download.
type Session struct {
	ID          string    `json:"id"`
	CoverLetter string    `json:"coverLetter"`
	Bullets     string    `json:"bullets"`
	RoleTitle   string    `json:"roleTitle"`
	CompanyName string    `json:"companyName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SessionStore retains a bounded number of completed sessions.
type SessionStore interface {
	// Put assigns a new time-ordered ID to session, stores it, and returns
	// the ID. The oldest session is evicted once capacity is exceeded.
	Put(ctx context.Context, session *Session) (string, error)

	// Get retrieves a session by ID.
	// Returns ENOTFOUND if the session expired or never existed.
	Get(ctx context.Context, id string) (*Session, error)
}
