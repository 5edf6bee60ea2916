package notice

import (
	"context"
	"time"
)

// Kind classifies a notice for client rendering
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is a one-shot message shown to the user after a mutation,
// such as "Expense added successfully!". It survives exactly one read.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Store keeps at most one pending notice per session. Put replaces any
// pending notice, Pop returns it and removes it in one step. Notices
// expire after the configured TTL if never read.
type Store interface {
	Put(ctx context.Context, sessionID string, n Notice, ttl time.Duration) error

	// Pop returns nil when the session has no pending notice.
	Pop(ctx context.Context, sessionID string) (*Notice, error)

	Close() error
}
