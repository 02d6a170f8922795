package session

import (
	"context"
	"time"

	"github.com/leaguedesk/airbase-client/pkg/model"
)

// Entry is one cached collection plus its creation time.
type Entry struct {
	Collection model.Collection
	CreatedAt  time.Time
}

// Store persists cache entries partitioned by session identity. Entries
// for one session live until DeleteSession; navigation never clears them.
//
// Implementations must never expose a half-written entry to a concurrent
// reader: Get returns either a complete collection or nothing.
type Store interface {
	// Get returns the entry for (session, kind), or false when absent.
	Get(ctx context.Context, session string, kind model.Kind) (model.Collection, bool, error)

	// Set stores a complete collection for (session, kind).
	Set(ctx context.Context, session string, kind model.Kind, collection model.Collection) error

	// DeleteSession removes every entry belonging to the session.
	DeleteSession(ctx context.Context, session string) error
}
