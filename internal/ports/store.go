package ports

import (
	"context"
	"errors"

	"elemdraft/internal/domain"
)

// ErrVersionConflict signals that the caller's snapshot went stale between
// read and write. The caller must reload the latest state and retry; the
// write was not applied. This is distinct from a declined action, which the
// domain reports through its own errors.
var ErrVersionConflict = errors.New("state version conflict")

// StateStore persists draft state with optimistic concurrency. Versions are
// opaque; an empty version on Save means "create, fail if present".
type StateStore interface {
	// Load returns the latest state and its version, or a nil state when
	// none exists.
	Load(ctx context.Context, matchID string) (*domain.GameState, string, error)

	// Save writes state conditionally on version and returns the new
	// version. Returns ErrVersionConflict when the stored version moved.
	Save(ctx context.Context, matchID string, state *domain.GameState, version string) (string, error)
}
