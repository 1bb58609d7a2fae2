package nakama

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"elemdraft/internal/domain"
	"elemdraft/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// StorageAdapter implements ports.StateStore on Nakama's storage engine,
// using its per-object version for the conditional write.
type StorageAdapter struct {
	nk runtime.NakamaModule
}

// NewStorageAdapter creates a new state store adapter.
func NewStorageAdapter(nk runtime.NakamaModule) *StorageAdapter {
	return &StorageAdapter{nk: nk}
}

// Load reads the latest checkpoint for a match. A missing object is not an
// error; it returns a nil state with an empty version.
func (a *StorageAdapter) Load(ctx context.Context, matchID string) (*domain.GameState, string, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: StorageCollectionDrafts, Key: matchID},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to read draft state: %w", err)
	}
	if len(objects) == 0 {
		return nil, "", nil
	}

	var state domain.GameState
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &state); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal draft state: %w", err)
	}
	return &state, objects[0].GetVersion(), nil
}

// Save writes the state conditionally on the version read earlier. An empty
// version means create-only.
func (a *StorageAdapter) Save(ctx context.Context, matchID string, state *domain.GameState, version string) (string, error) {
	value, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to marshal draft state: %w", err)
	}

	if version == "" {
		version = "*" // Nakama's create-only sentinel.
	}

	acks, err := a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection: StorageCollectionDrafts,
			Key:        matchID,
			Value:      string(value),
			Version:    version,
		},
	})
	if err != nil {
		// Nakama reports an OCC failure as a generic rejection mentioning
		// the version check; surface it as the retryable conflict outcome.
		if strings.Contains(err.Error(), "version") {
			return "", fmt.Errorf("%w: %v", ports.ErrVersionConflict, err)
		}
		return "", fmt.Errorf("failed to write draft state: %w", err)
	}
	if len(acks) == 0 {
		return "", fmt.Errorf("draft state write returned no ack")
	}
	return acks[0].GetVersion(), nil
}
