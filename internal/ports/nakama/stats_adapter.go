package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"elemdraft/internal/bot"
	"elemdraft/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// StatsAdapter implements ports.StatsRecorder with owned storage objects,
// one per human player per match.
type StatsAdapter struct {
	nk runtime.NakamaModule
}

// NewStatsAdapter creates a new stats adapter.
func NewStatsAdapter(nk runtime.NakamaModule) *StatsAdapter {
	return &StatsAdapter{nk: nk}
}

// RecordResults stores each player's final line under their own user id so
// clients can list their match history. Bot results are not recorded.
func (a *StatsAdapter) RecordResults(ctx context.Context, matchID string, results []ports.PlayerResult) error {
	writes := make([]*runtime.StorageWrite, 0, len(results))
	for _, r := range results {
		if bot.IsBot(r.UserID) {
			continue
		}
		value, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal result for %s: %w", r.UserID, err)
		}
		writes = append(writes, &runtime.StorageWrite{
			Collection:      StorageCollectionResults,
			Key:             matchID,
			UserID:          r.UserID,
			Value:           string(value),
			PermissionRead:  1, // owner only
			PermissionWrite: 0,
		})
	}
	if len(writes) == 0 {
		return nil
	}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
