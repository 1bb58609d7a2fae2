package ports

import (
	"context"

	"elemdraft/internal/domain"
)

// PlayerResult is one player's final line for the record books.
type PlayerResult struct {
	UserID    string                `json:"user_id"`
	Rank      int                   `json:"rank"` // 1-based
	Breakdown domain.ScoreBreakdown `json:"breakdown"`
}

// StatsRecorder stores final standings after a draft has been scored.
// Recording is best-effort from the match's point of view; a failure never
// rolls back the game.
type StatsRecorder interface {
	RecordResults(ctx context.Context, matchID string, results []PlayerResult) error
}
