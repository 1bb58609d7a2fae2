package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse tells the client which match to join and whether it was
// freshly created for them.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// rpcQuickMatch finds an open lobby or creates a new one. Drafting matches
// never show up: their label advertises phase "drafting".
func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	query := "+label.game:elemdraft +label.phase:lobby +label.open:>=1"
	limit := 1
	authoritative := true
	minSize := 0
	maxSize := 10

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcQuickMatch: MatchList failed: %v", err)
		return "", runtime.NewError("failed to list matches", 13)
	}

	response := QuickMatchResponse{}
	if len(matches) > 0 {
		response.MatchID = matches[0].GetMatchId()
	} else {
		matchID, err := nk.MatchCreate(ctx, MatchNameElementDraft, nil)
		if err != nil {
			logger.Error("rpcQuickMatch: MatchCreate failed: %v", err)
			return "", runtime.NewError("failed to create match", 13)
		}
		response.MatchID = matchID
		response.IsNew = true
	}

	out, err := json.Marshal(response)
	if err != nil {
		return "", runtime.NewError("failed to marshal response", 13)
	}
	return string(out), nil
}
