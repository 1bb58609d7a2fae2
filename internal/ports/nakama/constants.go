package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameElementDraft is the authoritative match handler name registered with Nakama.
	MatchNameElementDraft = "elemdraft_match"

	// StorageCollectionDrafts holds the versioned draft-state checkpoints.
	StorageCollectionDrafts = "draft_states"
	// StorageCollectionResults holds per-player final standings.
	StorageCollectionResults = "draft_results"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartDraft      int64 = 1
	OpSubmitSelection int64 = 2
	OpSpellWord       int64 = 3

	// Server -> Client events
	OpPlayerJoined   int64 = 101
	OpPlayerLeft     int64 = 102
	OpDraftStarted   int64 = 103
	OpHandDealt      int64 = 104 // send privately
	OpSelectionMade  int64 = 105
	OpHandsRotated   int64 = 106
	OpSpellingPlaced int64 = 107
	OpDraftEnded     int64 = 108
	OpScoresComputed int64 = 109

	OpError int64 = 400
)
