package app

// Seat limits for a draft. Keep these centralized so tests or local runs can
// adjust the rule without touching multiple call sites.
const (
	MinPlayersToStartDraft = 2
	MaxPlayersPerDraft     = 10
)

// MaxWordLength bounds spelling attempts before they reach the backtracking
// search; the search is exponential in word length.
const MaxWordLength = 12
