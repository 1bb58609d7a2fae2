package app

import "elemdraft/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventPlayerJoined   EventKind = "player_joined"
	EventPlayerLeft     EventKind = "player_left"
	EventDraftStarted   EventKind = "draft_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventSelectionMade  EventKind = "selection_made"
	EventHandsRotated   EventKind = "hands_rotated"
	EventSpellingPlaced EventKind = "spelling_placed"
	EventDraftEnded     EventKind = "draft_ended"
	EventScoresComputed EventKind = "scores_computed"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
	Owner  bool   `json:"owner"`
}

type PlayerLeftPayload struct {
	UserID string `json:"user_id"`
}

type DraftStartedPayload struct {
	Seats    []string `json:"seats"`
	DeckSize int      `json:"deck_size"`
	HandSize int      `json:"hand_size"`
}

type HandDealtPayload struct {
	UserID string `json:"user_id"`
	Hand   []int  `json:"hand"`
}

// SelectionMadePayload deliberately omits the chosen card: a pick stays
// private until its round has closed.
type SelectionMadePayload struct {
	UserID string `json:"user_id"`
	Round  int    `json:"round"`
}

type HandsRotatedPayload struct {
	Round int `json:"round"`
}

type SpellingPlacedPayload struct {
	UserID string `json:"user_id"`
	Word   string `json:"word"`
	Round  int    `json:"round"`
}

type DraftEndedPayload struct {
	Rounds int `json:"rounds"`
}

type ScoresComputedPayload struct {
	Standings []domain.Standing `json:"standings"`
}
