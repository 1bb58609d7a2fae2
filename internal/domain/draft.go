package domain

import "errors"

// Decline reasons for draft actions. These are clean outcomes, not faults:
// the state is untouched whenever one is returned.
var (
	ErrUnknownPlayer      = errors.New("player not in this draft")
	ErrNotDrafting        = errors.New("draft not accepting selections")
	ErrPositionOutOfRange = errors.New("hand position out of range")
	ErrAlreadySubmitted   = errors.New("selection already submitted this round")
)

// NewDraft builds the initial drafting state from dealt hands. seats lists
// user IDs in seating order and must match hands by index.
func NewDraft(seats []string, hands [][]int, cfg DeckConfig) *GameState {
	players := make(map[string]*Player, len(seats))
	for i, userID := range seats {
		players[userID] = &Player{
			UserID:  userID,
			Seat:    i,
			Hand:    hands[i],
			Drafted: make([]int, 0, len(hands[i])),
		}
	}
	return &GameState{
		Phase:    PhaseDrafting,
		Players:  players,
		Seats:    append([]string(nil), seats...),
		Round:    1,
		DeckSize: cfg.DeckSize,
		HandSize: cfg.HandSize,
	}
}

// SubmitSelection applies one player's pick for the current round: the card
// at handPos moves from their hand to the end of their drafted set. The
// round closes once every player holds at least Round drafted cards, which
// is re-checked after every accepted submission because arrivals can come in
// any order. On close, hands rotate to the seating successor and the round
// counter advances, or the draft transitions to scored when all hands are
// empty.
//
// A decline leaves the state exactly as it was.
func SubmitSelection(s *GameState, userID string, handPos int) error {
	if s.Phase != PhaseDrafting {
		return ErrNotDrafting
	}
	pl, ok := s.Players[userID]
	if !ok {
		return ErrUnknownPlayer
	}
	if len(pl.Drafted) >= s.Round {
		return ErrAlreadySubmitted
	}
	if handPos < 0 || handPos >= len(pl.Hand) {
		return ErrPositionOutOfRange
	}

	card := pl.Hand[handPos]
	pl.Hand = append(pl.Hand[:handPos], pl.Hand[handPos+1:]...)
	pl.Drafted = append(pl.Drafted, card)

	if roundComplete(s) {
		if s.AllHandsEmpty() {
			s.Phase = PhaseScored
		} else {
			rotateHands(s)
			s.Round++
		}
	}
	return nil
}

// roundComplete reports whether every player has picked for the current
// round.
func roundComplete(s *GameState) bool {
	for _, pl := range s.Players {
		if len(pl.Drafted) < s.Round {
			return false
		}
	}
	return true
}

// rotateHands passes each hand to its seating predecessor: seat i takes over
// the hand held at seat (i+1) mod N. A hand never returns to a player until
// it has circulated the whole table.
func rotateHands(s *GameState) {
	n := len(s.Seats)
	prev := make([][]int, n)
	for i := 0; i < n; i++ {
		prev[i] = s.PlayerBySeat(i).Hand
	}
	for i := 0; i < n; i++ {
		s.PlayerBySeat(i).Hand = prev[(i+1)%n]
	}
}
