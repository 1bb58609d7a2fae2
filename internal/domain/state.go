package domain

// Phase represents the lifecycle stage of a draft.
type Phase string

const (
	// PhaseDrafting is the active state where selections are accepted.
	PhaseDrafting Phase = "drafting"
	// PhaseScored is the state after every hand has been emptied.
	PhaseScored Phase = "scored"
)

// Player holds state for a participant in the draft.
type Player struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"` // 0-based, fixed for the whole game

	// Hand is the cards (atomic numbers) not yet drafted. Order carries no
	// gameplay meaning but positions are stable between rotations so a
	// selection can address a card by index.
	Hand []int `json:"hand"`

	// Drafted is the cards picked so far, in draft order. Index i was picked
	// in round i+1.
	Drafted []int `json:"drafted"`
}

// PlacementEvent records the first round in which a player completed the
// symbol-spelling bonus. At most one event exists per player.
type PlacementEvent struct {
	UserID string `json:"user_id"`
	Round  int    `json:"round"`
}

// GameState holds the authoritative state for one draft. It is treated as a
// value: operations take the latest snapshot and return it mutated, and the
// storage boundary owns synchronization between concurrent writers.
type GameState struct {
	Phase   Phase              `json:"phase"`
	Players map[string]*Player `json:"players"`
	Seats   []string           `json:"seats"` // seat index -> userID
	Round   int                `json:"round"` // 1-based

	DeckSize int `json:"deck_size"`
	HandSize int `json:"hand_size"`

	// Placements is append-only; awards are recomputed from the full list.
	Placements []PlacementEvent `json:"placements"`
}

// PlayerBySeat returns the player at the given seat index, or nil.
func (s *GameState) PlayerBySeat(seat int) *Player {
	if seat < 0 || seat >= len(s.Seats) {
		return nil
	}
	return s.Players[s.Seats[seat]]
}

// Neighbors returns the left and right seating neighbors of a player. In a
// 2-player game both resolve to the same opponent.
func (s *GameState) Neighbors(userID string) (left, right *Player) {
	pl, ok := s.Players[userID]
	if !ok {
		return nil, nil
	}
	n := len(s.Seats)
	left = s.PlayerBySeat((pl.Seat + 1) % n)
	right = s.PlayerBySeat((pl.Seat - 1 + n) % n)
	return left, right
}

// Revealed returns the drafted cards of a player that are visible to
// opponents: everything picked in rounds that have fully elapsed. The
// current round's pick, if made, stays private until the round closes.
func (s *GameState) Revealed(userID string) []int {
	pl, ok := s.Players[userID]
	if !ok {
		return nil
	}
	visible := s.Round - 1
	if s.Phase == PhaseScored {
		visible = len(pl.Drafted)
	}
	if visible > len(pl.Drafted) {
		visible = len(pl.Drafted)
	}
	return pl.Drafted[:visible]
}

// HasPlacement reports whether a player already holds a placement event.
func (s *GameState) HasPlacement(userID string) bool {
	for _, ev := range s.Placements {
		if ev.UserID == userID {
			return true
		}
	}
	return false
}

// AllHandsEmpty reports whether every player has drafted out their hand.
func (s *GameState) AllHandsEmpty() bool {
	for _, pl := range s.Players {
		if len(pl.Hand) > 0 {
			return false
		}
	}
	return true
}

// RadioactiveRuleActive reports whether the radioactivity rule applies; it
// only does when the full catalog was dealt.
func (s *GameState) RadioactiveRuleActive() bool {
	return s.DeckSize == CatalogSize
}
