package domain

import (
	"reflect"
	"testing"

	"lukechampine.com/frand"
)

// testDraft builds a small deterministic draft: each seat's hand is an
// explicit card list.
func testDraft(hands ...[]int) *GameState {
	seats := make([]string, len(hands))
	copied := make([][]int, len(hands))
	for i := range hands {
		seats[i] = "u" + string(rune('0'+i))
		copied[i] = append([]int(nil), hands[i]...)
	}
	return NewDraft(seats, copied, DeckConfig{DeckSize: 36, HandSize: len(hands[0])})
}

func TestSubmitSelectionDeclines(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		pos     int
		expected error
	}{
		{name: "Unknown player", userID: "ghost", pos: 0, expected: ErrUnknownPlayer},
		{name: "Negative position", userID: "u0", pos: -1, expected: ErrPositionOutOfRange},
		{name: "Position past hand", userID: "u0", pos: 2, expected: ErrPositionOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testDraft([]int{1, 2}, []int{3, 4})
			before := snapshot(s)
			if err := SubmitSelection(s, tt.userID, tt.pos); err != tt.expected {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
			if !reflect.DeepEqual(before, snapshot(s)) {
				t.Error("declined selection mutated state")
			}
		})
	}
}

func TestSubmitSelectionRejectsSecondPickInRound(t *testing.T) {
	s := testDraft([]int{1, 2}, []int{3, 4})
	if err := SubmitSelection(s, "u0", 0); err != nil {
		t.Fatal(err)
	}
	if err := SubmitSelection(s, "u0", 0); err != ErrAlreadySubmitted {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestRoundCompletionRotatesHands(t *testing.T) {
	s := testDraft([]int{1, 2}, []int{3, 4}, []int{5, 6})

	for _, uid := range []string{"u0", "u1", "u2"} {
		if err := SubmitSelection(s, uid, 0); err != nil {
			t.Fatal(err)
		}
	}

	if s.Round != 2 {
		t.Fatalf("expected round 2, got %d", s.Round)
	}
	// Seat i now holds the remainder of seat (i+1)'s hand.
	if got := s.Players["u0"].Hand; !reflect.DeepEqual(got, []int{4}) {
		t.Errorf("u0 should hold u1's leftover hand, got %v", got)
	}
	if got := s.Players["u1"].Hand; !reflect.DeepEqual(got, []int{6}) {
		t.Errorf("u1 should hold u2's leftover hand, got %v", got)
	}
	if got := s.Players["u2"].Hand; !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("u2 should hold u0's leftover hand, got %v", got)
	}
}

func TestRotationPreservesCardMultiset(t *testing.T) {
	s := testDraft([]int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})

	for round := 0; round < 2; round++ {
		for _, uid := range s.Seats {
			if err := SubmitSelection(s, uid, 0); err != nil {
				t.Fatal(err)
			}
		}
	}

	held := map[int]int{}
	for _, pl := range s.Players {
		for _, n := range pl.Hand {
			held[n]++
		}
		for _, n := range pl.Drafted {
			held[n]++
		}
	}
	for n := 1; n <= 9; n++ {
		if held[n] != 1 {
			t.Errorf("card %d held %d times after rotations", n, held[n])
		}
	}
}

func TestRevealedLagsCurrentRound(t *testing.T) {
	s := testDraft([]int{1, 2, 3}, []int{4, 5, 6})

	if err := SubmitSelection(s, "u0", 0); err != nil {
		t.Fatal(err)
	}
	// Round 1 is still open: u0's pick stays private.
	if got := s.Revealed("u0"); len(got) != 0 {
		t.Fatalf("expected no revealed cards mid-round, got %v", got)
	}

	if err := SubmitSelection(s, "u1", 0); err != nil {
		t.Fatal(err)
	}
	// Round 2: exactly the round-1 pick is visible.
	if got := s.Revealed("u0"); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("expected [1] revealed, got %v", got)
	}
}

// TestSubmissionOrderCommutes drives a full draft twice with different
// arrival orders within each round and expects identical end states.
func TestSubmissionOrderCommutes(t *testing.T) {
	deal := func() *GameState {
		hands, cfg := Deal(4, frand.NewCustom(make([]byte, 32), 1024, 12))
		return NewDraft([]string{"u0", "u1", "u2", "u3"}, hands, cfg)
	}

	seatOrder := deal()
	for seatOrder.Phase == PhaseDrafting {
		for _, uid := range seatOrder.Seats {
			if err := SubmitSelection(seatOrder, uid, 0); err != nil {
				t.Fatal(err)
			}
		}
	}

	scrambled := deal()
	orders := [][]string{
		{"u3", "u1", "u0", "u2"},
		{"u2", "u3", "u1", "u0"},
		{"u1", "u0", "u3", "u2"},
	}
	round := 0
	for scrambled.Phase == PhaseDrafting {
		for _, uid := range orders[round%len(orders)] {
			if err := SubmitSelection(scrambled, uid, 0); err != nil {
				t.Fatal(err)
			}
		}
		round++
	}

	if !reflect.DeepEqual(snapshot(seatOrder), snapshot(scrambled)) {
		t.Error("arrival order changed the resulting draft state")
	}
}

func TestTwoPlayerDraftRunsToCompletion(t *testing.T) {
	hands, cfg := Deal(2, frand.New())
	s := NewDraft([]string{"alice", "bob"}, hands, cfg)

	if cfg.DeckSize != 36 || cfg.HandSize != 15 {
		t.Fatalf("unexpected 2-player config %+v", cfg)
	}

	for s.Phase == PhaseDrafting {
		for _, uid := range s.Seats {
			if err := SubmitSelection(s, uid, 0); err != nil {
				t.Fatal(err)
			}
		}
	}

	if s.Round != cfg.HandSize {
		t.Errorf("final round %d, want %d", s.Round, cfg.HandSize)
	}
	total := 0
	for _, pl := range s.Players {
		if len(pl.Hand) != 0 {
			t.Errorf("%s still holds %d cards", pl.UserID, len(pl.Hand))
		}
		if len(pl.Drafted) != cfg.HandSize {
			t.Errorf("%s drafted %d cards, want %d", pl.UserID, len(pl.Drafted), cfg.HandSize)
		}
		total += len(pl.Drafted)
	}
	if total != 2*cfg.HandSize {
		t.Errorf("total drafted %d, want %d", total, 2*cfg.HandSize)
	}
	if s.RadioactiveRuleActive() {
		t.Error("radioactivity rule must be off for a 36-card deck")
	}
}

// snapshot flattens the parts of state that matter for equality checks.
type stateSnapshot struct {
	Phase   Phase
	Round   int
	Hands   map[string][]int
	Drafted map[string][]int
}

func snapshot(s *GameState) stateSnapshot {
	snap := stateSnapshot{
		Phase:   s.Phase,
		Round:   s.Round,
		Hands:   map[string][]int{},
		Drafted: map[string][]int{},
	}
	for uid, pl := range s.Players {
		snap.Hands[uid] = append([]int(nil), pl.Hand...)
		snap.Drafted[uid] = append([]int(nil), pl.Drafted...)
	}
	return snap
}
