package app

import (
	"errors"
	"unicode"

	"elemdraft/internal/domain"

	"lukechampine.com/frand"
)

// Service contains draft use-cases operating on domain state.
type Service struct {
	rng *frand.RNG
}

// NewService constructs a Service with the provided rng or a fresh default.
func NewService(rng *frand.RNG) *Service {
	if rng == nil {
		rng = frand.New()
	}
	return &Service{rng: rng}
}

var (
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrTooManyPlayers = errors.New("too many players to start")
	ErrInvalidWord    = errors.New("word is empty, too long, or not letters")
	ErrAlreadyPlaced  = errors.New("player already holds a placement")
	ErrCannotSpell    = errors.New("word not spellable from revealed cards")
)

// StartDraft deals hands for the given seat order and returns the initial
// state. Hands go out as private events; the start announcement is
// broadcast.
func (s *Service) StartDraft(seats []string) (*domain.GameState, []Event, error) {
	if len(seats) < MinPlayersToStartDraft {
		return nil, nil, ErrTooFewPlayers
	}
	if len(seats) > MaxPlayersPerDraft {
		return nil, nil, ErrTooManyPlayers
	}

	hands, cfg := domain.Deal(len(seats), s.rng)
	state := domain.NewDraft(seats, hands, cfg)

	events := make([]Event, 0, len(seats)+1)
	events = append(events, Event{
		Kind: EventDraftStarted,
		Payload: DraftStartedPayload{
			Seats:    state.Seats,
			DeckSize: cfg.DeckSize,
			HandSize: cfg.HandSize,
		},
	})
	for _, userID := range seats {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				UserID: userID,
				Hand:   state.Players[userID].Hand,
			},
			Recipients: []string{userID},
		})
	}
	return state, events, nil
}

// SubmitSelection applies one player's pick and emits the resulting events.
// A rotation additionally re-deals every player's (passed) hand privately; a
// finished draft emits the end-of-draft announcement.
func (s *Service) SubmitSelection(state *domain.GameState, userID string, handPos int) ([]Event, error) {
	roundBefore := state.Round

	if err := domain.SubmitSelection(state, userID, handPos); err != nil {
		return nil, err
	}

	events := []Event{
		{
			Kind:    EventSelectionMade,
			Payload: SelectionMadePayload{UserID: userID, Round: roundBefore},
		},
	}

	switch {
	case state.Phase == domain.PhaseScored:
		events = append(events, Event{
			Kind:    EventDraftEnded,
			Payload: DraftEndedPayload{Rounds: state.Round},
		})
	case state.Round > roundBefore:
		events = append(events, Event{
			Kind:    EventHandsRotated,
			Payload: HandsRotatedPayload{Round: state.Round},
		})
		for _, uid := range state.Seats {
			events = append(events, Event{
				Kind: EventHandDealt,
				Payload: HandDealtPayload{
					UserID: uid,
					Hand:   state.Players[uid].Hand,
				},
				Recipients: []string{uid},
			})
		}
	}
	return events, nil
}

// RecordSpellingAttempt validates and records a symbol-spelling bonus claim.
// Only the player's revealed cards may spell the word, a player gets at most
// one placement for the whole game, and a decline leaves the state
// untouched.
func (s *Service) RecordSpellingAttempt(state *domain.GameState, userID string, word string) ([]Event, error) {
	if state.Phase != domain.PhaseDrafting {
		return nil, domain.ErrNotDrafting
	}
	if _, ok := state.Players[userID]; !ok {
		return nil, domain.ErrUnknownPlayer
	}
	if !validWord(word) {
		return nil, ErrInvalidWord
	}
	if state.HasPlacement(userID) {
		return nil, ErrAlreadyPlaced
	}
	if !domain.CanSpellWord(domain.SymbolsOf(state.Revealed(userID)), word) {
		return nil, ErrCannotSpell
	}

	state.Placements = append(state.Placements, domain.PlacementEvent{
		UserID: userID,
		Round:  state.Round,
	})

	return []Event{
		{
			Kind:    EventSpellingPlaced,
			Payload: SpellingPlacedPayload{UserID: userID, Word: word, Round: state.Round},
		},
	}, nil
}

// ComputeScores produces the final standings and the broadcast event. It is
// pure over the drafted cards so far, so callers may also use it for a live
// leaderboard before the draft completes.
func (s *Service) ComputeScores(state *domain.GameState) ([]domain.Standing, []Event) {
	standings := domain.Standings(state)
	return standings, []Event{
		{
			Kind:    EventScoresComputed,
			Payload: ScoresComputedPayload{Standings: standings},
		},
	}
}

func validWord(word string) bool {
	if len(word) == 0 || len(word) > MaxWordLength {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
