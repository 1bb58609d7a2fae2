package bot

import (
	"errors"

	"elemdraft/internal/domain"

	"lukechampine.com/frand"
)

var errEmptyHand = errors.New("no cards left to pick")

// GreedyBot picks the card that maximizes its own immediate score gain,
// evaluating every hand position against the current scoring rules.
// Neighbors' revealed cards are taken as-is; the spelling bonus is ignored
// because it cannot be influenced by a pick.
type GreedyBot struct{}

func (b *GreedyBot) ChooseMove(state *domain.GameState, player *domain.Player) (Move, error) {
	if len(player.Hand) == 0 {
		return Move{}, errEmptyHand
	}

	left, right := state.Neighbors(player.UserID)
	active := state.RadioactiveRuleActive()
	base := domain.ScorePlayer(player.Drafted, left.Drafted, right.Drafted, 0, active).Total

	bestPos, bestGain := 0, -1<<31
	candidate := make([]int, 0, len(player.Drafted)+1)
	for pos, card := range player.Hand {
		candidate = append(candidate[:0], player.Drafted...)
		candidate = append(candidate, card)
		gain := domain.ScorePlayer(candidate, left.Drafted, right.Drafted, 0, active).Total - base
		if gain > bestGain {
			bestPos, bestGain = pos, gain
		}
	}
	return Move{HandPos: bestPos}, nil
}

// RandomBot picks uniformly at random. It is the easy difficulty and the
// fallback when no identity is configured.
type RandomBot struct {
	rng *frand.RNG
}

func (b *RandomBot) ChooseMove(state *domain.GameState, player *domain.Player) (Move, error) {
	if len(player.Hand) == 0 {
		return Move{}, errEmptyHand
	}
	if b.rng == nil {
		b.rng = frand.New()
	}
	return Move{HandPos: b.rng.Intn(len(player.Hand))}, nil
}
