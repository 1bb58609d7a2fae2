package bot

import (
	"errors"

	"elemdraft/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

var errNotSeated = errors.New("agent is not part of this draft")

// Play asks the agent to pick a card for the current round.
func (a *Agent) Play(state *domain.GameState) (Move, error) {
	player, ok := state.Players[a.ID]
	if !ok {
		return Move{}, errNotSeated
	}
	return a.Strategy.ChooseMove(state, player)
}
