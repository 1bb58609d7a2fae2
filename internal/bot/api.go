package bot

import "elemdraft/internal/domain"

// Move is a bot's chosen draft action for the current round.
type Move struct {
	HandPos int
}

// Brain decides a move from the shared draft state and the bot's own player
// record. Implementations must not mutate the state.
type Brain interface {
	ChooseMove(state *domain.GameState, player *domain.Player) (Move, error)
}
