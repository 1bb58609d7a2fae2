package domain

import "lukechampine.com/frand"

// Deal shuffles the deck for the given player count and partitions it into
// contiguous hands, one per seat in order. Cards beyond players*handSize are
// set aside and never enter play. rng may be nil to use a fresh source.
func Deal(players int, rng *frand.RNG) ([][]int, DeckConfig) {
	if rng == nil {
		rng = frand.New()
	}
	cfg := ConfigForPlayers(players)

	deck := make([]int, 0, cfg.DeckSize)
	for _, c := range CardsUpTo(cfg.DeckSize) {
		deck = append(deck, c.AtomicNumber)
	}

	// Fisher-Yates from the end; every permutation equally likely.
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	hands := make([][]int, players)
	for i := 0; i < players; i++ {
		hand := make([]int, cfg.HandSize)
		copy(hand, deck[i*cfg.HandSize:(i+1)*cfg.HandSize])
		hands[i] = hand
	}
	return hands, cfg
}
