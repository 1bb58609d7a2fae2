package domain

// DeckConfig pairs the atomic-number ceiling of the deck with the number of
// cards dealt to each player.
type DeckConfig struct {
	DeckSize int
	HandSize int
}

// deckTable maps player count to deck configuration. Every row satisfies
// HandSize * players <= DeckSize; leftover cards are set aside at deal time.
var deckTable = map[int]DeckConfig{
	2:  {DeckSize: 36, HandSize: 15},
	3:  {DeckSize: 48, HandSize: 14},
	4:  {DeckSize: 60, HandSize: 14},
	5:  {DeckSize: 75, HandSize: 14},
	6:  {DeckSize: 90, HandSize: 14},
	7:  {DeckSize: 103, HandSize: 14},
	8:  {DeckSize: 103, HandSize: 12},
	9:  {DeckSize: 103, HandSize: 11},
	10: {DeckSize: 103, HandSize: 10},
}

// ConfigForPlayers returns the deck configuration for a player count.
// Counts outside the table fall back to the full-deck, 10-card row.
func ConfigForPlayers(players int) DeckConfig {
	if cfg, ok := deckTable[players]; ok {
		return cfg
	}
	return DeckConfig{DeckSize: CatalogSize, HandSize: 10}
}
