package domain

// Family is the categorical group a card belongs to.
type Family string

const (
	FamilyAlkali         Family = "alkali"
	FamilyAlkalineEarth  Family = "alkaline-earth"
	FamilyTransition     Family = "transition"
	FamilyPostTransition Family = "post-transition"
	FamilyMetalloid      Family = "metalloid"
	FamilyNonmetal       Family = "nonmetal"
	FamilyHalogen        Family = "halogen"
	FamilyNobleGas       Family = "noble-gas"
	FamilyLanthanide     Family = "lanthanide"
	FamilyActinide       Family = "actinide"
)

// Card is a single element card. Cards are immutable reference data keyed by
// atomic number; game state stores atomic numbers and resolves through the
// catalog.
type Card struct {
	AtomicNumber int    // 1..CatalogSize, unique
	Symbol       string // 1-2 letter token
	MassGroup    int    // period, 1..7
	Family       Family
	Radioactive  bool
	PlusCharge   int // positive-ion charge magnitude, 0 = none
	MinusCharge  int // negative-ion charge magnitude, 0 = none
}

// CatalogSize is the number of cards in the fixed catalog.
const CatalogSize = 103

var cardsByNumber map[int]Card

func init() {
	cardsByNumber = make(map[int]Card, len(catalog))
	for _, c := range catalog {
		cardsByNumber[c.AtomicNumber] = c
	}
}

// CardByNumber looks up a card in the catalog by atomic number.
func CardByNumber(n int) (Card, bool) {
	c, ok := cardsByNumber[n]
	return c, ok
}

// MustCard looks up a card known to exist. It panics on an unknown atomic
// number, which can only happen on corrupted state.
func MustCard(n int) Card {
	c, ok := cardsByNumber[n]
	if !ok {
		panic("unknown atomic number in game state")
	}
	return c
}

// CardsUpTo returns all catalog cards with atomic number <= ceiling, in
// ascending order.
func CardsUpTo(ceiling int) []Card {
	out := make([]Card, 0, ceiling)
	for _, c := range catalog {
		if c.AtomicNumber <= ceiling {
			out = append(out, c)
		}
	}
	return out
}
