package domain

import (
	"sort"

	"github.com/samber/lo"
)

// ScoreBreakdown is the per-rule result for one player.
type ScoreBreakdown struct {
	Sequence      int `json:"sequence"`
	Mass          int `json:"mass"`
	Spelling      int `json:"spelling"`
	Radioactivity int `json:"radioactivity"`
	Ionization    int `json:"ionization"`
	Family        int `json:"family"`
	Total         int `json:"total"`
}

// Standing is one row of the final ranking.
type Standing struct {
	UserID    string         `json:"user_id"`
	Seat      int            `json:"seat"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// SequenceScore finds the longest run of consecutive atomic numbers in the
// drafted set, clamps its length to [2,4] and squares it. Any non-empty set
// scores at least 4: the rules give every run a minimum length of 2, even
// when no two cards are actually consecutive. An empty set scores 0.
func SequenceScore(drafted []int) int {
	if len(drafted) == 0 {
		return 0
	}
	nums := append([]int(nil), drafted...)
	sort.Ints(nums)

	longest, run := 1, 1
	for i := 1; i < len(nums); i++ {
		if nums[i] == nums[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	if longest < 2 {
		longest = 2
	}
	if longest > 4 {
		longest = 4
	}
	return longest * longest
}

// MassScore compares the player's summed mass groups against each neighbor
// independently: +2 per neighbor strictly exceeded, -2 per neighbor that
// strictly exceeds the player, 0 on a tie. With two players both neighbor
// references resolve to the same opponent and the swing doubles.
func MassScore(player, left, right []int) int {
	mine := massSum(player)
	score := 0
	for _, theirs := range []int{massSum(left), massSum(right)} {
		switch {
		case mine > theirs:
			score += 2
		case mine < theirs:
			score -= 2
		}
	}
	return score
}

func massSum(cards []int) int {
	sum := 0
	for _, n := range cards {
		sum += MustCard(n).MassGroup
	}
	return sum
}

// RadioactivityScore rewards hoarding radioactive cards and punishes holding
// exactly one. The rule only applies to full-catalog decks; smaller games
// pass active=false and score 0.
func RadioactivityScore(drafted []int, active bool) int {
	if !active {
		return 0
	}
	count := lo.CountBy(drafted, func(n int) bool { return MustCard(n).Radioactive })
	switch {
	case count >= 2:
		return 7
	case count == 1:
		return -3
	default:
		return 0
	}
}

// IonizationScore pairs positive-ion cards with negative-ion cards of the
// same charge magnitude, 5 points per pair. Pairing is over counts per
// magnitude; a card carries at most one charge, so it can never sit on both
// sides of a pair.
func IonizationScore(drafted []int) int {
	posCounts := map[int]int{}
	negCounts := map[int]int{}
	for _, n := range drafted {
		c := MustCard(n)
		if c.PlusCharge > 0 {
			posCounts[c.PlusCharge]++
		}
		if c.MinusCharge > 0 {
			negCounts[c.MinusCharge]++
		}
	}

	pairs := 0
	for charge, pos := range posCounts {
		neg := negCounts[charge]
		if neg < pos {
			pairs += neg
		} else {
			pairs += pos
		}
	}
	return pairs * 5
}

// familyLadder maps effective collection size to points.
var familyLadder = map[int]int{2: 1, 3: 3, 4: 6, 5: 10, 6: 15}

// FamilyScore takes the larger of (distinct families present, size of the
// largest family), clamps it to 6 and looks it up in the ladder. Effective
// sizes of 0 or 1 score nothing.
func FamilyScore(drafted []int) int {
	counts := map[Family]int{}
	for _, n := range drafted {
		counts[MustCard(n).Family]++
	}

	distinct := len(counts)
	largest := 0
	for _, c := range counts {
		if c > largest {
			largest = c
		}
	}

	effective := distinct
	if largest > effective {
		effective = largest
	}
	if effective > 6 {
		effective = 6
	}
	return familyLadder[effective]
}

// ScorePlayer computes the full breakdown for one player given both
// neighbors' drafted sets, the player's placement award, and whether the
// radioactivity rule is in force.
func ScorePlayer(drafted, left, right []int, spelling int, radioactive bool) ScoreBreakdown {
	b := ScoreBreakdown{
		Sequence:      SequenceScore(drafted),
		Mass:          MassScore(drafted, left, right),
		Spelling:      spelling,
		Radioactivity: RadioactivityScore(drafted, radioactive),
		Ionization:    IonizationScore(drafted),
		Family:        FamilyScore(drafted),
	}
	b.Total = b.Sequence + b.Mass + b.Spelling + b.Radioactivity + b.Ionization + b.Family
	return b
}

// ComputeScores scores every player in the draft. It is a pure function of
// the drafted sets so far, so it can also back a live leaderboard before the
// draft finishes.
func ComputeScores(s *GameState) map[string]ScoreBreakdown {
	awards := PlacementAwards(s.Placements)
	active := s.RadioactiveRuleActive()

	out := make(map[string]ScoreBreakdown, len(s.Players))
	for userID, pl := range s.Players {
		left, right := s.Neighbors(userID)
		out[userID] = ScorePlayer(pl.Drafted, left.Drafted, right.Drafted, awards[userID], active)
	}
	return out
}

// Standings ranks all players: highest total first, ties broken by the
// single highest atomic number among a player's drafted cards.
func Standings(s *GameState) []Standing {
	scores := ComputeScores(s)

	rows := make([]Standing, 0, len(s.Seats))
	for _, userID := range s.Seats {
		pl := s.Players[userID]
		rows = append(rows, Standing{UserID: userID, Seat: pl.Seat, Breakdown: scores[userID]})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Breakdown.Total != rows[j].Breakdown.Total {
			return rows[i].Breakdown.Total > rows[j].Breakdown.Total
		}
		return highestCard(s.Players[rows[i].UserID].Drafted) > highestCard(s.Players[rows[j].UserID].Drafted)
	})
	return rows
}

func highestCard(drafted []int) int {
	if len(drafted) == 0 {
		return 0
	}
	return lo.Max(drafted)
}
