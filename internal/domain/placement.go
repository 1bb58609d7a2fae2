package domain

import (
	"sort"

	"github.com/samber/lo"
)

// placementLadder is the reward for first, second and third placement.
// Everything past the ladder is worth nothing.
var placementLadder = []int{8, 5, 2}

// PlacementAwards converts the recorded placement events into per-player
// bonus points. Events are grouped by round and walked in ascending round
// order; every player in a group receives the same ladder entry, and the
// group consumes as many ladder slots as it has members, so a tie for first
// skips second place entirely. Players without an event score 0.
//
// The full event list is re-ranked on every call: events arrive in any
// order, and a lower-round event may be appended after a higher one.
func PlacementAwards(events []PlacementEvent) map[string]int {
	awards := make(map[string]int, len(events))

	byRound := lo.GroupBy(events, func(ev PlacementEvent) int { return ev.Round })
	rounds := lo.Keys(byRound)
	sort.Ints(rounds)

	slot := 0
	for _, round := range rounds {
		value := 0
		if slot < len(placementLadder) {
			value = placementLadder[slot]
		}
		group := byRound[round]
		for _, ev := range group {
			awards[ev.UserID] = value
		}
		slot += len(group)
	}
	return awards
}
