// Command draftsim runs headless self-play drafts between bot strategies and
// reports aggregate scoring statistics. It is the tuning harness for the
// scoring rules and the bot brains.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"elemdraft/internal/app"
	"elemdraft/internal/bot"
	"elemdraft/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

func main() {
	players := flag.Int("players", 4, "players per draft (2-10)")
	games := flag.Int("games", 100, "number of drafts to simulate")
	easy := flag.Int("easy", 0, "how many seats use the random strategy")
	verbose := flag.Bool("verbose", false, "log every draft result")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	if *players < app.MinPlayersToStartDraft || *players > app.MaxPlayersPerDraft {
		log.Fatal().Int("players", *players).Msg("player count out of range")
	}
	if *easy > *players {
		log.Fatal().Int("easy", *easy).Msg("more easy seats than players")
	}

	start := time.Now()
	tally := runSimulation(log, *players, *games, *easy, *verbose)
	tally.report(log, *games, time.Since(start))
}

type seatAgent struct {
	userID string
	brain  bot.Brain
	label  string
}

// tally accumulates per-strategy wins and per-rule score totals.
type tally struct {
	wins       map[string]int
	totals     map[string]int
	ruleTotals domain.ScoreBreakdown
	entries    int
}

func runSimulation(log zerolog.Logger, players, games, easy int, verbose bool) *tally {
	agents := make([]*seatAgent, players)
	for i := range agents {
		label := "greedy"
		var brain bot.Brain = &bot.GreedyBot{}
		if i < easy {
			label = "random"
			brain = &bot.RandomBot{}
		}
		agents[i] = &seatAgent{
			userID: fmt.Sprintf("%s-%s", label, uuid.NewString()[:8]),
			brain:  brain,
			label:  label,
		}
	}

	result := &tally{
		wins:   make(map[string]int),
		totals: make(map[string]int),
	}

	service := app.NewService(nil)
	for g := 0; g < games; g++ {
		seats := lo.Map(agents, func(a *seatAgent, _ int) string { return a.userID })
		state, _, err := service.StartDraft(seats)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start draft")
		}

		for state.Phase == domain.PhaseDrafting {
			for _, agent := range agents {
				player := state.Players[agent.userID]
				if len(player.Drafted) >= state.Round {
					continue
				}
				move, err := agent.brain.ChooseMove(state, player)
				if err != nil {
					log.Fatal().Err(err).Str("seat", agent.userID).Msg("bot failed to choose")
				}
				if _, err := service.SubmitSelection(state, agent.userID, move.HandPos); err != nil {
					log.Fatal().Err(err).Str("seat", agent.userID).Msg("pick declined")
				}
				if state.Phase != domain.PhaseDrafting {
					break
				}
			}
		}

		standings, _ := service.ComputeScores(state)
		result.record(agents, standings)
		if verbose {
			winner := standings[0]
			log.Debug().
				Int("game", g+1).
				Str("winner", winner.UserID).
				Int("total", winner.Breakdown.Total).
				Msg("draft complete")
		}
	}
	return result
}

func (t *tally) record(agents []*seatAgent, standings []domain.Standing) {
	byID := lo.KeyBy(agents, func(a *seatAgent) string { return a.userID })
	t.wins[byID[standings[0].UserID].label]++
	for _, row := range standings {
		t.totals[byID[row.UserID].label] += row.Breakdown.Total
		t.ruleTotals.Sequence += row.Breakdown.Sequence
		t.ruleTotals.Mass += row.Breakdown.Mass
		t.ruleTotals.Spelling += row.Breakdown.Spelling
		t.ruleTotals.Radioactivity += row.Breakdown.Radioactivity
		t.ruleTotals.Ionization += row.Breakdown.Ionization
		t.ruleTotals.Family += row.Breakdown.Family
		t.entries++
	}
}

func (t *tally) report(log zerolog.Logger, games int, elapsed time.Duration) {
	labels := lo.Keys(t.wins)
	sort.Strings(labels)
	for _, label := range labels {
		log.Info().
			Str("strategy", label).
			Int("wins", t.wins[label]).
			Int("score_total", t.totals[label]).
			Msg("strategy results")
	}
	if t.entries > 0 {
		log.Info().
			Float64("sequence", avg(t.ruleTotals.Sequence, t.entries)).
			Float64("mass", avg(t.ruleTotals.Mass, t.entries)).
			Float64("radioactivity", avg(t.ruleTotals.Radioactivity, t.entries)).
			Float64("ionization", avg(t.ruleTotals.Ionization, t.entries)).
			Float64("family", avg(t.ruleTotals.Family, t.entries)).
			Msg("average score per rule")
	}
	log.Info().
		Int("games", games).
		Dur("elapsed", elapsed).
		Msg("simulation complete")
}

func avg(total, n int) float64 {
	return float64(total) / float64(n)
}
