package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"elemdraft/internal/app"
	"elemdraft/internal/bot"
	"elemdraft/internal/config"
	"elemdraft/internal/domain"
	"elemdraft/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
	"lukechampine.com/frand"
)

// MatchState holds the authoritative runtime state for the Nakama match
// handler. The draft itself lives in Draft; everything else is lobby and
// pacing bookkeeping around the rules engine.
type MatchState struct {
	Seats     [app.MaxPlayersPerDraft]string `json:"seats"` // user IDs, empty string means open
	OwnerSeat int                            `json:"owner_seat"`
	Tick      int64                          `json:"tick"`

	MatchID      string `json:"match_id"`
	StateVersion string `json:"state_version"` // storage version of the last checkpoint

	BotsEnabled          bool  `json:"bots_enabled"`
	BotMinDelay          int   `json:"bot_min_delay"`
	BotMaxDelay          int   `json:"bot_max_delay"`
	BotAutoFillDelay     int   `json:"bot_auto_fill_delay"`
	LastSinglePlayerTick int64 `json:"last_single_player_tick"`

	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Draft     *domain.GameState           `json:"-"` // nil while in lobby
	Bots      map[string]*bot.Agent       `json:"-"`
	BotWaitAt map[string]int64            `json:"-"` // bot user id -> tick it acts at
	Store     ports.StateStore            `json:"-"`
	Stats     ports.StatsRecorder         `json:"-"`
}

func (ms *MatchState) openSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) occupiedSeatCount() int {
	return len(ms.Seats) - ms.openSeatCount()
}

func (ms *MatchState) humanCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// seatedUserIDs returns occupied seats in seating order.
func (ms *MatchState) seatedUserIDs() []string {
	out := make([]string, 0, len(ms.Seats))
	for _, seat := range ms.Seats {
		if seat != "" {
			out = append(out, seat)
		}
	}
	return out
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/draft_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	state := &MatchState{
		OwnerSeat:        -1,
		MatchID:          matchID,
		BotMinDelay:      cfg.BotMinDelaySeconds,
		BotMaxDelay:      cfg.BotMaxDelaySeconds,
		BotAutoFillDelay: cfg.BotAutoFillDelaySeconds,
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil),
		Bots:             make(map[string]*bot.Agent),
		BotWaitAt:        make(map[string]int64),
		Store:            NewStorageAdapter(nk),
		Stats:            NewStatsAdapter(nk),
	}

	// Environment variables override file config for fleet-wide toggles.
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if val, ok := env["elemdraft_bots_enabled"]; ok {
			state.BotsEnabled = val == "true"
		}
		if val, ok := env["elemdraft_bot_min_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotMinDelay = i
			}
		}
		if val, ok := env["elemdraft_bot_max_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotMaxDelay = i
			}
		}
		if val, ok := env["elemdraft_bot_auto_fill_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotAutoFillDelay = i
			}
		}
	}
	if state.BotMinDelay <= 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay + 2
	}
	if state.BotAutoFillDelay <= 0 {
		state.BotAutoFillDelay = 5
	}

	label, err := marshalLabel(state.openSeatCount(), "lobby")
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// A seated player may always reconnect.
	for _, seat := range matchState.Seats {
		if seat == presence.GetUserId() {
			return state, true, ""
		}
	}

	// Once drafting starts, seats are fixed.
	if matchState.Draft != nil {
		return state, false, "Draft already in progress"
	}

	if matchState.openSeatCount() <= 0 {
		hasBot := false
		for _, seat := range matchState.Seats {
			if bot.IsBot(seat) {
				hasBot = true
				break
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for _, seatUserID := range matchState.Seats {
			if seatUserID == p.GetUserId() {
				assigned = true // reconnect
				break
			}
		}
		if !assigned {
			for i, seatUserID := range matchState.Seats {
				if seatUserID == "" {
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned && matchState.Draft == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					delete(matchState.BotWaitAt, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
			continue
		}

		mh.broadcastEvent(ctx, matchState, dispatcher, logger, app.Event{
			Kind: app.EventPlayerJoined,
			Payload: app.PlayerJoinedPayload{
				UserID: p.GetUserId(),
				Seat:   seatOf(matchState, p.GetUserId()),
			},
		})
	}

	// Owner must be a human player.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserID := range matchState.Seats {
			if seatUserID != p.GetUserId() {
				continue
			}
			if matchState.Draft == nil {
				matchState.Seats[i] = ""
			} else {
				// Mid-draft the seat stays occupied so the rotation never
				// stalls; an agent takes over this player's picks.
				if agent, err := bot.NewAgent("bot-proxy"); err == nil {
					agent.ID = p.GetUserId()
					matchState.Bots[p.GetUserId()] = agent
					logger.Info("MatchLeave: Agent taking over picks for %s.", p.GetUserId())
				}
			}
			break
		}

		mh.broadcastEvent(ctx, matchState, dispatcher, logger, app.Event{
			Kind:    app.EventPlayerLeft,
			Payload: app.PlayerLeftPayload{UserID: p.GetUserId()},
		})
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])

	if shouldTerminateNoHumans(matchState.Seats[:]) && len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartDraft:
			mh.handleStartDraft(ctx, matchState, dispatcher, logger, msg)
		case OpSubmitSelection:
			mh.handleSubmitSelection(ctx, matchState, dispatcher, logger, msg)
		case OpSpellWord:
			mh.handleSpellWord(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.autoFillLobby(ctx, matchState, dispatcher, logger)
	}
	mh.processBotPicks(ctx, matchState, dispatcher, logger)

	return matchState
}

// autoFillLobby adds bot agents when a single human has been waiting alone.
func (mh *matchHandler) autoFillLobby(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Draft != nil {
		return
	}
	if state.humanCount() != 1 {
		state.LastSinglePlayerTick = 0
		return
	}
	if state.LastSinglePlayerTick == 0 {
		state.LastSinglePlayerTick = state.Tick
		return
	}
	if state.Tick-state.LastSinglePlayerTick < int64(state.BotAutoFillDelay) {
		return
	}
	state.LastSinglePlayerTick = 0

	// Fill up to a playable table, not the whole room.
	const targetSeats = 4
	added := false
	for i := range state.Seats {
		if state.occupiedSeatCount() >= targetSeats {
			break
		}
		if state.Seats[i] != "" {
			continue
		}
		identity := bot.GetIdentity(i)
		agent, err := bot.NewAgent(identity.UserID)
		if err != nil {
			logger.Error("autoFillLobby: Failed to create bot agent for %s: %v", identity.UserID, err)
			continue
		}
		state.Seats[i] = identity.UserID
		state.Bots[identity.UserID] = agent
		logger.Info("autoFillLobby: Added bot %s (%s) to seat %d", identity.DisplayName, identity.UserID, i)
		added = true
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
	}
}

// processBotPicks lets every bot that still owes a pick for the current
// round act after its think delay.
func (mh *matchHandler) processBotPicks(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Draft == nil || state.Draft.Phase != domain.PhaseDrafting {
		return
	}

	for botID, agent := range state.Bots {
		player, ok := state.Draft.Players[botID]
		if !ok || len(player.Drafted) >= state.Draft.Round {
			delete(state.BotWaitAt, botID)
			continue
		}

		waitUntil, scheduled := state.BotWaitAt[botID]
		if !scheduled {
			delay := frand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
			state.BotWaitAt[botID] = state.Tick + int64(delay)
			continue
		}
		if state.Tick < waitUntil {
			continue
		}
		delete(state.BotWaitAt, botID)

		move, err := agent.Play(state.Draft)
		if err != nil {
			logger.Error("processBotPicks: Bot %s failed to choose: %v", botID, err)
			continue
		}
		events, err := state.App.SubmitSelection(state.Draft, botID, move.HandPos)
		if err != nil {
			logger.Error("processBotPicks: Bot %s pick declined: %v", botID, err)
			continue
		}
		mh.afterAccepted(ctx, state, dispatcher, logger, events)

		if state.Draft == nil || state.Draft.Phase != domain.PhaseDrafting {
			return
		}
	}
}

func (mh *matchHandler) handleStartDraft(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := seatOf(state, senderID)

	if state.Draft != nil {
		logger.Warn("StartDraft: Draft already running.")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartDraft: User %s tried to start but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the owner can start the draft")
		return
	}

	seats := state.seatedUserIDs()
	draft, events, err := state.App.StartDraft(seats)
	if err != nil {
		logger.Warn("StartDraft: Cannot start: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.Draft = draft
	state.StateVersion = ""
	mh.checkpoint(ctx, state, logger)
	mh.updateLabel(state, dispatcher, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	logger.Info("StartDraft: Draft started with %d players (deck=%d, hand=%d).",
		len(seats), draft.DeckSize, draft.HandSize)
}

func (mh *matchHandler) handleSubmitSelection(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Draft == nil {
		logger.Warn("handleSubmitSelection: Draft not started.")
		return
	}

	var request SubmitSelectionRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handleSubmitSelection: Bad payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed selection payload")
		return
	}

	events, err := state.App.SubmitSelection(state.Draft, senderID, request.HandPos)
	if err != nil {
		logger.Warn("handleSubmitSelection: User %s declined: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	mh.afterAccepted(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handleSpellWord(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Draft == nil {
		logger.Warn("handleSpellWord: Draft not started.")
		return
	}

	var request SpellWordRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handleSpellWord: Bad payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed spelling payload")
		return
	}

	events, err := state.App.RecordSpellingAttempt(state.Draft, senderID, request.Word)
	if err != nil {
		logger.Warn("handleSpellWord: User %s declined: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	mh.afterAccepted(ctx, state, dispatcher, logger, events)
}

// afterAccepted checkpoints the new state, broadcasts the resulting events,
// and closes out the match when the draft just finished.
func (mh *matchHandler) afterAccepted(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	mh.checkpoint(ctx, state, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	if state.Draft != nil && state.Draft.Phase == domain.PhaseScored {
		mh.finishDraft(ctx, state, dispatcher, logger)
	}
}

// finishDraft computes final standings, records them, and returns the match
// to the lobby.
func (mh *matchHandler) finishDraft(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	standings, events := state.App.ComputeScores(state.Draft)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	if state.Stats != nil {
		results := make([]ports.PlayerResult, 0, len(standings))
		for i, row := range standings {
			results = append(results, ports.PlayerResult{
				UserID:    row.UserID,
				Rank:      i + 1,
				Breakdown: row.Breakdown,
			})
		}
		if err := state.Stats.RecordResults(ctx, state.MatchID, results); err != nil {
			logger.Error("finishDraft: Failed to record results: %v", err)
		}
	}

	state.Draft = nil
	state.StateVersion = ""
	mh.updateLabel(state, dispatcher, logger)
	logger.Info("finishDraft: Draft scored, match back in lobby.")
}

// checkpoint writes the draft state through the store with its version.
// This match loop is the single writer, so a conflict means the checkpoint
// object moved underneath us (e.g. operator intervention); reload its
// version once and overwrite.
func (mh *matchHandler) checkpoint(ctx context.Context, state *MatchState, logger runtime.Logger) {
	if state.Store == nil || state.Draft == nil {
		return
	}
	version, err := state.Store.Save(ctx, state.MatchID, state.Draft, state.StateVersion)
	if errors.Is(err, ports.ErrVersionConflict) {
		if _, latest, loadErr := state.Store.Load(ctx, state.MatchID); loadErr == nil {
			version, err = state.Store.Save(ctx, state.MatchID, state.Draft, latest)
		}
	}
	if err != nil {
		logger.Error("checkpoint: Failed to persist draft state: %v", err)
		return
	}
	state.StateVersion = version
}

// broadcastEvent converts an app event to its wire form and dispatches it.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := eventOpCode(ev.Kind)
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	data, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// If the intended recipients are all offline (e.g. bots), the
		// private payload must not leak to everyone else.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, data, recipients, nil, true)
}

// sendError sends a decline to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	data, err := json.Marshal(ErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal ErrorEvent: %v", err)
		return
	}
	presence, ok := state.Presences[userID]
	if !ok {
		return
	}
	dispatcher.BroadcastMessage(OpError, data, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Draft != nil {
		phase = "drafting"
	}
	label, err := marshalLabel(state.openSeatCount(), phase)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

// seatOf returns the seat index for a user id, or -1.
func seatOf(state *MatchState, userID string) int {
	for i, seatUserID := range state.Seats {
		if seatUserID == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}
