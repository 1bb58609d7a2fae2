package nakama

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"elemdraft/internal/app"
	"elemdraft/internal/bot"
	"elemdraft/internal/domain"
	"elemdraft/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
	lastLabel      string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

// testPresence is a minimal runtime.Presence for seating tests.
type testPresence struct {
	userID string
}

func (p testPresence) GetUserId() string                 { return p.userID }
func (p testPresence) GetSessionId() string              { return "session-" + p.userID }
func (p testPresence) GetNodeId() string                 { return "node" }
func (p testPresence) GetHidden() bool                   { return false }
func (p testPresence) GetPersistence() bool              { return false }
func (p testPresence) GetUsername() string               { return p.userID }
func (p testPresence) GetStatus() string                 { return "" }
func (p testPresence) GetReason() runtime.PresenceReason { return runtime.PresenceReasonUnknown }

// testMatchData wraps a presence with a message payload.
type testMatchData struct {
	testPresence
	opCode int64
	data   []byte
}

func (m testMatchData) GetOpCode() int64      { return m.opCode }
func (m testMatchData) GetData() []byte       { return m.data }
func (m testMatchData) GetReliable() bool     { return true }
func (m testMatchData) GetReceiveTime() int64 { return 0 }

// memoryStore is an in-memory ports.StateStore.
type memoryStore struct {
	state   *domain.GameState
	version int
	saves   int
}

func (ms *memoryStore) Load(ctx context.Context, matchID string) (*domain.GameState, string, error) {
	if ms.state == nil {
		return nil, "", nil
	}
	return ms.state, versionString(ms.version), nil
}

func (ms *memoryStore) Save(ctx context.Context, matchID string, state *domain.GameState, version string) (string, error) {
	if version != "" && version != versionString(ms.version) {
		return "", ports.ErrVersionConflict
	}
	ms.state = state
	ms.version++
	ms.saves++
	return versionString(ms.version), nil
}

func versionString(v int) string {
	return fmt.Sprintf("v%d", v)
}

// recordingStats captures RecordResults calls.
type recordingStats struct {
	matchID string
	results []ports.PlayerResult
}

func (rs *recordingStats) RecordResults(ctx context.Context, matchID string, results []ports.PlayerResult) error {
	rs.matchID = matchID
	rs.results = results
	return nil
}

func testMatchState(seats ...string) *MatchState {
	state := &MatchState{
		OwnerSeat: -1,
		MatchID:   "match-1",
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		Bots:      make(map[string]*bot.Agent),
		BotWaitAt: make(map[string]int64),
		Store:     &memoryStore{},
		Stats:     &recordingStats{},
	}
	for i, uid := range seats {
		state.Seats[i] = uid
		if uid != "" && !bot.IsBot(uid) {
			state.Presences[uid] = testPresence{userID: uid}
			if state.OwnerSeat == -1 {
				state.OwnerSeat = i
			}
		}
	}
	return state
}

func TestFindFirstHumanSeat(t *testing.T) {
	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{"bot-bohr", "user-1", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{"bot-bohr", "bot-curie", "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", "bot-bohr", "user-2", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{
			name:  "BotsOnly",
			seats: []string{"bot-bohr", "bot-curie", "bot-mendeleev", "bot-noether"},
			want:  true,
		},
		{
			name:  "BotsAndEmpty",
			seats: []string{"bot-bohr", "", "bot-curie", ""},
			want:  true,
		},
		{
			name:  "HumansPresent",
			seats: []string{"bot-bohr", "user-1", "", ""},
			want:  false,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestMarshalLabel(t *testing.T) {
	label, err := marshalLabel(3, "lobby")
	if err != nil {
		t.Fatalf("Failed to marshal label: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(label), &decoded); err != nil {
		t.Fatalf("Label is not valid JSON: %v", err)
	}
	if decoded["game"] != "elemdraft" {
		t.Errorf("game = %v, want elemdraft", decoded["game"])
	}
	if decoded["phase"] != "lobby" {
		t.Errorf("phase = %v, want lobby", decoded["phase"])
	}
	if decoded["open"] != float64(3) {
		t.Errorf("open = %v, want 3", decoded["open"])
	}
}

func TestAutoFillLobbyAddsBotsForSoloHuman(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := testMatchState("user-1")
	state.BotsEnabled = true
	state.BotAutoFillDelay = 2
	state.LastSinglePlayerTick = 8
	state.Tick = 10

	handler.autoFillLobby(context.Background(), state, dispatcher, noopLogger{})

	botCount := 0
	for _, seat := range state.Seats {
		if bot.IsBot(seat) {
			botCount++
		}
	}
	if botCount != 3 {
		t.Fatalf("Expected 3 bots after auto-fill, got %d", botCount)
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSinglePlayerTick)
	}
	if dispatcher.labelUpdates == 0 {
		t.Fatal("Expected label update after auto-fill")
	}
}

func TestAutoFillLobbyWaitsOutDelay(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := testMatchState("user-1")
	state.BotsEnabled = true
	state.BotAutoFillDelay = 5
	state.LastSinglePlayerTick = 8
	state.Tick = 10

	handler.autoFillLobby(context.Background(), state, dispatcher, noopLogger{})

	for _, seat := range state.Seats {
		if bot.IsBot(seat) {
			t.Fatalf("Bot %s seated before the auto-fill delay elapsed", seat)
		}
	}
}

func TestStartDraftRequiresOwner(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := testMatchState("user-1", "user-2")

	msg := testMatchData{testPresence: testPresence{userID: "user-2"}, opCode: OpStartDraft}
	handler.handleStartDraft(context.Background(), state, dispatcher, noopLogger{}, msg)

	if state.Draft != nil {
		t.Fatal("Non-owner must not be able to start the draft")
	}
	if dispatcher.lastOpCode != OpError {
		t.Fatalf("Expected error op code %d, got %d", OpError, dispatcher.lastOpCode)
	}
}

func TestStartDraftDealsPrivately(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := testMatchState("user-1", "user-2", "user-3")

	msg := testMatchData{testPresence: testPresence{userID: "user-1"}, opCode: OpStartDraft}
	handler.handleStartDraft(context.Background(), state, dispatcher, noopLogger{}, msg)

	if state.Draft == nil {
		t.Fatal("Owner start must begin the draft")
	}
	if state.Draft.Phase != domain.PhaseDrafting {
		t.Fatalf("Phase = %q, want %q", state.Draft.Phase, domain.PhaseDrafting)
	}
	// Announcement plus one private hand per seat.
	if dispatcher.broadcastCount != 4 {
		t.Fatalf("broadcastCount = %d, want 4", dispatcher.broadcastCount)
	}
	store := state.Store.(*memoryStore)
	if store.saves == 0 {
		t.Fatal("Expected a state checkpoint after the deal")
	}
}

func TestPrivateEventSkippedWhenRecipientOffline(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := testMatchState("user-1", "bot-bohr")

	handler.broadcastEvent(context.Background(), state, dispatcher, noopLogger{}, app.Event{
		Kind:       app.EventHandDealt,
		Payload:    app.HandDealtPayload{UserID: "bot-bohr", Hand: []int{1, 2}},
		Recipients: []string{"bot-bohr"},
	})

	if dispatcher.broadcastCount != 0 {
		t.Fatal("Private payload for an offline recipient must not be broadcast")
	}
}

func TestDraftRunsToScoringThroughHandler(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := testMatchState("user-1", "user-2")

	start := testMatchData{testPresence: testPresence{userID: "user-1"}, opCode: OpStartDraft}
	handler.handleStartDraft(context.Background(), state, dispatcher, noopLogger{}, start)
	if state.Draft == nil {
		t.Fatal("draft did not start")
	}

	payload, _ := json.Marshal(SubmitSelectionRequest{HandPos: 0})
	for state.Draft != nil {
		for _, uid := range []string{"user-1", "user-2"} {
			if state.Draft == nil {
				break
			}
			msg := testMatchData{testPresence: testPresence{userID: uid}, opCode: OpSubmitSelection, data: payload}
			handler.handleSubmitSelection(context.Background(), state, dispatcher, noopLogger{}, msg)
		}
	}

	stats := state.Stats.(*recordingStats)
	if stats.matchID != "match-1" {
		t.Fatalf("Results recorded for match %q, want match-1", stats.matchID)
	}
	if len(stats.results) != 2 {
		t.Fatalf("Recorded %d results, want 2", len(stats.results))
	}
	if stats.results[0].Rank != 1 || stats.results[1].Rank != 2 {
		t.Fatalf("Ranks = %d,%d; want 1,2", stats.results[0].Rank, stats.results[1].Rank)
	}
	if dispatcher.lastLabel == "" {
		t.Fatal("Expected a label update back to lobby")
	}
}

func TestSubmitSelectionDeclineSendsError(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := testMatchState("user-1", "user-2")

	start := testMatchData{testPresence: testPresence{userID: "user-1"}, opCode: OpStartDraft}
	handler.handleStartDraft(context.Background(), state, dispatcher, noopLogger{}, start)

	payload, _ := json.Marshal(SubmitSelectionRequest{HandPos: 99})
	msg := testMatchData{testPresence: testPresence{userID: "user-1"}, opCode: OpSubmitSelection, data: payload}
	handler.handleSubmitSelection(context.Background(), state, dispatcher, noopLogger{}, msg)

	if dispatcher.lastOpCode != OpError {
		t.Fatalf("Expected error op code %d, got %d", OpError, dispatcher.lastOpCode)
	}
	var decline ErrorEvent
	if err := json.Unmarshal(dispatcher.lastData, &decline); err != nil {
		t.Fatalf("Error payload not valid JSON: %v", err)
	}
	if decline.Code != 400 {
		t.Fatalf("decline code = %d, want 400", decline.Code)
	}
}
