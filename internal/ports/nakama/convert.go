package nakama

import (
	"elemdraft/internal/app"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// SubmitSelectionRequest is the client payload for OpSubmitSelection.
type SubmitSelectionRequest struct {
	HandPos int `json:"hand_pos"`
}

// SpellWordRequest is the client payload for OpSpellWord.
type SpellWordRequest struct {
	Word string `json:"word"`
}

// ErrorEvent is sent privately to a player whose action was declined.
type ErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// eventOpCode maps an app event to its wire op code.
func eventOpCode(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventPlayerJoined:
		return OpPlayerJoined, true
	case app.EventPlayerLeft:
		return OpPlayerLeft, true
	case app.EventDraftStarted:
		return OpDraftStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventSelectionMade:
		return OpSelectionMade, true
	case app.EventHandsRotated:
		return OpHandsRotated, true
	case app.EventSpellingPlaced:
		return OpSpellingPlaced, true
	case app.EventDraftEnded:
		return OpDraftEnded, true
	case app.EventScoresComputed:
		return OpScoresComputed, true
	default:
		return 0, false
	}
}

// marshalLabel builds the advertised match label. Open-seat count stays
// numeric so quick-match queries can filter with label.open:>=1.
func marshalLabel(open int, phase string) (string, error) {
	label, err := structpb.NewStruct(map[string]interface{}{
		"open":  open,
		"game":  "elemdraft",
		"phase": phase,
	})
	if err != nil {
		return "", err
	}
	b, err := (protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
