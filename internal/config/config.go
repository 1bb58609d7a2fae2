package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig tunes match pacing and bot behavior. Rule values (deck table,
// reward ladder) are part of the rules engine and deliberately not
// configurable here.
type GameConfig struct {
	// TurnDurationSeconds is how long players get to pick each round before
	// the client nudges them. Zero means no limit.
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before
	// filling a solo human lobby with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotMinDelaySeconds / BotMaxDelaySeconds bound how long a bot "thinks"
	// before submitting its pick.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// MinPlayersAutoStart is the lobby size at which the owner may start.
	MinPlayersAutoStart int `json:"min_players_auto_start"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or safe defaults if no
// file was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return GameConfig{
			TurnDurationSeconds:     45,
			BotAutoFillDelaySeconds: 5,
			BotMinDelaySeconds:      1,
			BotMaxDelaySeconds:      3,
			MinPlayersAutoStart:     2,
		}
	}
	return *cfg
}
