package config

import "testing"

func TestDefaultsWhenUnloaded(t *testing.T) {
	cfg := GetGameConfig()
	if cfg.BotMinDelaySeconds <= 0 {
		t.Errorf("BotMinDelaySeconds = %d, want positive", cfg.BotMinDelaySeconds)
	}
	if cfg.BotMaxDelaySeconds < cfg.BotMinDelaySeconds {
		t.Errorf("BotMaxDelaySeconds = %d below min %d", cfg.BotMaxDelaySeconds, cfg.BotMinDelaySeconds)
	}
	if cfg.MinPlayersAutoStart < 2 {
		t.Errorf("MinPlayersAutoStart = %d, want at least 2", cfg.MinPlayersAutoStart)
	}
}
