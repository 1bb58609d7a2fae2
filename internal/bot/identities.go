package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// botIDPrefix marks seat entries controlled by an agent rather than a
// connected presence.
const botIDPrefix = "bot-"

// Identity is one configured bot profile.
type Identity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "easy" or "normal"
}

var (
	identities []Identity
	loadOnce   sync.Once
	loadErr    error
)

// defaultIdentities covers a full table when no identity file is deployed.
var defaultIdentities = []Identity{
	{UserID: "bot-bohr", DisplayName: "Niels", Difficulty: "normal"},
	{UserID: "bot-curie", DisplayName: "Marie", Difficulty: "normal"},
	{UserID: "bot-mendeleev", DisplayName: "Dmitri", Difficulty: "normal"},
	{UserID: "bot-noether", DisplayName: "Emmy", Difficulty: "easy"},
	{UserID: "bot-pauling", DisplayName: "Linus", Difficulty: "easy"},
	{UserID: "bot-meitner", DisplayName: "Lise", Difficulty: "normal"},
	{UserID: "bot-seaborg", DisplayName: "Glenn", Difficulty: "easy"},
	{UserID: "bot-lavoisier", DisplayName: "Antoine", Difficulty: "easy"},
	{UserID: "bot-ramsay", DisplayName: "William", Difficulty: "normal"},
}

// LoadIdentities loads bot profiles from the given path, falling back to the
// built-in set when the file is absent.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		identities = defaultIdentities

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return
			}
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		var loaded []Identity
		if err := json.Unmarshal(data, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		if len(loaded) > 0 {
			identities = loaded
		}
	})
	return loadErr
}

// GetIdentity returns the identity for the given slot, wrapping around when
// more bots are needed than profiles exist.
func GetIdentity(slot int) Identity {
	if len(identities) == 0 {
		identities = defaultIdentities
	}
	id := identities[slot%len(identities)]
	if slot >= len(identities) {
		// Disambiguate wrapped user ids so seats stay unique.
		id.UserID = fmt.Sprintf("%s-%d", id.UserID, slot/len(identities))
	}
	return id
}

// IsBot reports whether the given user id belongs to a bot seat.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}
