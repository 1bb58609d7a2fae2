package bot

import "fmt"

// NewAgent builds an agent for the given bot user id, choosing the strategy
// from the configured identity's difficulty.
func NewAgent(userID string) (*Agent, error) {
	if !IsBot(userID) {
		return nil, fmt.Errorf("%s is not a bot user id", userID)
	}

	if len(identities) == 0 {
		identities = defaultIdentities
	}

	name := userID
	difficulty := "normal"
	for _, id := range identities {
		if id.UserID == userID {
			name = id.DisplayName
			difficulty = id.Difficulty
			break
		}
	}

	var strategy Brain
	switch difficulty {
	case "easy":
		strategy = &RandomBot{}
	default:
		strategy = &GreedyBot{}
	}

	return &Agent{ID: userID, Name: name, Strategy: strategy}, nil
}
