package player

import "github.com/KirkDiggler/sipdeck/internal/models"

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInput contains parameters for retrieving several players
type GetPlayersInput struct {
	PlayerIDs []string
}

// GetPlayersOutput contains the players in the requested order
type GetPlayersOutput struct {
	Players []*models.Player
}

// IncrementStatInput contains parameters for incrementing a counter
type IncrementStatInput struct {
	PlayerID string
	Field    models.StatField
	Amount   int
}

// RollupStatsInput contains parameters for rolling up the current counters
type RollupStatsInput struct {
	PlayerID string

	// StartGame sets the games counter of the fresh current stats to 1
	StartGame bool
}
