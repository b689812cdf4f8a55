package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sipdeck/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

// Repository defines the interface for player statistics persistence
type Repository interface {
	// GetPlayer retrieves the statistics of a player
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayers retrieves the statistics of several players
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// IncrementStat adds to one counter of the current game
	IncrementStat(ctx context.Context, input *IncrementStatInput) error

	// RollupStats adds the current counters to the totals and resets them
	RollupStats(ctx context.Context, input *RollupStatsInput) error
}
