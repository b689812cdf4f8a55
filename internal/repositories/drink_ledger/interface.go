package drink_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sipdeck/internal/repositories/drink_ledger Repository

import (
	"context"
)

// Repository defines the interface for the ledger of applied effects
type Repository interface {
	// MarkPlayApplied claims a play for effect application, returning false if it was already applied
	MarkPlayApplied(ctx context.Context, input *MarkPlayAppliedInput) (bool, error)

	// AddDrinkRecord adds a record to the ledger
	AddDrinkRecord(ctx context.Context, input *AddDrinkRecordInput) error

	// GetDrinkRecordsForChannel retrieves the records of a session, oldest first
	GetDrinkRecordsForChannel(ctx context.Context, input *GetDrinkRecordsForChannelInput) (*GetDrinkRecordsOutput, error)

	// GetDrinkRecordsForPlayer retrieves the records of a player, oldest first
	GetDrinkRecordsForPlayer(ctx context.Context, input *GetDrinkRecordsForPlayerInput) (*GetDrinkRecordsOutput, error)

	// RekeyChannel moves the session index of a channel to another channel
	RekeyChannel(ctx context.Context, input *RekeyChannelInput) error

	// DeleteChannelRecords removes the session index of a channel
	DeleteChannelRecords(ctx context.Context, input *DeleteChannelRecordsInput) error
}
