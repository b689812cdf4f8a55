package drink_ledger

import "github.com/KirkDiggler/sipdeck/internal/models"

// MarkPlayAppliedInput contains parameters for claiming a play
type MarkPlayAppliedInput struct {
	PlayID string
}

// AddDrinkRecordInput contains parameters for adding a drink record
type AddDrinkRecordInput struct {
	Record *models.DrinkRecord
}

// GetDrinkRecordsForChannelInput contains parameters for retrieving the records of a session
type GetDrinkRecordsForChannelInput struct {
	ChannelID string
}

// GetDrinkRecordsForPlayerInput contains parameters for retrieving the records of a player
type GetDrinkRecordsForPlayerInput struct {
	PlayerID string

	// Limit > 0 returns only the newest records, newest first
	Limit int
}

// GetDrinkRecordsOutput contains the retrieved records
type GetDrinkRecordsOutput struct {
	Records []*models.DrinkRecord
}

// RekeyChannelInput contains parameters for moving a session index
type RekeyChannelInput struct {
	FromChannelID string
	ToChannelID   string
}

// DeleteChannelRecordsInput contains parameters for dropping a session index
type DeleteChannelRecordsInput struct {
	ChannelID string
}
