package models

import (
	"time"
)

// DrinkRecord records one effect handed to one participant
type DrinkRecord struct {
	// ID is the unique identifier for the record
	ID string

	// ChannelID is the session the effect was applied in
	ChannelID string

	// PlayID is the play instance that produced the effect
	PlayID string

	// CardID is the card that was played
	CardID int

	// PlayerID is the participant receiving the effect
	PlayerID string

	// Type is the effect type
	Type EffectType

	// Amount is the drawn value, 0 when the effect has none
	Amount int

	// Timestamp is when the effect was applied
	Timestamp time.Time
}
