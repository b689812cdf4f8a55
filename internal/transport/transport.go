package transport

//go:generate mockgen -package=mocks -destination=mocks/mock_transport.go github.com/KirkDiggler/sipdeck/internal/transport Transport

import (
	"context"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

// Transport is the chat platform the game is played on
type Transport interface {
	// SendPayload delivers a message to a channel
	SendPayload(ctx context.Context, channelID string, payload *models.Payload) error

	// ResolveParticipant turns a mention or user ID into a participant,
	// returning nil without error when nobody matches
	ResolveParticipant(ctx context.Context, token string) (*models.ParticipantRef, error)

	// AddParticipantMarker flags a user as playing in a channel
	AddParticipantMarker(ctx context.Context, channelID, participantID string) error

	// RemoveParticipantMarker drops the playing flag of a user
	RemoveParticipantMarker(ctx context.Context, channelID, participantID string) error
}
