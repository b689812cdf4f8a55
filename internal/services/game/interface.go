package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sipdeck/internal/services/game Service

import "context"

// Service defines the interface for game session operations
type Service interface {
	// CreateSession opens a new session in a channel with the creator as first participant
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds a participant to the session of a channel
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// LeaveSession removes a participant, disbanding the session when too few are left
	LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error)

	// StartSession starts dealing cards
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// SubmitAnswer records an answer for the pending question of the current card
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// NextCard deals the next card once the current one is complete
	NextCard(ctx context.Context, input *NextCardInput) (*NextCardOutput, error)

	// SkipCard deals the next card regardless of the current one
	SkipCard(ctx context.Context, input *SkipCardInput) (*SkipCardOutput, error)

	// DisbandSession ends a session
	DisbandSession(ctx context.Context, input *DisbandSessionInput) (*DisbandSessionOutput, error)

	// TransferSession moves a session to another channel
	TransferSession(ctx context.Context, input *TransferSessionInput) (*TransferSessionOutput, error)

	// GetSession returns the session of a channel together with its live play
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetPlayerStats returns the counters of a player
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// LikeCurrentCard records a like for the card on the table
	LikeCurrentCard(ctx context.Context, input *LikeCurrentCardInput) (*LikeCurrentCardOutput, error)

	// SetNSFW toggles whether nsfw cards may be dealt
	SetNSFW(ctx context.Context, input *SetNSFWInput) (*SetNSFWOutput, error)

	// Recover reschedules the pending transitions of stored sessions after a restart
	Recover(ctx context.Context, input *RecoverInput) (*RecoverOutput, error)
}
