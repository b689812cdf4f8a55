package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sipdeck/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

// Repository defines the interface for session and play instance persistence
type Repository interface {
	// SaveSession persists a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves the session of a channel
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session together with its play instance
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListSessions retrieves every stored session
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// CountSessions returns the number of stored sessions
	CountSessions(ctx context.Context) (int, error)

	// RekeySession moves a session and its play instance to another channel
	RekeySession(ctx context.Context, input *RekeySessionInput) (*models.Session, error)

	// SavePlay persists the live play instance of a channel
	SavePlay(ctx context.Context, input *SavePlayInput) error

	// GetPlay retrieves the live play instance of a channel
	GetPlay(ctx context.Context, input *GetPlayInput) (*models.PlayInstance, error)

	// DeletePlay removes the live play instance of a channel
	DeletePlay(ctx context.Context, input *DeletePlayInput) error
}
