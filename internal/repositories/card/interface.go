package card

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sipdeck/internal/repositories/card Repository

import (
	"context"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

// Repository defines the interface for card persistence
type Repository interface {
	// SaveCard persists a card and indexes it by required participants
	SaveCard(ctx context.Context, input *SaveCardInput) error

	// GetCard retrieves a card by ID
	GetCard(ctx context.Context, input *GetCardInput) (*models.Card, error)

	// CountCards returns the number of stored cards
	CountCards(ctx context.Context) (int, error)

	// ListEligible returns the IDs of cards playable with the given number of participants
	ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error)

	// AddLike records a participant liking a card
	AddLike(ctx context.Context, input *AddLikeInput) (*AddLikeOutput, error)
}
