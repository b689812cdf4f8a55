package card

import "github.com/KirkDiggler/sipdeck/internal/models"

type SaveCardInput struct {
	Card *models.Card
}

type GetCardInput struct {
	CardID int
}

type ListEligibleInput struct {
	// Participants is the size of the roster
	Participants int

	// IncludeNSFW keeps cards flagged as nsfw
	IncludeNSFW bool
}

type ListEligibleOutput struct {
	CardIDs []int
}

type AddLikeInput struct {
	CardID   int
	PlayerID string
}

type AddLikeOutput struct {
	// Added is false when the player already liked the card
	Added bool

	// Likes is the number of likes of the card
	Likes int
}
