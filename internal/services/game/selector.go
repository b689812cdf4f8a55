package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/sipdeck/internal/models"
	cardRepo "github.com/KirkDiggler/sipdeck/internal/repositories/card"
)

// selectCard picks a card uniformly among those playable by the roster and not played recently.
// When every playable card was played recently the history is cleared and the pick retried once.
func (s *service) selectCard(ctx context.Context, session *models.Session) (*models.Card, error) {
	eligible, err := s.cardRepo.ListEligible(ctx, &cardRepo.ListEligibleInput{
		Participants: len(session.Participants),
		IncludeNSFW:  session.AllowNSFW,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible cards: %w", err)
	}

	candidates := freshCards(eligible.CardIDs, session)
	if len(candidates) == 0 && len(session.RecentCards) > 0 {
		session.RecentCards = []int{}
		candidates = freshCards(eligible.CardIDs, session)
	}
	if len(candidates) == 0 {
		return nil, ErrNoPlayableCard
	}

	return s.getCard(ctx, candidates[s.diceRoller.Intn(len(candidates))])
}

func freshCards(cardIDs []int, session *models.Session) []int {
	fresh := make([]int, 0, len(cardIDs))
	for _, id := range cardIDs {
		if !session.HasPlayedRecently(id) {
			fresh = append(fresh, id)
		}
	}
	return fresh
}
