package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/play"
	drinkLedgerRepo "github.com/KirkDiggler/sipdeck/internal/repositories/drink_ledger"
	playerRepo "github.com/KirkDiggler/sipdeck/internal/repositories/player"
	"github.com/KirkDiggler/sipdeck/internal/services/messaging"
)

// applyEffects hands out the effects of a completed play once.
// Failures are logged per effect and never abort the others.
func (s *service) applyEffects(ctx context.Context, session *models.Session, card *models.Card, instance *models.PlayInstance) {
	claimed, err := s.drinkLedgerRepo.MarkPlayApplied(ctx, &drinkLedgerRepo.MarkPlayAppliedInput{
		PlayID: instance.ID,
	})
	if err != nil {
		s.logger.Error("failed to claim play", zap.String("play_id", instance.ID), zap.Error(err))
		return
	}
	if !claimed {
		s.logger.Debug("play already applied", zap.String("play_id", instance.ID))
		return
	}

	results, problems := play.ResolveEffects(card, instance)
	for _, problem := range problems {
		s.logger.Warn("skipped effect", zap.Int("card_id", card.ID), zap.Error(problem))
	}
	if len(results) == 0 {
		return
	}

	now := s.clock.Now()
	for _, result := range results {
		amount := result.Amount
		if card.Effects[result.Index].Value == nil {
			amount = 1
		}
		stat, counted := result.Type.Stat()

		for _, playerID := range result.Targets {
			if counted {
				// one per effect, the drawn amount only goes to the ledger
				if err := s.playerRepo.IncrementStat(ctx, &playerRepo.IncrementStatInput{
					PlayerID: playerID,
					Field:    stat,
					Amount:   1,
				}); err != nil {
					s.logger.Warn("failed to increment stat",
						zap.String("player_id", playerID),
						zap.String("stat", string(stat)),
						zap.Error(err))
					continue
				}
			}

			if err := s.drinkLedgerRepo.AddDrinkRecord(ctx, &drinkLedgerRepo.AddDrinkRecordInput{
				Record: &models.DrinkRecord{
					ID:        s.uuidGenerator.NewUUID(),
					ChannelID: session.ChannelID,
					PlayID:    instance.ID,
					CardID:    card.ID,
					PlayerID:  playerID,
					Type:      result.Type,
					Amount:    amount,
					Timestamp: now,
				},
			}); err != nil {
				s.logger.Warn("failed to record effect", zap.String("player_id", playerID), zap.Error(err))
			}
			s.metrics.EffectApplied(string(result.Type), amount)
		}
	}

	out, err := s.messaging.GetEffectsPayload(ctx, &messaging.GetEffectsPayloadInput{
		Effects: results,
	})
	if err != nil {
		s.logger.Error("failed to build effects payload", zap.Error(err))
		return
	}
	s.send(ctx, session.ChannelID, out.Payload)
}
