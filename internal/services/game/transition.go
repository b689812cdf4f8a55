package game

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/play"
	sessionRepo "github.com/KirkDiggler/sipdeck/internal/repositories/session"
	"github.com/KirkDiggler/sipdeck/internal/services/messaging"
)

// advance settles the live play and deals the next card. The caller holds the session lock.
// It is a no-op returning false while a dealt card is waiting to be revealed.
func (s *service) advance(ctx context.Context, session *models.Session) (bool, error) {
	if session.TransitionPending {
		s.logger.Debug("transition already pending", zap.String("channel_id", session.ChannelID))
		return false, nil
	}

	current, err := s.getPlay(ctx, session.ChannelID)
	if err != nil {
		return false, err
	}
	if current != nil {
		s.settle(ctx, session, current)
		if err := s.sessionRepo.DeletePlay(ctx, &sessionRepo.DeletePlayInput{
			ChannelID: session.ChannelID,
		}); err != nil {
			return false, fmt.Errorf("failed to discard play: %w", err)
		}
	}

	card, err := s.selectCard(ctx, session)
	if err != nil {
		if errors.Is(err, ErrNoPlayableCard) {
			s.metrics.NoPlayableCard()
			s.logger.Warn("no playable card",
				zap.String("channel_id", session.ChannelID),
				zap.Int("participants", len(session.Participants)))
			if saveErr := s.saveSession(ctx, session); saveErr != nil {
				s.logger.Warn("failed to save session", zap.Error(saveErr))
			}
		}
		return false, err
	}

	instance, err := play.Draw(&play.DrawInput{
		Card:   card,
		Roster: session.Participants,
		Roller: s.diceRoller,
	})
	if err != nil {
		return false, fmt.Errorf("failed to draw card %d: %w", card.ID, err)
	}
	instance.ID = s.uuidGenerator.NewUUID()
	instance.ChannelID = session.ChannelID
	instance.CreatedAt = s.clock.Now()

	if err := s.sessionRepo.SavePlay(ctx, &sessionRepo.SavePlayInput{Play: instance}); err != nil {
		return false, fmt.Errorf("failed to save play: %w", err)
	}

	session.RecentCards = append(session.RecentCards, card.ID)
	session.TransitionPending = true
	if err := s.saveSession(ctx, session); err != nil {
		return false, err
	}

	s.metrics.CardPlayed(string(card.Category))
	s.logger.Debug("card dealt",
		zap.String("channel_id", session.ChannelID),
		zap.Int("card_id", card.ID),
		zap.String("play_id", instance.ID))

	s.scheduleReveal(session.ChannelID, instance.ID)
	return true, nil
}

// settle applies the effects of a play that was revealed and answered completely.
// Any other play is dropped without touching a counter.
func (s *service) settle(ctx context.Context, session *models.Session, instance *models.PlayInstance) {
	if !instance.Revealed {
		return
	}

	card, err := s.getCard(ctx, instance.CardID)
	if err != nil {
		s.logger.Error("failed to load card of finished play", zap.String("play_id", instance.ID), zap.Error(err))
		return
	}
	if !play.NewMachine(card, instance).Complete() {
		return
	}

	s.applyEffects(ctx, session, card, instance)
}

func (s *service) scheduleReveal(channelID, playID string) {
	s.scheduler.Schedule(channelID, s.cardTimeout, func() {
		if err := s.reveal(context.Background(), channelID, playID); err != nil {
			s.logger.Error("failed to reveal card",
				zap.String("channel_id", channelID),
				zap.String("play_id", playID),
				zap.Error(err))
		}
	})
}

// reveal shows a dealt card and asks its first question
func (s *service) reveal(ctx context.Context, channelID, playID string) error {
	unlock := s.lock(channelID)
	defer unlock()

	session, err := s.getSession(ctx, channelID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			s.logger.Debug("session gone before reveal", zap.String("channel_id", channelID))
			return nil
		}
		return err
	}

	instance, err := s.getPlay(ctx, channelID)
	if err != nil {
		return err
	}
	if instance == nil || instance.ID != playID || instance.Revealed {
		s.logger.Debug("stale reveal", zap.String("channel_id", channelID), zap.String("play_id", playID))
		return nil
	}

	card, err := s.getCard(ctx, instance.CardID)
	if err != nil {
		return err
	}

	instance.Revealed = true
	if err := s.sessionRepo.SavePlay(ctx, &sessionRepo.SavePlayInput{Play: instance}); err != nil {
		return fmt.Errorf("failed to save play: %w", err)
	}
	session.TransitionPending = false
	if err := s.saveSession(ctx, session); err != nil {
		return err
	}

	cardOut, err := s.messaging.GetCardPayload(ctx, &messaging.GetCardPayloadInput{
		Card: card,
		Play: instance,
	})
	if err != nil {
		return fmt.Errorf("failed to build card payload: %w", err)
	}
	if len(cardOut.Unresolved) > 0 {
		s.logger.Warn("card text has unresolved tokens",
			zap.Int("card_id", card.ID),
			zap.Strings("tokens", cardOut.Unresolved))
	}
	s.send(ctx, channelID, cardOut.Payload)

	s.askPending(ctx, session, card, play.NewMachine(card, instance))
	return nil
}

// askPending sends the question waiting for an answer, if any
func (s *service) askPending(ctx context.Context, session *models.Session, card *models.Card, machine *play.Machine) {
	pending := machine.Pending()
	if pending == nil {
		return
	}

	if !machine.HasSelectable(pending, session.Participants) {
		s.logger.Warn("input has no possible selection",
			zap.Int("card_id", card.ID),
			zap.Int("input_index", pending.Index))
	}

	askedID := ""
	if ids, ok := machine.Resolver().ParseMention(pending.By); ok && len(ids) == 1 {
		askedID = ids[0]
	}

	out, err := s.messaging.GetQuestionPayload(ctx, &messaging.GetQuestionPayloadInput{
		Input:   pending,
		AskedID: askedID,
	})
	if err != nil {
		s.logger.Error("failed to build question payload", zap.Error(err))
		return
	}
	s.send(ctx, session.ChannelID, out.Payload)
}
