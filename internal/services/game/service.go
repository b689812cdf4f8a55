package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/sipdeck/internal/common/clock"
	"github.com/KirkDiggler/sipdeck/internal/common/uuid"
	"github.com/KirkDiggler/sipdeck/internal/dice"
	"github.com/KirkDiggler/sipdeck/internal/metrics"
	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/play"
	cardRepo "github.com/KirkDiggler/sipdeck/internal/repositories/card"
	drinkLedgerRepo "github.com/KirkDiggler/sipdeck/internal/repositories/drink_ledger"
	playerRepo "github.com/KirkDiggler/sipdeck/internal/repositories/player"
	sessionRepo "github.com/KirkDiggler/sipdeck/internal/repositories/session"
	"github.com/KirkDiggler/sipdeck/internal/scheduler"
	"github.com/KirkDiggler/sipdeck/internal/services/messaging"
	"github.com/KirkDiggler/sipdeck/internal/transport"
)

// service implements the Service interface
type service struct {
	minPlayers  int
	maxPlayers  int
	maxSessions int
	cardTimeout time.Duration
	allowNSFW   bool

	sessionRepo     sessionRepo.Repository
	cardRepo        cardRepo.Repository
	playerRepo      playerRepo.Repository
	drinkLedgerRepo drinkLedgerRepo.Repository

	transport     transport.Transport
	messaging     messaging.Service
	scheduler     scheduler.Scheduler
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	metrics       *metrics.Metrics
	logger        *zap.Logger

	// one lock per channel serializes every operation on a session
	mu    sync.Mutex
	locks map[string]*channelLock
}

// channelLock is dropped from the map once nobody holds or waits for it
type channelLock struct {
	sync.Mutex
	refs int
}

// NewService creates a new game service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.CardRepo == nil {
		return nil, ErrNilCardRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.DrinkLedgerRepo == nil {
		return nil, ErrNilDrinkLedger
	}
	if cfg.Transport == nil {
		return nil, ErrNilTransport
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Set default values if not provided
	minPlayers := cfg.MinPlayers
	if minPlayers <= 0 {
		minPlayers = DefaultMinPlayers
	}
	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}
	maxSessions := cfg.MaxSessions
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cardTimeout := cfg.CardTimeout
	if cardTimeout < 0 {
		cardTimeout = DefaultCardTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		minPlayers:      minPlayers,
		maxPlayers:      maxPlayers,
		maxSessions:     maxSessions,
		cardTimeout:     cardTimeout,
		allowNSFW:       cfg.AllowNSFW,
		sessionRepo:     cfg.SessionRepo,
		cardRepo:        cfg.CardRepo,
		playerRepo:      cfg.PlayerRepo,
		drinkLedgerRepo: cfg.DrinkLedgerRepo,
		transport:       cfg.Transport,
		messaging:       cfg.Messaging,
		scheduler:       cfg.Scheduler,
		diceRoller:      cfg.DiceRoller,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		metrics:         cfg.Metrics,
		logger:          logger.Named("game"),
		locks:           make(map[string]*channelLock),
	}, nil
}

// lock acquires the locks of the given channels in a stable order and returns the unlock func
func (s *service) lock(channelIDs ...string) func() {
	ids := append([]string(nil), channelIDs...)
	sort.Strings(ids)

	s.mu.Lock()
	held := make([]*channelLock, 0, len(ids))
	heldIDs := make([]string, 0, len(ids))
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		l, ok := s.locks[id]
		if !ok {
			l = &channelLock{}
			s.locks[id] = l
		}
		l.refs++
		held = append(held, l)
		heldIDs = append(heldIDs, id)
	}
	s.mu.Unlock()

	for _, l := range held {
		l.Lock()
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}

		s.mu.Lock()
		for i, l := range held {
			l.refs--
			if l.refs == 0 && s.locks[heldIDs[i]] == l {
				delete(s.locks, heldIDs[i])
			}
		}
		s.mu.Unlock()
	}
}

func (s *service) getSession(ctx context.Context, channelID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *service) saveSession(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = s.clock.Now()
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// getPlay returns the live play of a channel, nil when there is none
func (s *service) getPlay(ctx context.Context, channelID string) (*models.PlayInstance, error) {
	instance, err := s.sessionRepo.GetPlay(ctx, &sessionRepo.GetPlayInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrPlayNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get play: %w", err)
	}
	return instance, nil
}

func (s *service) getCard(ctx context.Context, cardID int) (*models.Card, error) {
	card, err := s.cardRepo.GetCard(ctx, &cardRepo.GetCardInput{CardID: cardID})
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", cardID, err)
	}
	return card, nil
}

// send delivers a payload, logging failures since the game carries on without the message
func (s *service) send(ctx context.Context, channelID string, payload *models.Payload) {
	if err := s.transport.SendPayload(ctx, channelID, payload); err != nil {
		s.logger.Warn("failed to send payload",
			zap.String("channel_id", channelID),
			zap.String("title", payload.Title),
			zap.Error(err))
	}
}

func (s *service) announce(ctx context.Context, session *models.Session, event messaging.SessionEvent, playerID string, channelID string) {
	out, err := s.messaging.GetSessionStatusMessage(ctx, &messaging.GetSessionStatusMessageInput{
		Event:        event,
		PlayerID:     playerID,
		Participants: len(session.Participants),
		MinPlayers:   s.minPlayers,
		ChannelID:    channelID,
	})
	if err != nil {
		s.logger.Error("failed to build status message", zap.String("event", string(event)), zap.Error(err))
		return
	}
	s.send(ctx, session.ChannelID, out.Payload)
}

func (s *service) refreshActiveSessions(ctx context.Context) {
	count, err := s.sessionRepo.CountSessions(ctx)
	if err != nil {
		s.logger.Warn("failed to count sessions", zap.Error(err))
		return
	}
	s.metrics.SetActiveSessions(count)
}

func (s *service) canModerate(session *models.Session, playerID string, privileged bool) bool {
	return privileged || session.CreatorID == playerID
}

// CreateSession opens a new session in a channel with the creator as first participant
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.ChannelID == "" || input.CreatorID == "" {
		return nil, errors.New("channel ID and creator ID are required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	_, err := s.getSession(ctx, input.ChannelID)
	if err == nil {
		return nil, ErrSessionExists
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}

	count, err := s.sessionRepo.CountSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	if count >= s.maxSessions {
		return nil, ErrTooManySessions
	}

	now := s.clock.Now()
	session := &models.Session{
		ChannelID:    input.ChannelID,
		GuildID:      input.GuildID,
		CreatorID:    input.CreatorID,
		Status:       models.SessionStatusForming,
		Participants: []string{input.CreatorID},
		RecentCards:  []int{},
		AllowNSFW:    s.allowNSFW,
		CreatedAt:    now,
	}

	if err := s.playerRepo.RollupStats(ctx, &playerRepo.RollupStatsInput{
		PlayerID:  input.CreatorID,
		StartGame: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to start player stats: %w", err)
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	s.metrics.SetActiveSessions(count + 1)

	if err := s.transport.AddParticipantMarker(ctx, session.ChannelID, input.CreatorID); err != nil {
		s.logger.Warn("failed to add participant marker", zap.String("player_id", input.CreatorID), zap.Error(err))
	}

	s.logger.Info("session created",
		zap.String("channel_id", session.ChannelID),
		zap.String("creator_id", session.CreatorID))
	s.announce(ctx, session, messaging.SessionEventCreated, input.CreatorID, "")

	return &CreateSessionOutput{
		Session: session,
	}, nil
}

// JoinSession adds a participant to the session of a channel
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil || input.ChannelID == "" || input.PlayerID == "" {
		return nil, errors.New("channel ID and player ID are required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if session.HasParticipant(input.PlayerID) {
		return nil, ErrAlreadyJoined
	}
	if len(session.Participants) >= s.maxPlayers {
		return nil, ErrSessionFull
	}

	if err := s.playerRepo.RollupStats(ctx, &playerRepo.RollupStatsInput{
		PlayerID:  input.PlayerID,
		StartGame: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to start player stats: %w", err)
	}

	session.Participants = append(session.Participants, input.PlayerID)
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if err := s.transport.AddParticipantMarker(ctx, session.ChannelID, input.PlayerID); err != nil {
		s.logger.Warn("failed to add participant marker", zap.String("player_id", input.PlayerID), zap.Error(err))
	}

	out, err := s.messaging.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		PlayerID:     input.PlayerID,
		Participants: len(session.Participants),
		MinPlayers:   s.minPlayers,
		Running:      session.Status.IsRunning(),
	})
	if err != nil {
		s.logger.Error("failed to build join message", zap.Error(err))
	} else {
		s.send(ctx, session.ChannelID, out.Payload)
	}

	return &JoinSessionOutput{
		Session: session,
	}, nil
}

// LeaveSession removes a participant, disbanding the session when too few are left
func (s *service) LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error) {
	if input == nil || input.ChannelID == "" || input.PlayerID == "" {
		return nil, errors.New("channel ID and player ID are required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if !session.RemoveParticipant(input.PlayerID) {
		return nil, ErrNotJoined
	}

	if err := s.transport.RemoveParticipantMarker(ctx, session.ChannelID, input.PlayerID); err != nil {
		s.logger.Warn("failed to remove participant marker", zap.String("player_id", input.PlayerID), zap.Error(err))
	}

	if len(session.Participants) == 0 ||
		(session.Status.IsRunning() && len(session.Participants) < s.minPlayers) {
		if err := s.disband(ctx, session, messaging.SessionEventAbandoned); err != nil {
			return nil, err
		}
		return &LeaveSessionOutput{
			Disbanded: true,
		}, nil
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	s.announce(ctx, session, messaging.SessionEventLeft, input.PlayerID, "")

	return &LeaveSessionOutput{
		Session: session,
	}, nil
}

// disband tears a session down. Effects of a live play are not applied.
func (s *service) disband(ctx context.Context, session *models.Session, event messaging.SessionEvent) error {
	s.scheduler.Cancel(session.ChannelID)

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		ChannelID: session.ChannelID,
	}); err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if err := s.drinkLedgerRepo.DeleteChannelRecords(ctx, &drinkLedgerRepo.DeleteChannelRecordsInput{
		ChannelID: session.ChannelID,
	}); err != nil {
		s.logger.Warn("failed to drop channel ledger", zap.String("channel_id", session.ChannelID), zap.Error(err))
	}

	for _, playerID := range session.Participants {
		if err := s.playerRepo.RollupStats(ctx, &playerRepo.RollupStatsInput{
			PlayerID: playerID,
		}); err != nil {
			s.logger.Warn("failed to roll up stats", zap.String("player_id", playerID), zap.Error(err))
		}
		if err := s.transport.RemoveParticipantMarker(ctx, session.ChannelID, playerID); err != nil {
			s.logger.Warn("failed to remove participant marker", zap.String("player_id", playerID), zap.Error(err))
		}
	}

	s.refreshActiveSessions(ctx)
	s.logger.Info("session disbanded",
		zap.String("channel_id", session.ChannelID),
		zap.String("event", string(event)))
	s.announce(ctx, session, event, "", "")

	return nil
}

// StartSession starts dealing cards
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if session.Status.IsRunning() {
		return nil, ErrAlreadyRunning
	}
	if !session.HasParticipant(input.PlayerID) {
		return nil, ErrNotJoined
	}
	if len(session.Participants) < s.minPlayers {
		return nil, ErrNotEnoughPlayers
	}

	// advance persists the running status together with the first card
	session.Status = models.SessionStatusRunning
	if _, err := s.advance(ctx, session); err != nil {
		session.Status = models.SessionStatusForming
		session.TransitionPending = false
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			s.logger.Warn("failed to roll back session start",
				zap.String("channel_id", session.ChannelID),
				zap.Error(saveErr))
		}
		return nil, err
	}
	s.announce(ctx, session, messaging.SessionEventStarted, input.PlayerID, "")

	return &StartSessionOutput{
		Session: session,
	}, nil
}

// loadRunning returns a running session the player takes part in
func (s *service) loadRunning(ctx context.Context, channelID, playerID string) (*models.Session, error) {
	session, err := s.getSession(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !session.Status.IsRunning() {
		return nil, ErrNotRunning
	}
	if !session.HasParticipant(playerID) {
		return nil, ErrNotJoined
	}
	return session, nil
}

// SubmitAnswer records an answer for the pending question of the current card
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil || input.ChannelID == "" || input.PlayerID == "" {
		return nil, errors.New("channel ID and player ID are required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.loadRunning(ctx, input.ChannelID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	// re-read the play, a transition may have replaced it while the answer was in flight
	instance, err := s.getPlay(ctx, session.ChannelID)
	if err != nil {
		return nil, err
	}
	if instance == nil || !instance.Revealed || session.TransitionPending {
		return nil, ErrNoCardInProgress
	}

	card, err := s.getCard(ctx, instance.CardID)
	if err != nil {
		return nil, err
	}

	machine := play.NewMachine(card, instance)
	accepted, err := machine.Accept(ctx, &play.AnswerInput{
		ActorID: input.PlayerID,
		Raw:     input.Raw,
		Roster:  session.Participants,
		Lookup:  s.transport,
	})
	if err != nil {
		s.metrics.AnswerSubmitted(metrics.AnswerRejected)
		return nil, err
	}
	s.metrics.AnswerSubmitted(metrics.AnswerAccepted)

	if err := s.sessionRepo.SavePlay(ctx, &sessionRepo.SavePlayInput{Play: instance}); err != nil {
		return nil, fmt.Errorf("failed to save play: %w", err)
	}

	answerOut, err := s.messaging.GetAnswerPayload(ctx, &messaging.GetAnswerPayloadInput{
		ActorID:     input.PlayerID,
		Raw:         input.Raw,
		Participant: accepted.Participant,
	})
	if err != nil {
		s.logger.Error("failed to build answer payload", zap.Error(err))
	} else {
		s.send(ctx, session.ChannelID, answerOut.Payload)
	}

	output := &SubmitAnswerOutput{
		Answer:      accepted.Answer,
		Participant: accepted.Participant,
		Complete:    accepted.Complete,
	}

	if !accepted.Complete {
		s.askPending(ctx, session, card, machine)
		return output, nil
	}

	advanced, err := s.advance(ctx, session)
	if err != nil {
		return nil, err
	}
	output.Advanced = advanced

	return output, nil
}

// NextCard deals the next card once the current one is complete
func (s *service) NextCard(ctx context.Context, input *NextCardInput) (*NextCardOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.loadRunning(ctx, input.ChannelID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !session.TransitionPending {
		instance, err := s.getPlay(ctx, session.ChannelID)
		if err != nil {
			return nil, err
		}
		if instance != nil {
			card, err := s.getCard(ctx, instance.CardID)
			if err != nil {
				return nil, err
			}
			if !play.NewMachine(card, instance).Complete() {
				return nil, ErrCardNotComplete
			}
		}
	}

	advanced, err := s.advance(ctx, session)
	if err != nil {
		return nil, err
	}

	return &NextCardOutput{
		Advanced: advanced,
	}, nil
}

// SkipCard deals the next card regardless of the current one.
// A reveal that is still pending is superseded by the new card.
func (s *service) SkipCard(ctx context.Context, input *SkipCardInput) (*SkipCardOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if !s.canModerate(session, input.PlayerID, input.Privileged) {
		return nil, ErrNotPermitted
	}
	if !session.Status.IsRunning() {
		return nil, ErrNotRunning
	}

	inProgress := false
	instance, err := s.getPlay(ctx, session.ChannelID)
	if err != nil {
		return nil, err
	}
	if instance != nil {
		card, err := s.getCard(ctx, instance.CardID)
		if err != nil {
			return nil, err
		}
		inProgress = !play.NewMachine(card, instance).Complete()
	}

	if session.TransitionPending {
		s.scheduler.Cancel(session.ChannelID)
		session.TransitionPending = false
	}

	out, err := s.messaging.GetSessionStatusMessage(ctx, &messaging.GetSessionStatusMessageInput{
		Event:          messaging.SessionEventSkipped,
		PlayerID:       input.PlayerID,
		CardInProgress: inProgress,
	})
	if err != nil {
		s.logger.Error("failed to build skip message", zap.Error(err))
	} else {
		s.send(ctx, session.ChannelID, out.Payload)
	}

	if _, err := s.advance(ctx, session); err != nil {
		return nil, err
	}

	return &SkipCardOutput{
		CardInProgress: inProgress,
	}, nil
}

// DisbandSession ends a session
func (s *service) DisbandSession(ctx context.Context, input *DisbandSessionInput) (*DisbandSessionOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if !s.canModerate(session, input.PlayerID, input.Privileged) {
		return nil, ErrNotPermitted
	}

	if err := s.disband(ctx, session, messaging.SessionEventDisbanded); err != nil {
		return nil, err
	}

	return &DisbandSessionOutput{
		Participants: session.Participants,
	}, nil
}

// TransferSession moves a session to another channel
func (s *service) TransferSession(ctx context.Context, input *TransferSessionInput) (*TransferSessionOutput, error) {
	if input == nil || input.FromChannelID == "" || input.ToChannelID == "" {
		return nil, errors.New("source and target channel IDs are required")
	}

	unlock := s.lock(input.FromChannelID, input.ToChannelID)
	defer unlock()

	session, err := s.getSession(ctx, input.FromChannelID)
	if err != nil {
		return nil, err
	}
	if !s.canModerate(session, input.PlayerID, input.Privileged) {
		return nil, ErrNotPermitted
	}
	if input.FromChannelID == input.ToChannelID {
		return &TransferSessionOutput{Session: session}, nil
	}

	s.scheduler.Cancel(input.FromChannelID)

	moved, err := s.sessionRepo.RekeySession(ctx, &sessionRepo.RekeySessionInput{
		FromChannelID: input.FromChannelID,
		ToChannelID:   input.ToChannelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrChannelTaken) {
			s.rescheduleIfPending(ctx, session)
			return nil, ErrChannelTaken
		}
		return nil, fmt.Errorf("failed to move session: %w", err)
	}

	if err := s.drinkLedgerRepo.RekeyChannel(ctx, &drinkLedgerRepo.RekeyChannelInput{
		FromChannelID: input.FromChannelID,
		ToChannelID:   input.ToChannelID,
	}); err != nil {
		s.logger.Warn("failed to move channel ledger", zap.Error(err))
	}

	for _, playerID := range moved.Participants {
		if err := s.transport.RemoveParticipantMarker(ctx, input.FromChannelID, playerID); err != nil {
			s.logger.Warn("failed to remove participant marker", zap.String("player_id", playerID), zap.Error(err))
		}
		if err := s.transport.AddParticipantMarker(ctx, input.ToChannelID, playerID); err != nil {
			s.logger.Warn("failed to add participant marker", zap.String("player_id", playerID), zap.Error(err))
		}
	}

	s.rescheduleIfPending(ctx, moved)

	s.logger.Info("session transferred",
		zap.String("from_channel_id", input.FromChannelID),
		zap.String("to_channel_id", input.ToChannelID))

	// announce in the old channel where the players still are
	session.ChannelID = input.FromChannelID
	s.announce(ctx, session, messaging.SessionEventTransferred, input.PlayerID, input.ToChannelID)

	return &TransferSessionOutput{
		Session: moved,
	}, nil
}

// rescheduleIfPending schedules the reveal of the dealt card again
func (s *service) rescheduleIfPending(ctx context.Context, session *models.Session) bool {
	if !session.TransitionPending {
		return false
	}
	instance, err := s.getPlay(ctx, session.ChannelID)
	if err != nil {
		s.logger.Warn("failed to load play for reschedule", zap.String("channel_id", session.ChannelID), zap.Error(err))
		return false
	}
	if instance == nil || instance.Revealed {
		return false
	}
	s.scheduleReveal(session.ChannelID, instance.ID)
	return true
}

// GetSession returns the session of a channel together with its live play
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	session, err := s.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	output := &GetSessionOutput{Session: session}

	instance, err := s.getPlay(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if instance != nil {
		card, err := s.getCard(ctx, instance.CardID)
		if err != nil {
			return nil, err
		}
		output.Play = instance
		output.Card = card
	}

	drinks, err := s.drinkLedgerRepo.GetDrinkRecordsForChannel(ctx, &drinkLedgerRepo.GetDrinkRecordsForChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get drink records: %w", err)
	}
	output.Drinks = drinks.Records

	return output, nil
}

// GetPlayerStats returns the counters of a player, zero for unknown players
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("player ID is required")
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to get player: %w", err)
		}
		player = &models.Player{ID: input.PlayerID}
	}

	recent, err := s.drinkLedgerRepo.GetDrinkRecordsForPlayer(ctx, &drinkLedgerRepo.GetDrinkRecordsForPlayerInput{
		PlayerID: input.PlayerID,
		Limit:    RecentDrinks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get drink records: %w", err)
	}

	return &GetPlayerStatsOutput{
		Player: player,
		Recent: recent.Records,
	}, nil
}

// LikeCurrentCard records a like for the card on the table
func (s *service) LikeCurrentCard(ctx context.Context, input *LikeCurrentCardInput) (*LikeCurrentCardOutput, error) {
	if input == nil || input.ChannelID == "" || input.PlayerID == "" {
		return nil, errors.New("channel ID and player ID are required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.loadRunning(ctx, input.ChannelID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	instance, err := s.getPlay(ctx, session.ChannelID)
	if err != nil {
		return nil, err
	}
	if instance == nil || !instance.Revealed {
		return nil, ErrNoCardInProgress
	}

	liked, err := s.cardRepo.AddLike(ctx, &cardRepo.AddLikeInput{
		CardID:   instance.CardID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to like card: %w", err)
	}

	return &LikeCurrentCardOutput{
		CardID: instance.CardID,
		Added:  liked.Added,
		Likes:  liked.Likes,
	}, nil
}

// SetNSFW toggles whether nsfw cards may be dealt
func (s *service) SetNSFW(ctx context.Context, input *SetNSFWInput) (*SetNSFWOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	unlock := s.lock(input.ChannelID)
	defer unlock()

	session, err := s.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if !s.canModerate(session, input.PlayerID, input.Privileged) {
		return nil, ErrNotPermitted
	}

	session.AllowNSFW = input.Allow
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SetNSFWOutput{
		Session: session,
	}, nil
}

// Recover reschedules the pending transitions of stored sessions after a restart
func (s *service) Recover(ctx context.Context, input *RecoverInput) (*RecoverOutput, error) {
	listed, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	output := &RecoverOutput{Sessions: len(listed.Sessions)}
	s.metrics.SetActiveSessions(len(listed.Sessions))

	for _, stored := range listed.Sessions {
		if !stored.TransitionPending {
			continue
		}

		unlock := s.lock(stored.ChannelID)
		session, err := s.getSession(ctx, stored.ChannelID)
		if err != nil {
			unlock()
			s.logger.Warn("failed to reload session", zap.String("channel_id", stored.ChannelID), zap.Error(err))
			continue
		}

		if s.rescheduleIfPending(ctx, session) {
			output.Rescheduled++
		} else if session.TransitionPending {
			// nothing left to reveal, release the marker so the game can go on
			session.TransitionPending = false
			if err := s.saveSession(ctx, session); err != nil {
				s.logger.Warn("failed to clear transition marker", zap.String("channel_id", session.ChannelID), zap.Error(err))
			}
		}
		unlock()
	}

	s.logger.Info("sessions recovered",
		zap.Int("sessions", output.Sessions),
		zap.Int("rescheduled", output.Rescheduled))

	return output, nil
}
