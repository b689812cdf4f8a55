package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/sipdeck/internal/common/clock"
	"github.com/KirkDiggler/sipdeck/internal/common/uuid"
	"github.com/KirkDiggler/sipdeck/internal/dice"
	"github.com/KirkDiggler/sipdeck/internal/metrics"
	"github.com/KirkDiggler/sipdeck/internal/models"
	cardRepo "github.com/KirkDiggler/sipdeck/internal/repositories/card"
	drinkLedgerRepo "github.com/KirkDiggler/sipdeck/internal/repositories/drink_ledger"
	playerRepo "github.com/KirkDiggler/sipdeck/internal/repositories/player"
	sessionRepo "github.com/KirkDiggler/sipdeck/internal/repositories/session"
	"github.com/KirkDiggler/sipdeck/internal/scheduler"
	"github.com/KirkDiggler/sipdeck/internal/services/messaging"
	"github.com/KirkDiggler/sipdeck/internal/transport"
)

// Default limits
const (
	DefaultMinPlayers  = 2
	DefaultMaxPlayers  = 20
	DefaultMaxSessions = 100
	DefaultCardTimeout = 2 * time.Second

	// RecentDrinks is how many ledger records the stats show
	RecentDrinks = 5
)

// Config holds configuration for the game service
type Config struct {
	// Minimum number of participants to start and keep a running session
	MinPlayers int

	// Maximum number of participants per session
	MaxPlayers int

	// Maximum number of concurrent sessions
	MaxSessions int

	// Delay between dealing a card and revealing it
	CardTimeout time.Duration

	// Whether new sessions may be dealt nsfw cards
	AllowNSFW bool

	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	CardRepo        cardRepo.Repository
	PlayerRepo      playerRepo.Repository
	DrinkLedgerRepo drinkLedgerRepo.Repository

	// Service dependencies
	Transport     transport.Transport
	Messaging     messaging.Service
	Scheduler     scheduler.Scheduler
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// ChannelID is the channel the session is played in
	ChannelID string

	// GuildID is the server the channel belongs to
	GuildID string

	// CreatorID is the user creating the session
	CreatorID string
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.Session
}

// JoinSessionInput contains parameters for joining a session
type JoinSessionInput struct {
	ChannelID string
	PlayerID  string
}

// JoinSessionOutput contains the session after joining
type JoinSessionOutput struct {
	Session *models.Session
}

// LeaveSessionInput contains parameters for leaving a session
type LeaveSessionInput struct {
	ChannelID string
	PlayerID  string
}

// LeaveSessionOutput contains the result of leaving a session
type LeaveSessionOutput struct {
	// Session is nil when the session was disbanded
	Session *models.Session

	// Disbanded is set when too few participants were left to continue
	Disbanded bool
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	ChannelID string
	PlayerID  string
}

// StartSessionOutput contains the started session
type StartSessionOutput struct {
	Session *models.Session
}

// SubmitAnswerInput contains a raw answer to the pending question
type SubmitAnswerInput struct {
	ChannelID string
	PlayerID  string
	Raw       string
}

// SubmitAnswerOutput contains the recorded answer
type SubmitAnswerOutput struct {
	// Answer is the canonical encoding that was recorded
	Answer string

	// Participant is set when the answer chose a participant
	Participant *models.ParticipantRef

	// Complete is set when the card has no pending question left
	Complete bool

	// Advanced is set when the next card was dealt
	Advanced bool
}

// NextCardInput contains parameters for dealing the next card
type NextCardInput struct {
	ChannelID string
	PlayerID  string
}

// NextCardOutput contains the result of dealing the next card
type NextCardOutput struct {
	// Advanced is false when a card was already on its way
	Advanced bool
}

// SkipCardInput contains parameters for skipping the current card
type SkipCardInput struct {
	ChannelID string
	PlayerID  string

	// Privileged marks the guild owner, who may skip in any session
	Privileged bool
}

// SkipCardOutput contains the result of skipping
type SkipCardOutput struct {
	// CardInProgress is set when the skipped card was still waiting for answers
	CardInProgress bool
}

// DisbandSessionInput contains parameters for disbanding a session
type DisbandSessionInput struct {
	ChannelID string
	PlayerID  string

	// Privileged marks the guild owner, who may disband any session
	Privileged bool
}

// DisbandSessionOutput contains the result of disbanding
type DisbandSessionOutput struct {
	// Participants were in the session when it ended
	Participants []string
}

// TransferSessionInput contains parameters for moving a session
type TransferSessionInput struct {
	FromChannelID string
	ToChannelID   string
	PlayerID      string

	// Privileged marks the guild owner, who may move any session
	Privileged bool
}

// TransferSessionOutput contains the moved session
type TransferSessionOutput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	ChannelID string
}

// GetSessionOutput contains the session and its live play
type GetSessionOutput struct {
	Session *models.Session

	// Play is nil when no card is on the table
	Play *models.PlayInstance

	// Card is the card of Play
	Card *models.Card

	// Drinks are the effects applied in this session, oldest first
	Drinks []*models.DrinkRecord
}

// GetPlayerStatsInput contains parameters for retrieving player statistics
type GetPlayerStatsInput struct {
	PlayerID string
}

// GetPlayerStatsOutput contains the statistics of a player
type GetPlayerStatsOutput struct {
	Player *models.Player

	// Recent are the last effects the player received, newest first
	Recent []*models.DrinkRecord
}

// LikeCurrentCardInput contains parameters for liking the card on the table
type LikeCurrentCardInput struct {
	ChannelID string
	PlayerID  string
}

// LikeCurrentCardOutput contains the result of liking a card
type LikeCurrentCardOutput struct {
	CardID int

	// Added is false when the player already liked the card
	Added bool
	Likes int
}

// SetNSFWInput contains parameters for toggling nsfw cards
type SetNSFWInput struct {
	ChannelID string
	PlayerID  string
	Allow     bool

	// Privileged marks the guild owner
	Privileged bool
}

// SetNSFWOutput contains the updated session
type SetNSFWOutput struct {
	Session *models.Session
}

// RecoverInput contains parameters for recovering sessions
type RecoverInput struct {
}

// RecoverOutput contains the result of recovering sessions
type RecoverOutput struct {
	// Sessions is the number of stored sessions
	Sessions int

	// Rescheduled is the number of reveals scheduled again
	Rescheduled int
}
