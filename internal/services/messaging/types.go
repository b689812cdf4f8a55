package messaging

import (
	"github.com/KirkDiggler/sipdeck/internal/dice"
	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/play"
)

// SessionEvent is a change of the session lifecycle worth announcing
type SessionEvent string

const (
	SessionEventCreated     SessionEvent = "created"
	SessionEventStarted     SessionEvent = "started"
	SessionEventLeft        SessionEvent = "left"
	SessionEventDisbanded   SessionEvent = "disbanded"
	SessionEventAbandoned   SessionEvent = "abandoned"
	SessionEventTransferred SessionEvent = "transferred"
	SessionEventSkipped     SessionEvent = "skipped"
)

// PayloadOutput wraps a built payload
type PayloadOutput struct {
	Payload *models.Payload
}

// GetCardPayloadInput contains the card and its drawn play
type GetCardPayloadInput struct {
	Card *models.Card
	Play *models.PlayInstance

	// Markup renders participant references, defaults to chat mentions
	Markup play.Markup
}

// GetCardPayloadOutput contains the rendered card
type GetCardPayloadOutput struct {
	Payload *models.Payload

	// Unresolved lists the template tokens left in the text
	Unresolved []string
}

// GetQuestionPayloadInput contains the pending question
type GetQuestionPayloadInput struct {
	Input *models.Input

	// AskedID is the participant expected to answer, if a single one is
	AskedID string
}

// GetAnswerPayloadInput contains an accepted answer
type GetAnswerPayloadInput struct {
	ActorID string

	// Raw is the text the participant sent
	Raw string

	// Participant is set when a participant was chosen
	Participant *models.ParticipantRef
}

// GetEffectsPayloadInput contains the resolved effects of a card
type GetEffectsPayloadInput struct {
	Effects []*play.EffectResult
	Markup  play.Markup
}

// GetJoinMessageInput contains parameters for a join greeting
type GetJoinMessageInput struct {
	PlayerID     string
	Participants int
	MinPlayers   int
	Running      bool
}

// GetSessionStatusMessageInput contains parameters for a lifecycle announcement
type GetSessionStatusMessageInput struct {
	Event SessionEvent

	// PlayerID is the participant the event is about, if any
	PlayerID string

	Participants int
	MinPlayers   int

	// ChannelID is the destination of a transfer
	ChannelID string

	// CardInProgress tells whether a skip dropped a card
	CardInProgress bool
}

// GetStatsPayloadInput contains the player to show
type GetStatsPayloadInput struct {
	Player *models.Player

	// Recent are the last effects the player received, newest first
	Recent []*models.DrinkRecord
}

// GetSessionPayloadInput contains the session to describe
type GetSessionPayloadInput struct {
	Session *models.Session

	// Card and Play are nil when no card is on the table
	Card *models.Card
	Play *models.PlayInstance

	// Drinks are the effects applied in the session so far
	Drinks []*models.DrinkRecord
}

// Command describes one chat command
type Command struct {
	Name        string
	Usage       string
	Description string
}

// GetHelpPayloadInput contains the commands to list
type GetHelpPayloadInput struct {
	Prefix   string
	Commands []Command
}

// GetErrorPayloadInput contains the error to show
type GetErrorPayloadInput struct {
	Err error

	// Level overrides the default error level
	Level models.Level
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller picks flavor lines, defaults to an unseeded roller
	Roller dice.Roller
}
