package game

import (
	"errors"

	"github.com/KirkDiggler/sipdeck/internal/play"
)

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  GameError = "there is no game in this channel"
	ErrSessionExists    GameError = "a game already exists in this channel"
	ErrTooManySessions  GameError = "too many games are running, try again later"
	ErrAlreadyJoined    GameError = "you already joined the game"
	ErrNotJoined        GameError = "you are not part of the game"
	ErrSessionFull      GameError = "the game is full"
	ErrNotEnoughPlayers GameError = "not enough players"
	ErrAlreadyRunning   GameError = "the game is already running"
	ErrNotRunning       GameError = "the game has not started yet"
	ErrNoCardInProgress GameError = "no card is in progress"
	ErrCardNotComplete  GameError = "the current card is still waiting for answers"
	ErrNoPlayableCard   GameError = "no playable card for this many players"
	ErrChannelTaken     GameError = "the target channel already has a game"
	ErrNotPermitted     GameError = "you are not allowed to do that"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilCardRepo      GameError = "card repository cannot be nil"
	ErrNilPlayerRepo    GameError = "player repository cannot be nil"
	ErrNilDrinkLedger   GameError = "drink ledger repository cannot be nil"
	ErrNilTransport     GameError = "transport cannot be nil"
	ErrNilMessaging     GameError = "messaging service cannot be nil"
	ErrNilScheduler     GameError = "scheduler cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)

// userErrors are shown to the participant who caused them
var userErrors = map[GameError]bool{
	ErrSessionNotFound:  true,
	ErrSessionExists:    true,
	ErrTooManySessions:  true,
	ErrAlreadyJoined:    true,
	ErrNotJoined:        true,
	ErrSessionFull:      true,
	ErrNotEnoughPlayers: true,
	ErrAlreadyRunning:   true,
	ErrNotRunning:       true,
	ErrNoCardInProgress: true,
	ErrCardNotComplete:  true,
	ErrNoPlayableCard:   true,
	ErrChannelTaken:     true,
	ErrNotPermitted:     true,
}

// IsUserError reports whether err should be reported back to the acting participant
func IsUserError(err error) bool {
	var gameErr GameError
	if errors.As(err, &gameErr) {
		return userErrors[gameErr]
	}
	return false
}

// IsInputError reports whether err is a rejected answer
func IsInputError(err error) bool {
	return play.IsAnswerError(err)
}
