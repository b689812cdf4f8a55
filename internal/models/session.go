package models

import (
	"time"
)

// SessionStatus represents the current state of a play session
type SessionStatus string

const (
	// SessionStatusForming indicates a session is accepting participants
	SessionStatusForming SessionStatus = "forming"

	// SessionStatusRunning indicates cards are being played
	SessionStatusRunning SessionStatus = "running"

	// SessionStatusDisbanded indicates the session has ended
	SessionStatusDisbanded SessionStatus = "disbanded"
)

// IsForming returns true if the session is accepting participants but not started
func (s SessionStatus) IsForming() bool {
	return s == SessionStatusForming
}

// IsRunning returns true if cards are being played
func (s SessionStatus) IsRunning() bool {
	return s == SessionStatusRunning
}

// Session is one play session in a channel
type Session struct {
	// ChannelID is the channel the session is played in, it is the unique key
	ChannelID string

	// GuildID is the server the channel belongs to
	GuildID string

	// CreatorID is the user who created the session
	CreatorID string

	// Status is the current state of the session
	Status SessionStatus

	// Participants contains the IDs of the participants, in join order
	Participants []string

	// RecentCards contains the IDs of cards played since the history was last cleared
	RecentCards []int

	// AllowNSFW lets the selector pick cards flagged as nsfw
	AllowNSFW bool

	// TransitionPending is set while the next card is waiting to be revealed
	TransitionPending bool

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

// HasParticipant reports whether the user takes part in the session
func (s *Session) HasParticipant(playerID string) bool {
	for _, id := range s.Participants {
		if id == playerID {
			return true
		}
	}
	return false
}

// RemoveParticipant drops the user from the roster, returning false if absent
func (s *Session) RemoveParticipant(playerID string) bool {
	for i, id := range s.Participants {
		if id == playerID {
			s.Participants = append(s.Participants[:i], s.Participants[i+1:]...)
			return true
		}
	}
	return false
}

// HasPlayedRecently reports whether the card is in the recent history
func (s *Session) HasPlayedRecently(cardID int) bool {
	for _, id := range s.RecentCards {
		if id == cardID {
			return true
		}
	}
	return false
}
