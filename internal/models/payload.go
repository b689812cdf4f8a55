package models

// Level sets the tone of an outgoing message
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

// Field is a named value shown in a payload
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Payload is the structured message handed to the transport
type Payload struct {
	Title string
	Body  string

	// ParticipantID is shown as the author of the message when set
	ParticipantID string

	Level  Level
	Color  int
	Fields []Field
}

// ParticipantRef is a resolved reference to a user on the transport
type ParticipantRef struct {
	ID   string
	Name string
}
