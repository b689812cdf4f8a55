package play

import "errors"

// AnswerError is a rejection of a submitted answer that is shown to the participant
type AnswerError string

func (e AnswerError) Error() string {
	return string(e)
}

const (
	ErrNotAllowed         AnswerError = "you are not allowed to answer this question"
	ErrInvalidAnswer      AnswerError = "not a valid answer"
	ErrUnknownParticipant AnswerError = "unknown participant"
	ErrNotPlaying         AnswerError = "participant is not playing"
	ErrSelectionRejected  AnswerError = "participant cannot be chosen"
	ErrNoPendingInput     AnswerError = "no question is waiting for an answer"
)

var (
	// ErrNotEnoughParticipants is returned when a card needs more participants than the roster holds
	ErrNotEnoughParticipants = errors.New("not enough participants to draw from")

	// ErrMissingValue is reported when a play lacks the drawn value of an effect
	ErrMissingValue = errors.New("play instance has no drawn value for effect")
)

// IsAnswerError reports whether err is a rejected answer
func IsAnswerError(err error) bool {
	var answerErr AnswerError
	return errors.As(err, &answerErr)
}
