package messaging

import "context"

// Service builds the payloads sent to the chat for every game event
type Service interface {
	// GetCardPayload renders the text of a drawn card
	GetCardPayload(ctx context.Context, input *GetCardPayloadInput) (*GetCardPayloadOutput, error)

	// GetQuestionPayload asks the pending question of a card
	GetQuestionPayload(ctx context.Context, input *GetQuestionPayloadInput) (*PayloadOutput, error)

	// GetAnswerPayload confirms an accepted answer
	GetAnswerPayload(ctx context.Context, input *GetAnswerPayloadInput) (*PayloadOutput, error)

	// GetEffectsPayload summarizes the effects applied by a card
	GetEffectsPayload(ctx context.Context, input *GetEffectsPayloadInput) (*PayloadOutput, error)

	// GetJoinMessage greets a participant joining a session
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*PayloadOutput, error)

	// GetSessionStatusMessage announces a change of the session lifecycle
	GetSessionStatusMessage(ctx context.Context, input *GetSessionStatusMessageInput) (*PayloadOutput, error)

	// GetSessionPayload describes a session, its table and its drinks so far
	GetSessionPayload(ctx context.Context, input *GetSessionPayloadInput) (*PayloadOutput, error)

	// GetStatsPayload shows the counters of a player
	GetStatsPayload(ctx context.Context, input *GetStatsPayloadInput) (*PayloadOutput, error)

	// GetHelpPayload lists the available commands
	GetHelpPayload(ctx context.Context, input *GetHelpPayloadInput) (*PayloadOutput, error)

	// GetErrorPayload turns an error into a message for the participant
	GetErrorPayload(ctx context.Context, input *GetErrorPayloadInput) (*PayloadOutput, error)
}
