package session

import "github.com/KirkDiggler/sipdeck/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	ChannelID string
}

type DeleteSessionInput struct {
	ChannelID string
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type RekeySessionInput struct {
	FromChannelID string
	ToChannelID   string
}

type SavePlayInput struct {
	Play *models.PlayInstance
}

type GetPlayInput struct {
	ChannelID string
}

type DeletePlayInput struct {
	ChannelID string
}
