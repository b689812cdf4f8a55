package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

// TransportConfig holds the configuration of the Discord transport
type TransportConfig struct {
	API API

	// PlayerRole is the role given to participants, markers are disabled when empty
	PlayerRole string

	Logger *zap.Logger
}

// Transport delivers game payloads to Discord channels
type Transport struct {
	api        API
	playerRole string
	logger     *zap.Logger
}

// NewTransport creates a new Discord transport
func NewTransport(cfg *TransportConfig) (*Transport, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.API == nil {
		return nil, errors.New("API cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Transport{
		api:        cfg.API,
		playerRole: cfg.PlayerRole,
		logger:     logger.Named("transport"),
	}, nil
}

// SendPayload sends the payload as an embed
func (t *Transport) SendPayload(ctx context.Context, channelID string, payload *models.Payload) error {
	if payload == nil {
		return errors.New("payload cannot be nil")
	}

	var author *discordgo.User
	if payload.ParticipantID != "" {
		user, err := t.api.User(payload.ParticipantID)
		if err != nil {
			t.logger.Warn("failed to look up payload author",
				zap.String("user_id", payload.ParticipantID),
				zap.Error(err))
		} else {
			author = user
		}
	}

	if _, err := t.api.ChannelMessageSendEmbed(channelID, renderEmbed(payload, author)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// ResolveParticipant resolves a user mention or ID
func (t *Transport) ResolveParticipant(ctx context.Context, token string) (*models.ParticipantRef, error) {
	id, ok := parseUserMention(token)
	if !ok {
		return nil, nil
	}

	user, err := t.api.User(id)
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user %s: %w", id, err)
	}

	return &models.ParticipantRef{
		ID:   user.ID,
		Name: displayName(user),
	}, nil
}

// AddParticipantMarker gives the player role to a participant
func (t *Transport) AddParticipantMarker(ctx context.Context, channelID, participantID string) error {
	if t.playerRole == "" {
		return nil
	}
	guildID, err := t.guildOf(channelID)
	if err != nil {
		return err
	}
	if err := t.api.GuildMemberRoleAdd(guildID, participantID, t.playerRole); err != nil {
		return fmt.Errorf("failed to add player role: %w", err)
	}
	return nil
}

// RemoveParticipantMarker takes the player role away from a participant
func (t *Transport) RemoveParticipantMarker(ctx context.Context, channelID, participantID string) error {
	if t.playerRole == "" {
		return nil
	}
	guildID, err := t.guildOf(channelID)
	if err != nil {
		return err
	}
	if err := t.api.GuildMemberRoleRemove(guildID, participantID, t.playerRole); err != nil {
		return fmt.Errorf("failed to remove player role: %w", err)
	}
	return nil
}

func (t *Transport) guildOf(channelID string) (string, error) {
	channel, err := t.api.Channel(channelID)
	if err != nil {
		return "", fmt.Errorf("failed to look up channel %s: %w", channelID, err)
	}
	if channel.GuildID == "" {
		return "", fmt.Errorf("channel %s is not part of a guild", channelID)
	}
	return channel.GuildID, nil
}
