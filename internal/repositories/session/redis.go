package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "session:"
	playKeyPrefix     = "play:"
	activeSessionsKey = "active_sessions"
)

// Play hash fields
const (
	fieldID           = "id"
	fieldCardID       = "card_id"
	fieldParticipants = "participants"
	fieldValues       = "values"
	fieldAnswers      = "answers"
	fieldRevealed     = "revealed"
	fieldCreatedAt    = "created_at"
)

var (
	// ErrSessionNotFound is returned when a channel has no session
	ErrSessionNotFound = errors.New("session not found")

	// ErrPlayNotFound is returned when a channel has no live play instance
	ErrPlayNotFound = errors.New("play not found")

	// ErrChannelTaken is returned when rekeying onto a channel that already has a session
	ErrChannelTaken = errors.New("channel already has a session")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func sessionKey(channelID string) string {
	return sessionKeyPrefix + channelID
}

func playKey(channelID string) string {
	return playKeyPrefix + channelID
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ChannelID == "" {
		return errors.New("session channel ID cannot be empty")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(input.Session.ChannelID), sessionJSON, 0)
	pipe.SAdd(ctx, activeSessionsKey, input.Session.ChannelID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by channel from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session and its play instance from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, sessionKey(input.ChannelID))
	pipe.Del(ctx, playKey(input.ChannelID))
	pipe.SRem(ctx, activeSessionsKey, input.ChannelID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// ListSessions retrieves every session referenced by the active set
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	channelIDs, err := r.client.SMembers(ctx, activeSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	output := &ListSessionsOutput{
		Sessions: make([]*models.Session, 0, len(channelIDs)),
	}

	for _, channelID := range channelIDs {
		session, err := r.GetSession(ctx, &GetSessionInput{ChannelID: channelID})
		if err != nil {
			// the set can briefly point at a session removed concurrently
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			return nil, err
		}
		output.Sessions = append(output.Sessions, session)
	}

	return output, nil
}

// CountSessions returns the size of the active set
func (r *redisRepository) CountSessions(ctx context.Context) (int, error) {
	count, err := r.client.SCard(ctx, activeSessionsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return int(count), nil
}

// RekeySession moves a session and its live play instance to another channel
func (r *redisRepository) RekeySession(ctx context.Context, input *RekeySessionInput) (*models.Session, error) {
	if input == nil || input.FromChannelID == "" || input.ToChannelID == "" {
		return nil, errors.New("input and channel IDs cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{ChannelID: input.FromChannelID})
	if err != nil {
		return nil, err
	}

	if input.FromChannelID == input.ToChannelID {
		return session, nil
	}

	exists, err := r.client.Exists(ctx, sessionKey(input.ToChannelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check channel: %w", err)
	}
	if exists > 0 {
		return nil, ErrChannelTaken
	}

	play, err := r.GetPlay(ctx, &GetPlayInput{ChannelID: input.FromChannelID})
	if err != nil && !errors.Is(err, ErrPlayNotFound) {
		return nil, err
	}

	session.ChannelID = input.ToChannelID
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(input.ToChannelID), sessionJSON, 0)
	pipe.SAdd(ctx, activeSessionsKey, input.ToChannelID)
	pipe.Del(ctx, sessionKey(input.FromChannelID), playKey(input.FromChannelID))
	pipe.SRem(ctx, activeSessionsKey, input.FromChannelID)
	if play != nil {
		play.ChannelID = input.ToChannelID
		pipe.HSet(ctx, playKey(input.ToChannelID), playFields(play))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to rekey session: %w", err)
	}

	return session, nil
}

func playFields(play *models.PlayInstance) map[string]interface{} {
	return map[string]interface{}{
		fieldID:           play.ID,
		fieldCardID:       play.CardID,
		fieldParticipants: models.JoinList(play.Participants),
		fieldValues:       models.JoinInts(play.Values),
		fieldAnswers:      models.JoinList(play.Answers),
		fieldRevealed:     strconv.FormatBool(play.Revealed),
		fieldCreatedAt:    play.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// SavePlay persists a play instance as a hash of delimited lists
func (r *redisRepository) SavePlay(ctx context.Context, input *SavePlayInput) error {
	if input == nil || input.Play == nil {
		return errors.New("input and play cannot be nil")
	}
	if input.Play.ChannelID == "" {
		return errors.New("play channel ID cannot be empty")
	}

	if err := r.client.HSet(ctx, playKey(input.Play.ChannelID), playFields(input.Play)).Err(); err != nil {
		return fmt.Errorf("failed to save play: %w", err)
	}

	return nil
}

// GetPlay retrieves the play instance of a channel
func (r *redisRepository) GetPlay(ctx context.Context, input *GetPlayInput) (*models.PlayInstance, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playKey(input.ChannelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get play: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrPlayNotFound
	}

	cardID, err := strconv.Atoi(fields[fieldCardID])
	if err != nil {
		return nil, fmt.Errorf("failed to parse play card id: %w", err)
	}

	values, err := models.SplitInts(fields[fieldValues])
	if err != nil {
		return nil, fmt.Errorf("failed to parse play values: %w", err)
	}

	revealed, _ := strconv.ParseBool(fields[fieldRevealed])

	createdAt, err := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("failed to parse play created_at: %w", err)
	}

	return &models.PlayInstance{
		ID:           fields[fieldID],
		ChannelID:    input.ChannelID,
		CardID:       cardID,
		Participants: models.SplitList(fields[fieldParticipants]),
		Values:       values,
		Answers:      models.SplitList(fields[fieldAnswers]),
		Revealed:     revealed,
		CreatedAt:    createdAt,
	}, nil
}

// DeletePlay removes the play instance of a channel
func (r *redisRepository) DeletePlay(ctx context.Context, input *DeletePlayInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	if err := r.client.Del(ctx, playKey(input.ChannelID)).Err(); err != nil {
		return fmt.Errorf("failed to delete play: %w", err)
	}

	return nil
}
