package drink_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

const (
	// Key prefixes for Redis
	drinkKeyPrefix         = "drink:"
	channelDrinksKeyPrefix = "channel_drinks:"
	playerDrinksKeyPrefix  = "player_drinks:"
	appliedPlaysKey        = "applied_plays"
)

// Config holds configuration for the Redis drink ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drink ledger repository
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

// MarkPlayApplied adds the play to the applied set
func (r *redisRepository) MarkPlayApplied(ctx context.Context, input *MarkPlayAppliedInput) (bool, error) {
	if input == nil || input.PlayID == "" {
		return false, errors.New("input and play ID cannot be empty")
	}

	added, err := r.client.SAdd(ctx, appliedPlaysKey, input.PlayID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark play applied: %w", err)
	}

	return added > 0, nil
}

// AddDrinkRecord adds a drink record to the ledger
func (r *redisRepository) AddDrinkRecord(ctx context.Context, input *AddDrinkRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("drink record ID cannot be empty")
	}
	if record.Timestamp.IsZero() {
		return errors.New("drink record timestamp cannot be zero")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal drink record: %w", err)
	}

	score := float64(record.Timestamp.UnixNano())

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, drinkKeyPrefix+record.ID, recordJSON, 0)
	pipe.ZAdd(ctx, channelDrinksKeyPrefix+record.ChannelID, redis.Z{
		Score:  score,
		Member: record.ID,
	})
	pipe.ZAdd(ctx, playerDrinksKeyPrefix+record.PlayerID, redis.Z{
		Score:  score,
		Member: record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add drink record: %w", err)
	}

	return nil
}

// GetDrinkRecordsForChannel retrieves all drink records of a session
func (r *redisRepository) GetDrinkRecordsForChannel(ctx context.Context, input *GetDrinkRecordsForChannelInput) (*GetDrinkRecordsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}
	return r.recordsFromIndex(ctx, channelDrinksKeyPrefix+input.ChannelID, 0)
}

// GetDrinkRecordsForPlayer retrieves all drink records of a player
func (r *redisRepository) GetDrinkRecordsForPlayer(ctx context.Context, input *GetDrinkRecordsForPlayerInput) (*GetDrinkRecordsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}
	return r.recordsFromIndex(ctx, playerDrinksKeyPrefix+input.PlayerID, input.Limit)
}

func (r *redisRepository) recordsFromIndex(ctx context.Context, indexKey string, limit int) (*GetDrinkRecordsOutput, error) {
	var drinkIDs []string
	var err error
	if limit > 0 {
		drinkIDs, err = r.client.ZRevRange(ctx, indexKey, 0, int64(limit-1)).Result()
	} else {
		drinkIDs, err = r.client.ZRange(ctx, indexKey, 0, -1).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs: %w", err)
	}

	if len(drinkIDs) == 0 {
		return &GetDrinkRecordsOutput{
			Records: []*models.DrinkRecord{},
		}, nil
	}

	// Get all drink records in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(drinkIDs))
	for i, drinkID := range drinkIDs {
		commands[i] = pipe.Get(ctx, drinkKeyPrefix+drinkID)
	}

	// redis.Nil of a single command is reported by Exec as well
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get drink records: %w", err)
	}

	records := make([]*models.DrinkRecord, 0, len(drinkIDs))
	for i, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get drink record %s: %w", drinkIDs[i], err)
		}

		var record models.DrinkRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink record %s: %w", drinkIDs[i], err)
		}

		records = append(records, &record)
	}

	return &GetDrinkRecordsOutput{
		Records: records,
	}, nil
}

// RekeyChannel renames the session index of a channel
func (r *redisRepository) RekeyChannel(ctx context.Context, input *RekeyChannelInput) error {
	if input == nil || input.FromChannelID == "" || input.ToChannelID == "" {
		return errors.New("input and channel IDs cannot be empty")
	}
	if input.FromChannelID == input.ToChannelID {
		return nil
	}

	from := channelDrinksKeyPrefix + input.FromChannelID
	exists, err := r.client.Exists(ctx, from).Result()
	if err != nil {
		return fmt.Errorf("failed to check drink records: %w", err)
	}
	if exists == 0 {
		return nil
	}

	if err := r.client.Rename(ctx, from, channelDrinksKeyPrefix+input.ToChannelID).Err(); err != nil {
		return fmt.Errorf("failed to rekey drink records: %w", err)
	}

	return nil
}

// DeleteChannelRecords removes the session index of a channel.
// The records stay reachable through the player index.
func (r *redisRepository) DeleteChannelRecords(ctx context.Context, input *DeleteChannelRecordsInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	if err := r.client.Del(ctx, channelDrinksKeyPrefix+input.ChannelID).Err(); err != nil {
		return fmt.Errorf("failed to delete drink records: %w", err)
	}

	return nil
}
