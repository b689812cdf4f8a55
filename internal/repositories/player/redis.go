package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

const (
	// Key prefix for Redis, followed by ":current" or ":total"
	playerStatsKeyPrefix = "player_stats:"
)

// ErrPlayerNotFound is returned when a player has no statistics yet
var ErrPlayerNotFound = errors.New("player not found")

// rollupScript moves every current counter into the totals in one step
var rollupScript = redis.NewScript(`
local current = redis.call('HGETALL', KEYS[1])
for i = 1, #current, 2 do
	redis.call('HINCRBY', KEYS[2], current[i], current[i + 1])
end
redis.call('DEL', KEYS[1])
if tonumber(ARGV[1]) > 0 then
	redis.call('HSET', KEYS[1], 'games', ARGV[1])
end
return #current / 2
`)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

func currentKey(playerID string) string {
	return playerStatsKeyPrefix + playerID + ":current"
}

func totalKey(playerID string) string {
	return playerStatsKeyPrefix + playerID + ":total"
}

func toStats(fields map[string]string) (models.Stats, error) {
	var stats models.Stats
	for _, field := range models.StatFields {
		raw, ok := fields[string(field)]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return stats, fmt.Errorf("invalid %s counter %q: %w", field, raw, err)
		}
		stats.Add(field, n)
	}
	return stats, nil
}

// GetPlayer retrieves the current and total counters of a player
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	output, err := r.GetPlayers(ctx, &GetPlayersInput{PlayerIDs: []string{input.PlayerID}})
	if err != nil {
		return nil, err
	}
	if len(output.Players) == 0 {
		return nil, ErrPlayerNotFound
	}

	return output.Players[0], nil
}

// GetPlayers retrieves several players in one round trip, skipping those without statistics
func (r *redisRepository) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.PlayerIDs) == 0 {
		return &GetPlayersOutput{Players: []*models.Player{}}, nil
	}

	type statCommands struct {
		current *redis.MapStringStringCmd
		total   *redis.MapStringStringCmd
	}

	pipe := r.client.Pipeline()
	commands := make([]statCommands, len(input.PlayerIDs))
	for i, playerID := range input.PlayerIDs {
		commands[i] = statCommands{
			current: pipe.HGetAll(ctx, currentKey(playerID)),
			total:   pipe.HGetAll(ctx, totalKey(playerID)),
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(input.PlayerIDs))
	for i, playerID := range input.PlayerIDs {
		currentFields := commands[i].current.Val()
		totalFields := commands[i].total.Val()
		if len(currentFields) == 0 && len(totalFields) == 0 {
			continue
		}

		current, err := toStats(currentFields)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stats of player %s: %w", playerID, err)
		}
		total, err := toStats(totalFields)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stats of player %s: %w", playerID, err)
		}

		players = append(players, &models.Player{
			ID:      playerID,
			Current: current,
			Total:   total,
		})
	}

	return &GetPlayersOutput{Players: players}, nil
}

// IncrementStat adds to one counter of the current game
func (r *redisRepository) IncrementStat(ctx context.Context, input *IncrementStatInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}
	if input.Field == "" {
		return errors.New("stat field cannot be empty")
	}

	if err := r.client.HIncrBy(ctx, currentKey(input.PlayerID), string(input.Field), int64(input.Amount)).Err(); err != nil {
		return fmt.Errorf("failed to increment %s: %w", input.Field, err)
	}

	return nil
}

// RollupStats adds the current counters to the totals and resets them
func (r *redisRepository) RollupStats(ctx context.Context, input *RollupStatsInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	games := 0
	if input.StartGame {
		games = 1
	}

	keys := []string{currentKey(input.PlayerID), totalKey(input.PlayerID)}
	if err := rollupScript.Run(ctx, r.client, keys, games).Err(); err != nil {
		return fmt.Errorf("failed to roll up stats: %w", err)
	}

	return nil
}
