package card

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

const (
	// Key prefixes for Redis
	cardKeyPrefix   = "card:"
	likesKeyPrefix  = "card_likes:"
	cardsByRequired = "cards_by_required"
	nsfwCardsKey    = "cards_nsfw"
)

// ErrCardNotFound is returned when a card is not found
var ErrCardNotFound = errors.New("card not found")

// Config holds configuration for the Redis card repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed card repository
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

func cardKey(cardID int) string {
	return cardKeyPrefix + strconv.Itoa(cardID)
}

// SaveCard normalizes and persists a card
func (r *redisRepository) SaveCard(ctx context.Context, input *SaveCardInput) error {
	if input == nil || input.Card == nil {
		return errors.New("input and card cannot be nil")
	}

	card := input.Card
	card.Normalize()

	cardJSON, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to marshal card: %w", err)
	}

	member := strconv.Itoa(card.ID)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, cardKey(card.ID), cardJSON, 0)
	pipe.ZAdd(ctx, cardsByRequired, redis.Z{
		Score:  float64(card.RequiredParticipants),
		Member: member,
	})
	if card.NSFW {
		pipe.SAdd(ctx, nsfwCardsKey, member)
	} else {
		pipe.SRem(ctx, nsfwCardsKey, member)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	return nil
}

// GetCard retrieves a card by ID from Redis
func (r *redisRepository) GetCard(ctx context.Context, input *GetCardInput) (*models.Card, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cardJSON, err := r.client.Get(ctx, cardKey(input.CardID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	var card models.Card
	if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card: %w", err)
	}

	return &card, nil
}

// CountCards returns the size of the card index
func (r *redisRepository) CountCards(ctx context.Context) (int, error) {
	count, err := r.client.ZCard(ctx, cardsByRequired).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return int(count), nil
}

// ListEligible returns every card needing at most the given number of participants
func (r *redisRepository) ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	members, err := r.client.ZRangeByScore(ctx, cardsByRequired, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.Itoa(input.Participants),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible cards: %w", err)
	}

	nsfw := map[string]bool{}
	if !input.IncludeNSFW {
		flagged, err := r.client.SMembers(ctx, nsfwCardsKey).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to list nsfw cards: %w", err)
		}
		for _, id := range flagged {
			nsfw[id] = true
		}
	}

	output := &ListEligibleOutput{CardIDs: make([]int, 0, len(members))}
	for _, member := range members {
		if nsfw[member] {
			continue
		}
		id, err := strconv.Atoi(member)
		if err != nil {
			return nil, fmt.Errorf("invalid card id %q in index: %w", member, err)
		}
		output.CardIDs = append(output.CardIDs, id)
	}

	return output, nil
}

// AddLike records a like, one per player and card
func (r *redisRepository) AddLike(ctx context.Context, input *AddLikeInput) (*AddLikeOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	key := likesKeyPrefix + strconv.Itoa(input.CardID)

	pipe := r.client.TxPipeline()
	added := pipe.SAdd(ctx, key, input.PlayerID)
	likes := pipe.SCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to add like: %w", err)
	}

	return &AddLikeOutput{
		Added: added.Val() > 0,
		Likes: int(likes.Val()),
	}, nil
}
