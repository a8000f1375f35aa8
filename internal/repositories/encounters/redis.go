package encounters

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/errors"
	redisclient "github.com/KirkDiggler/bug-arena/internal/redis"
)

const (
	// Key pattern: encounter:{player_id}
	encounterKeyPrefix = "encounter:"
	defaultTTL         = time.Hour
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL bounds how long an untouched batch waits. Zero uses one hour.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis repository for encounter batches
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &redisRepository{client: cfg.Client, ttl: ttl}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Batch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal encounter")
	}

	if err := r.client.Set(ctx, r.key(input.Batch.PlayerID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store encounter in Redis")
	}

	return &SaveOutput{Batch: input.Batch.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	raw, err := r.client.Get(ctx, r.key(input.PlayerID)).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFound("no pending encounter")
		}
		return nil, errors.Wrapf(err, "failed to get encounter from Redis")
	}

	var batch Batch
	if err := json.Unmarshal([]byte(raw), &batch); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored encounter is not valid json")
	}
	for i, slot := range batch.Slots {
		if slot.Template.ID == "" || !slot.Template.Rarity.Valid() {
			return nil, errors.DataLossf("stored encounter slot %d is malformed", i+1)
		}
	}

	return &GetOutput{Batch: &batch}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	if err := r.client.Del(ctx, r.key(input.PlayerID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete encounter from Redis")
	}
	return &DeleteOutput{}, nil
}

func (r *redisRepository) key(playerID string) string {
	return encounterKeyPrefix + playerID
}
