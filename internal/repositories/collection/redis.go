package collection

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	redisclient "github.com/KirkDiggler/bug-arena/internal/redis"
)

const (
	// Key pattern: collection:{player_id} holds creature JSON by id,
	// collection:{player_id}:order scores ids by capture time
	collectionKeyPrefix = "collection:"
	orderKeySuffix      = ":order"
)

// RedisConfig contains configuration for the Redis collection repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis backed collection repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ids, err := r.client.ZRange(ctx, r.orderKey(input.PlayerID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list collection index")
	}
	if len(ids) == 0 {
		return &ListOutput{Creatures: []*entities.Creature{}}, nil
	}

	values, err := r.client.HMGet(ctx, r.key(input.PlayerID), ids...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load collection")
	}

	creatures := make([]*entities.Creature, 0, len(ids))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without data, left behind by an interrupted write
			slog.WarnContext(ctx, "collection index points at missing creature",
				"player_id", input.PlayerID,
				"creature_id", ids[i])
			continue
		}
		c, err := decodeCreature(raw)
		if err != nil {
			return nil, err
		}
		creatures = append(creatures, c)
	}

	return &ListOutput{Creatures: creatures}, nil
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if err := validateAdd(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Creature)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}

	added, err := r.client.HSetNX(ctx, r.key(input.PlayerID), input.Creature.ID, data).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store creature")
	}
	if !added {
		return nil, errors.AlreadyExistsf("creature %s already exists", input.Creature.ID)
	}

	score := float64(input.Creature.CapturedAt.UnixMilli())
	if err := r.client.ZAdd(ctx, r.orderKey(input.PlayerID), redis.Z{Score: score, Member: input.Creature.ID}).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index creature")
	}

	return &AddOutput{Creature: input.Creature.Clone()}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	if err := validateRef(input.PlayerID, input.CreatureID); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	del := pipe.HDel(ctx, r.key(input.PlayerID), input.CreatureID)
	pipe.ZRem(ctx, r.orderKey(input.PlayerID), input.CreatureID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to remove creature")
	}

	if del.Val() == 0 {
		return nil, notFound(input.PlayerID, input.CreatureID)
	}
	return &RemoveOutput{}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	key := r.key(input.PlayerID)
	raw, err := r.client.HGet(ctx, key, input.CreatureID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, notFound(input.PlayerID, input.CreatureID)
		}
		return nil, errors.Wrapf(err, "failed to get creature")
	}

	c, err := decodeCreature(raw)
	if err != nil {
		return nil, err
	}
	c.Level = input.Level
	c.Stats = input.Stats

	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}
	if err := r.client.HSet(ctx, key, input.CreatureID, data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update creature")
	}

	return &UpdateOutput{Creature: c}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	pipe := r.client.TxPipeline()
	count := pipe.HLen(ctx, r.key(input.PlayerID))
	pipe.Del(ctx, r.key(input.PlayerID), r.orderKey(input.PlayerID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear collection")
	}

	return &ClearOutput{Removed: int(count.Val())}, nil
}

func (r *redisRepository) key(playerID string) string {
	return collectionKeyPrefix + playerID
}

func (r *redisRepository) orderKey(playerID string) string {
	return collectionKeyPrefix + playerID + orderKeySuffix
}

func decodeCreature(raw string) (*entities.Creature, error) {
	var c entities.Creature
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored creature is not valid json")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored creature is invalid")
	}
	return &c, nil
}
