package battlesession

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/bug-arena/internal/redis"
)

// Key pattern: battle_session:{player_id}
const sessionKeyPrefix = "battle_session:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for battle sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	ttl := ttlOrDefault(input.TTL)
	session := &Session{
		Battle:    input.Battle,
		CreatedAt: input.Battle.StartedAt,
		ExpiresAt: now.Add(ttl),
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle session")
	}

	key := r.buildKey(input.Battle.PlayerID)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store battle session in Redis")
	}

	return &SaveOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := r.buildKey(input.PlayerID)
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFound("no active battle")
		}
		return nil, errors.Wrapf(err, "failed to get battle session from Redis")
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored battle session is not valid json")
	}
	if session.Battle == nil || session.Battle.Player == nil ||
		session.Battle.Opponent == nil || session.Battle.Opponent.Creature == nil {
		return nil, errors.DataLossf("stored battle session for player %s is incomplete", input.PlayerID)
	}

	// Redis expiry is authoritative, the clock check covers skew against
	// the stored deadline
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("battle session has expired")
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	n, err := r.client.Del(ctx, r.buildKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete battle session from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func (r *redisRepository) buildKey(playerID string) string {
	return sessionKeyPrefix + playerID
}
