package progression

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/bug-arena/internal/redis"
)

const (
	// Key pattern: progression:{player_id}, one hash field per counter
	progressionKeyPrefix = "progression:"

	fieldDifficultyLevel  = "difficulty_level"
	fieldVictories        = "victories"
	fieldPoints           = "points"
	fieldTrophies         = "trophies"
	fieldBadges           = "badges"
	fieldBossWins         = "boss_wins"
	fieldCatchChance      = "upgrade_catch_chance"
	fieldRareLuck         = "upgrade_rare_luck"
	fieldCreatureStrength = "upgrade_creature_strength"
	fieldUpdatedAt        = "updated_at"
)

// RedisConfig contains configuration for the Redis progression repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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
	clock  clock.Clock
}

// NewRedis creates a Redis backed progression repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{client: cfg.Client, clock: c}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, r.key(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get progression")
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("progression for player %s not found", input.PlayerID)
	}

	prog, err := decodeHash(input.PlayerID, fields)
	if err != nil {
		slog.ErrorContext(ctx, "malformed progression record", "player_id", input.PlayerID, "error", err)
		return nil, err
	}
	return &GetOutput{Progression: prog}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := r.key(input.PlayerID)
	pipe := r.client.TxPipeline()

	// starting values only land on a new record
	for field, value := range encodeProgression(entities.NewProgression(input.PlayerID)) {
		pipe.HSetNX(ctx, key, field, value)
	}

	values := encodePatch(input.Patch)
	values[fieldUpdatedAt] = r.clock.Now().UTC().Format(time.RFC3339Nano)
	pipe.HSet(ctx, key, values)
	getAll := pipe.HGetAll(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save progression")
	}

	prog, err := decodeHash(input.PlayerID, getAll.Val())
	if err != nil {
		return nil, err
	}
	return &SaveOutput{Progression: prog}, nil
}

func (r *redisRepository) Reset(ctx context.Context, input ResetInput) (*ResetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	if err := r.client.Del(ctx, r.key(input.PlayerID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to reset progression")
	}
	return &ResetOutput{}, nil
}

func (r *redisRepository) key(playerID string) string {
	return progressionKeyPrefix + playerID
}

func encodeProgression(p *entities.Progression) map[string]any {
	return encodePatch(entities.FullPatch(p))
}

func encodePatch(p entities.ProgressionPatch) map[string]any {
	values := make(map[string]any)
	set := func(field string, v *int) {
		if v != nil {
			values[field] = *v
		}
	}
	set(fieldDifficultyLevel, p.DifficultyLevel)
	set(fieldVictories, p.Victories)
	set(fieldPoints, p.Points)
	set(fieldTrophies, p.Trophies)
	set(fieldBadges, p.Badges)
	set(fieldBossWins, p.BossWins)
	if p.Upgrades != nil {
		values[fieldCatchChance] = p.Upgrades.CatchChance
		values[fieldRareLuck] = p.Upgrades.RareLuck
		values[fieldCreatureStrength] = p.Upgrades.CreatureStrength
	}
	return values
}

func decodeHash(playerID string, fields map[string]string) (*entities.Progression, error) {
	prog := &entities.Progression{PlayerID: playerID}

	ints := []struct {
		field string
		dst   *int
	}{
		{fieldDifficultyLevel, &prog.DifficultyLevel},
		{fieldVictories, &prog.Victories},
		{fieldPoints, &prog.Points},
		{fieldTrophies, &prog.Trophies},
		{fieldBadges, &prog.Badges},
		{fieldBossWins, &prog.BossWins},
		{fieldCatchChance, &prog.Upgrades.CatchChance},
		{fieldRareLuck, &prog.Upgrades.RareLuck},
		{fieldCreatureStrength, &prog.Upgrades.CreatureStrength},
	}
	for _, f := range ints {
		raw, ok := fields[f.field]
		if !ok {
			return nil, errors.DataLossf("progression for player %s is missing %s", playerID, f.field)
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.DataLossf("progression for player %s has bad %s %q", playerID, f.field, raw)
		}
		*f.dst = v
	}

	if raw, ok := fields[fieldUpdatedAt]; ok {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, errors.DataLossf("progression for player %s has bad %s %q", playerID, fieldUpdatedAt, raw)
		}
		prog.UpdatedAt = t
	}

	if err := prog.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored progression is invalid")
	}
	return prog, nil
}
