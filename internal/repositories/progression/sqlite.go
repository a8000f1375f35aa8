package progression

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
)

// SQLiteConfig contains configuration for the SQLite progression repository
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite creates a SQLite backed progression repository. The schema must
// already exist; sqlite.Open creates it.
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &sqliteRepository{db: cfg.DB, clock: c}, nil
}

const selectProgression = `
SELECT difficulty_level, victories, points, trophies, badges, boss_wins,
       upgrade_catch_chance, upgrade_rare_luck, upgrade_creature_strength, updated_at_ms
FROM progression
WHERE player_id = ?`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	prog, err := r.load(ctx, r.db, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Progression: prog}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO progression (player_id) VALUES (?) ON CONFLICT (player_id) DO NOTHING`,
		input.PlayerID,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create progression row")
	}

	columns, args := patchColumns(input.Patch)
	columns = append(columns, "updated_at_ms = ?")
	args = append(args, r.clock.Now().UTC().UnixMilli(), input.PlayerID)

	query := `UPDATE progression SET ` + strings.Join(columns, ", ") + ` WHERE player_id = ?`
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to update progression")
	}

	prog, err := r.load(ctx, tx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit progression")
	}

	return &SaveOutput{Progression: prog}, nil
}

func (r *sqliteRepository) Reset(ctx context.Context, input ResetInput) (*ResetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM progression WHERE player_id = ?`, input.PlayerID); err != nil {
		return nil, errors.Wrap(err, "failed to reset progression")
	}
	return &ResetOutput{}, nil
}

func (r *sqliteRepository) load(ctx context.Context, q queryRower, playerID string) (*entities.Progression, error) {
	prog := &entities.Progression{PlayerID: playerID}
	var updatedAtMs int64

	err := q.QueryRowContext(ctx, selectProgression, playerID).Scan(
		&prog.DifficultyLevel,
		&prog.Victories,
		&prog.Points,
		&prog.Trophies,
		&prog.Badges,
		&prog.BossWins,
		&prog.Upgrades.CatchChance,
		&prog.Upgrades.RareLuck,
		&prog.Upgrades.CreatureStrength,
		&updatedAtMs,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("progression for player %s not found", playerID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load progression")
	}
	if updatedAtMs > 0 {
		prog.UpdatedAt = time.UnixMilli(updatedAtMs).UTC()
	}

	if err := prog.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored progression is invalid")
	}
	return prog, nil
}

func patchColumns(p entities.ProgressionPatch) ([]string, []any) {
	var columns []string
	var args []any
	set := func(column string, v *int) {
		if v != nil {
			columns = append(columns, column+" = ?")
			args = append(args, *v)
		}
	}
	set("difficulty_level", p.DifficultyLevel)
	set("victories", p.Victories)
	set("points", p.Points)
	set("trophies", p.Trophies)
	set("badges", p.Badges)
	set("boss_wins", p.BossWins)
	if p.Upgrades != nil {
		columns = append(columns,
			"upgrade_catch_chance = ?",
			"upgrade_rare_luck = ?",
			"upgrade_creature_strength = ?",
		)
		args = append(args, p.Upgrades.CatchChance, p.Upgrades.RareLuck, p.Upgrades.CreatureStrength)
	}
	return columns, args
}
