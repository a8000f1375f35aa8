package collection

import (
	"context"
	"database/sql"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// SQLiteConfig contains configuration for the SQLite collection repository
type SQLiteConfig struct {
	DB *sql.DB
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
	db *sql.DB
}

// NewSQLite creates a SQLite backed collection repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

const creatureColumns = `id, template_id, name, category, rarity, level,
       armor, strength, health, speed, icon, description, captured_at_ns`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT `+creatureColumns+`
FROM creatures
WHERE player_id = ?
ORDER BY captured_at_ns ASC, id ASC`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection")
	}
	defer func() { _ = rows.Close() }()

	creatures := make([]*entities.Creature, 0)
	for rows.Next() {
		c, err := scanCreature(rows)
		if err != nil {
			return nil, err
		}
		creatures = append(creatures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read collection")
	}

	return &ListOutput{Creatures: creatures}, nil
}

func (r *sqliteRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if err := validateAdd(input); err != nil {
		return nil, err
	}

	c := input.Creature
	res, err := r.db.ExecContext(ctx, `
INSERT INTO creatures (player_id, `+creatureColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (player_id, id) DO NOTHING`,
		input.PlayerID, c.ID, c.TemplateID, c.Name, c.Category, string(c.Rarity), c.Level,
		c.Stats.Armor, c.Stats.Strength, c.Stats.Health, c.Stats.Speed,
		c.Icon, c.Description, c.CapturedAt.UnixNano(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store creature")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.AlreadyExistsf("creature %s already exists", c.ID)
	}

	return &AddOutput{Creature: c.Clone()}, nil
}

func (r *sqliteRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	if err := validateRef(input.PlayerID, input.CreatureID); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM creatures WHERE player_id = ? AND id = ?`,
		input.PlayerID, input.CreatureID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove creature")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, notFound(input.PlayerID, input.CreatureID)
	}
	return &RemoveOutput{}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE creatures
SET level = ?, armor = ?, strength = ?, health = ?, speed = ?
WHERE player_id = ? AND id = ?`,
		input.Level, input.Stats.Armor, input.Stats.Strength, input.Stats.Health, input.Stats.Speed,
		input.PlayerID, input.CreatureID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update creature")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, notFound(input.PlayerID, input.CreatureID)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+creatureColumns+` FROM creatures WHERE player_id = ? AND id = ?`,
		input.PlayerID, input.CreatureID)
	c, err := scanCreature(row)
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Creature: c}, nil
}

func (r *sqliteRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM creatures WHERE player_id = ?`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear collection")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count cleared creatures")
	}
	return &ClearOutput{Removed: int(n)}, nil
}

func scanCreature(row rowScanner) (*entities.Creature, error) {
	var (
		c          entities.Creature
		rarity     string
		capturedNs int64
	)
	err := row.Scan(
		&c.ID, &c.TemplateID, &c.Name, &c.Category, &rarity, &c.Level,
		&c.Stats.Armor, &c.Stats.Strength, &c.Stats.Health, &c.Stats.Speed,
		&c.Icon, &c.Description, &capturedNs,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan creature")
	}
	c.Rarity = entities.Rarity(rarity)
	c.CapturedAt = time.Unix(0, capturedNs).UTC()

	if err := c.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored creature is invalid")
	}
	return &c, nil
}
