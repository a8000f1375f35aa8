// Package npc builds scaled opponents from the difficulty level and the
// number of bosses the player has beaten.
package npc

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
)

// BossInterval is the level spacing of boss encounters
const BossInterval = 10

// difficultyReduction is a global softening applied to every opponent
const difficultyReduction = 0.8

// Avatar hints for the presentation layer
const (
	AvatarTrainer = "trainer"
	AvatarBoss    = "boss"
)

var regularNames = []string{
	"Bug Hunter Jake",
	"Trainer Sarah",
	"Expert Mike",
	"Master Chen",
	"Elite Rosa",
	"Champion Alex",
	"Legend Diana",
	"Grand Master Kai",
}

var bossNames = []string{
	"Boss Titan",
	"Boss Thunder",
	"Boss Venom",
	"Boss Inferno",
	"Boss Frost",
	"Boss Shadow",
	"Boss Storm",
	"Boss Quake",
	"Boss Blaze",
	"Final Boss Omega",
}

// IsBossLevel reports whether level is a boss encounter
func IsBossLevel(level int) bool {
	return level > 0 && level%BossInterval == 0
}

// Multiplier is the stat scale for an opponent at level after bossWins
// boss defeats.
func Multiplier(level, bossWins int) float64 {
	base := 1 + float64(level-1)*0.1
	boss := 1.0
	if IsBossLevel(level) {
		boss = 1.2 + float64(bossWins)*0.15
	}
	badge := 1 + float64(bossWins)*0.08
	return base * boss * badge * difficultyReduction
}

// ScaleStats applies the multiplier to every stat. A stat never drops below
// half of its base value.
func ScaleStats(base entities.Stats, multiplier float64) entities.Stats {
	scale := func(v int) int {
		scaled := int(math.Floor(float64(v) * multiplier))
		floor := int(math.Floor(float64(v) * 0.5))
		return max(scaled, floor)
	}
	return entities.Stats{
		Armor:    scale(base.Armor),
		Strength: scale(base.Strength),
		Health:   scale(base.Health),
		Speed:    scale(base.Speed),
	}
}

// Name returns the opponent name for a level. Names repeat the last pool
// entry once the level runs past the pool.
func Name(level int) string {
	if IsBossLevel(level) {
		idx := min(level/BossInterval-1, len(bossNames)-1)
		return bossNames[idx]
	}
	idx := min(max(level-1, 0), len(regularNames)-1)
	return regularNames[idx]
}

// ID returns the stable opponent id for a level
func ID(level int) string {
	if IsBossLevel(level) {
		return fmt.Sprintf("boss-%d", level)
	}
	return fmt.Sprintf("npc-%d", level)
}

// TemplateSource is the catalog opponents are drawn from
type TemplateSource interface {
	All() []entities.Template
}

// Config holds the dependencies of a Generator
type Config struct {
	Templates TemplateSource
	Random    random.Source
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Templates == nil {
		vb.RequiredField("Templates")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	return vb.Build()
}

// Generator builds opponents
type Generator struct {
	templates TemplateSource
	random    random.Source
}

// NewGenerator creates a Generator
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid npc generator config")
	}
	return &Generator{templates: cfg.Templates, random: cfg.Random}, nil
}

// Generate returns a fresh opponent. Levels below 1 are treated as 1 and
// negative boss wins as 0.
func (g *Generator) Generate(level, bossWins int) (*entities.NPC, error) {
	if level < 1 {
		level = 1
	}
	if bossWins < 0 {
		bossWins = 0
	}

	all := g.templates.All()
	if len(all) == 0 {
		return nil, errors.FailedPrecondition("catalog has no templates")
	}

	isBoss := IsBossLevel(level)
	pool := filterPool(all, level, isBoss)
	if len(pool) == 0 {
		slog.Debug("opponent pool empty, using full catalog", "level", level)
		pool = all
	}
	tmpl := pool[g.random.Intn(len(pool))]

	id := ID(level)
	creature := entities.FromTemplate(tmpl, id+"-"+tmpl.ID, time.Time{})
	creature.Level = level
	creature.Stats = ScaleStats(tmpl.Stats, Multiplier(level, bossWins))

	avatar := AvatarTrainer
	if isBoss {
		avatar = AvatarBoss
	}

	return &entities.NPC{
		ID:       id,
		Name:     Name(level),
		Level:    level,
		Creature: creature,
		Avatar:   avatar,
		IsBoss:   isBoss,
	}, nil
}

// filterPool narrows the catalog by level. Early trainers only use common
// and uncommon bugs, mid trainers use anything but legendary, and bosses and
// late trainers use anything.
func filterPool(all []entities.Template, level int, isBoss bool) []entities.Template {
	if isBoss || level >= 7 {
		return all
	}

	keep := func(t entities.Template) bool {
		return t.Rarity.Rank() <= entities.RarityUncommon.Rank()
	}
	if level >= 4 {
		keep = func(t entities.Template) bool {
			return t.Rarity != entities.RarityLegendary
		}
	}

	pool := make([]entities.Template, 0, len(all))
	for _, t := range all {
		if keep(t) {
			pool = append(pool, t)
		}
	}
	return pool
}
