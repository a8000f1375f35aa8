package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
)

func TestRarityRank(t *testing.T) {
	assert.Equal(t, 1, entities.RarityCommon.Rank())
	assert.Equal(t, 6, entities.RarityMythical.Rank())
	assert.Equal(t, 0, entities.Rarity("shiny").Rank())
	assert.False(t, entities.Rarity("shiny").Valid())

	for i := 1; i < len(entities.Rarities); i++ {
		assert.Greater(t, entities.Rarities[i].Rank(), entities.Rarities[i-1].Rank())
	}
}

func TestFromTemplate(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tmpl := entities.Template{
		ID:       "ladybug",
		Name:     "Ladybug",
		Category: "Beetle",
		Stats:    entities.Stats{Armor: 10, Strength: 12, Health: 40, Speed: 8},
		Rarity:   entities.RarityCommon,
	}

	c := entities.FromTemplate(tmpl, "ladybug-1", now)

	assert.Equal(t, "ladybug-1", c.GetID())
	assert.Equal(t, entities.EntityTypeCreature, c.GetType())
	assert.Equal(t, "ladybug", c.TemplateID)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, tmpl.Stats, c.Stats)
	assert.Equal(t, now, c.CapturedAt)

	cp := c.Clone()
	cp.Stats.Armor = 99
	assert.Equal(t, 10, c.Stats.Armor)
}

func TestNPCEntityType(t *testing.T) {
	assert.Equal(t, entities.EntityTypeNPC, (&entities.NPC{}).GetType())
	assert.Equal(t, entities.EntityTypeBoss, (&entities.NPC{IsBoss: true}).GetType())
}

func TestUpgrades(t *testing.T) {
	u := entities.Upgrades{}.With(entities.UpgradeRareLuck, 3)
	assert.Equal(t, 3, u.Level(entities.UpgradeRareLuck))
	assert.Equal(t, 0, u.Level(entities.UpgradeCatchChance))
	assert.Equal(t, 0, u.Level("unknown"))
	assert.True(t, entities.UpgradeCreatureStrength.Valid())
	assert.False(t, entities.UpgradeKind("speed_boost").Valid())
}

func TestProgression(t *testing.T) {
	p := entities.NewProgression("p1")
	require.NoError(t, p.Validate())
	assert.Equal(t, 1, p.DifficultyLevel)
	assert.Equal(t, 1, p.PlayerLevel())
	assert.False(t, p.Complete())

	p.Victories = 5
	p.Badges = entities.MaxBadges
	assert.Equal(t, 3, p.PlayerLevel())
	assert.True(t, p.Complete())

	p.Badges = 11
	p.Points = -1
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "badges")
	assert.Contains(t, err.Error(), "points")
}

func TestCreatureValidate(t *testing.T) {
	c := &entities.Creature{ID: "x", Name: "X", Rarity: entities.RarityRare, Level: 1}
	assert.NoError(t, c.Validate())

	bad := &entities.Creature{ID: "x", Name: "X", Rarity: "shiny", Level: 0, Stats: entities.Stats{Armor: -1}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rarity")
	assert.Contains(t, err.Error(), "level")
	assert.Contains(t, err.Error(), "armor")
}

func TestProgressionPatch(t *testing.T) {
	prog := entities.NewProgression("p1")
	prog.Points = 40

	patch := entities.ProgressionPatch{Trophies: entities.Int(7)}
	assert.False(t, patch.IsEmpty())
	patch.ApplyTo(prog)

	assert.Equal(t, 7, prog.Trophies)
	assert.Equal(t, 40, prog.Points)
	assert.Equal(t, 1, prog.DifficultyLevel)

	assert.True(t, entities.ProgressionPatch{}.IsEmpty())

	prog.Upgrades.RareLuck = 3
	full := entities.FullPatch(prog)
	fresh := entities.NewProgression("p1")
	full.ApplyTo(fresh)
	assert.Equal(t, prog.Points, fresh.Points)
	assert.Equal(t, 3, fresh.Upgrades.RareLuck)
}
