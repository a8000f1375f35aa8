package encounter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bug-arena/internal/catalog"
	"github.com/KirkDiggler/bug-arena/internal/engine/encounter"
	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
)

func TestRarityWeights(t *testing.T) {
	w := encounter.RarityWeights(0)
	assert.InDelta(t, 85, w.Common, 1e-9)
	assert.InDelta(t, 13, w.Uncommon, 1e-9)
	assert.InDelta(t, 1.8, w.Rare, 1e-9)
	assert.InDelta(t, 0.2, w.Legendary, 1e-9)

	w = encounter.RarityWeights(4)
	assert.InDelta(t, 81, w.Common, 1e-9)
	assert.InDelta(t, 3.8, w.Rare, 1e-9)
	assert.InDelta(t, 1.2, w.Legendary, 1e-9)

	for level := 0; level <= 200; level++ {
		w := encounter.RarityWeights(level)
		assert.GreaterOrEqual(t, w.Common, 70.0, "level %d", level)
		assert.LessOrEqual(t, w.Legendary, 2.0, "level %d", level)
		assert.LessOrEqual(t, w.Rare, 6.0, "level %d", level)
		assert.Zero(t, w.Of(entities.RarityEpic))
		assert.Zero(t, w.Of(entities.RarityMythical))
	}

	assert.Equal(t, encounter.RarityWeights(0), encounter.RarityWeights(-3))
}

func TestDrawRarity(t *testing.T) {
	w := encounter.RarityWeights(0) // total 100
	testCases := []struct {
		name string
		draw float64
		want entities.Rarity
	}{
		{name: "zero draw is common", draw: 0, want: entities.RarityCommon},
		{name: "inside common", draw: 0.5, want: entities.RarityCommon},
		{name: "top of common", draw: 0.849, want: entities.RarityCommon},
		{name: "uncommon", draw: 0.90, want: entities.RarityUncommon},
		{name: "rare", draw: 0.99, want: entities.RarityRare},
		{name: "legendary", draw: 0.999, want: entities.RarityLegendary},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := random.NewScripted(nil, []float64{tc.draw})
			assert.Equal(t, tc.want, encounter.DrawRarity(w, src))
		})
	}
}

func TestCatchRate(t *testing.T) {
	// common at player level 1, no upgrades
	assert.Equal(t, 85, encounter.CatchRate(entities.RarityCommon, 1, 0))

	assert.Equal(t, 95, encounter.CatchRate(entities.RarityCommon, 10, 0))
	assert.Equal(t, 50, encounter.CatchRate(entities.RarityLegendary, 6, 0))
	assert.Equal(t, 60, encounter.CatchRate(entities.RarityLegendary, 20, 2))
	assert.Equal(t, 15, encounter.CatchRate(entities.RarityEpic, 1, 0))

	for _, r := range entities.Rarities {
		prev := 0
		for level := 0; level <= 12; level++ {
			for upgrade := 0; upgrade <= 20; upgrade++ {
				rate := encounter.CatchRate(r, level, upgrade)
				assert.GreaterOrEqual(t, rate, encounter.BaseCatchRate(r))
				assert.LessOrEqual(t, rate, encounter.MaxCatchRate)
				if upgrade == 0 {
					assert.GreaterOrEqual(t, rate, prev)
					prev = rate
				} else {
					assert.GreaterOrEqual(t, rate, encounter.CatchRate(r, level, upgrade-1))
				}
			}
		}
	}
}

func TestCatch(t *testing.T) {
	tmpl := entities.Template{
		ID: "ladybug", Name: "Ladybug", Rarity: entities.RarityCommon,
		Stats: entities.Stats{Armor: 12, Strength: 10, Health: 45, Speed: 8},
	}
	now := time.Unix(1700000000, 42)

	t.Run("success below rate", func(t *testing.T) {
		out := encounter.Catch(encounter.CatchInput{
			Template:              tmpl,
			PlayerLevel:           1,
			CreatureStrengthLevel: 5,
			Now:                   now,
		}, random.NewScripted([]int{84}, nil))

		require.True(t, out.Success)
		require.NotNil(t, out.Creature)
		assert.Equal(t, 85, out.Rate)
		assert.Equal(t, "ladybug-1700000000000000042", out.Creature.ID)
		assert.Equal(t, 1, out.Creature.Level)
		assert.Equal(t, 15, out.Creature.Stats.Strength)
		assert.Equal(t, 12, out.Creature.Stats.Armor)
		assert.Equal(t, now, out.Creature.CapturedAt)
		assert.Empty(t, out.FledName)
	})

	t.Run("flees at rate", func(t *testing.T) {
		out := encounter.Catch(encounter.CatchInput{
			Template:    tmpl,
			PlayerLevel: 1,
			Now:         now,
		}, random.NewScripted([]int{85}, nil))

		assert.False(t, out.Success)
		assert.Nil(t, out.Creature)
		assert.Equal(t, "Ladybug", out.FledName)
	})
}

func TestScaledStrength(t *testing.T) {
	assert.Equal(t, 10, encounter.ScaledStrength(10, 0))
	assert.Equal(t, 11, encounter.ScaledStrength(10, 1))
	assert.Equal(t, 14, encounter.ScaledStrength(11, 3))
}

type GeneratorTestSuite struct {
	suite.Suite
	templates *catalog.Catalog
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.templates = catalog.New([]entities.Template{
		{ID: "c1", Rarity: entities.RarityCommon},
		{ID: "c2", Rarity: entities.RarityCommon},
		{ID: "u1", Rarity: entities.RarityUncommon},
		{ID: "r1", Rarity: entities.RarityRare},
		{ID: "e1", Rarity: entities.RarityEpic},
	})
}

func (s *GeneratorTestSuite) TestConfigValidation() {
	_, err := encounter.NewGenerator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = encounter.NewGenerator(&encounter.GeneratorConfig{})
	s.Error(err)
	s.Contains(err.Error(), "Templates")
	s.Contains(err.Error(), "Random")
}

func (s *GeneratorTestSuite) TestGeneratesThreeIndependentSlots() {
	src := random.NewScripted(
		[]int{1, 0, 1},
		[]float64{0.1, 0.1, 0.9},
	)
	gen, err := encounter.NewGenerator(&encounter.GeneratorConfig{Templates: s.templates, Random: src})
	s.Require().NoError(err)

	batch := gen.Generate(0)
	s.Require().Len(batch, encounter.DefaultBatchSize)
	s.Equal("c2", batch[0].ID)
	s.Equal("c1", batch[1].ID)
	s.Equal("u1", batch[2].ID)
}

func (s *GeneratorTestSuite) TestEmptyTierFallsBackToFirstCommon() {
	src := random.NewScripted(nil, []float64{0.9999})
	gen, err := encounter.NewGenerator(&encounter.GeneratorConfig{
		Templates: s.templates,
		Random:    src,
		BatchSize: 1,
	})
	s.Require().NoError(err)

	batch := gen.Generate(0)
	s.Require().Len(batch, 1)
	s.Equal("c1", batch[0].ID)
}

func (s *GeneratorTestSuite) TestNeverProducesEpic() {
	gen, err := encounter.NewGenerator(&encounter.GeneratorConfig{
		Templates: s.templates,
		Random:    random.NewDiceSource(nil),
		BatchSize: 200,
	})
	s.Require().NoError(err)

	for _, tmpl := range gen.Generate(50) {
		s.NotEqual(entities.RarityEpic, tmpl.Rarity)
	}
}

func (s *GeneratorTestSuite) TestEmptyCatalog() {
	gen, err := encounter.NewGenerator(&encounter.GeneratorConfig{
		Templates: catalog.New(nil),
		Random:    random.NewScripted(nil, nil),
	})
	s.Require().NoError(err)
	s.Empty(gen.Generate(0))
}
