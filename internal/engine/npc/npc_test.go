package npc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bug-arena/internal/catalog"
	"github.com/KirkDiggler/bug-arena/internal/engine/npc"
	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
)

func TestIsBossLevel(t *testing.T) {
	for level := 1; level <= 100; level++ {
		assert.Equal(t, level%10 == 0, npc.IsBossLevel(level), "level %d", level)
	}
	assert.False(t, npc.IsBossLevel(0))
}

func TestMultiplier(t *testing.T) {
	assert.InDelta(t, 0.8, npc.Multiplier(1, 0), 1e-9)
	assert.InDelta(t, 1.824, npc.Multiplier(10, 0), 1e-9)
	// 1.9 * (1.2 + 0.3) * 1.16 * 0.8
	assert.InDelta(t, 2.6448, npc.Multiplier(10, 2), 1e-9)
	assert.InDelta(t, 1.6*1.08*0.8, npc.Multiplier(7, 1), 1e-9)
}

func TestScaleStats(t *testing.T) {
	base := entities.Stats{Armor: 10, Strength: 20, Health: 50, Speed: 15}

	boss := npc.ScaleStats(base, npc.Multiplier(10, 0))
	m := npc.Multiplier(10, 0)
	assert.Equal(t, int(math.Floor(10*m)), boss.Armor)
	assert.Equal(t, 36, boss.Strength)
	assert.Equal(t, 91, boss.Health)
	assert.Equal(t, 27, boss.Speed)

	// level 1 scales by 0.8, above the half floor
	low := npc.ScaleStats(base, npc.Multiplier(1, 0))
	assert.Equal(t, entities.Stats{Armor: 8, Strength: 16, Health: 40, Speed: 12}, low)

	clamped := npc.ScaleStats(base, 0.1)
	assert.Equal(t, entities.Stats{Armor: 5, Strength: 10, Health: 25, Speed: 7}, clamped)
}

func TestScalingIsMonotonicAcrossRegularLevels(t *testing.T) {
	base := entities.Stats{Armor: 13, Strength: 27, Health: 61, Speed: 9}
	for wins := 0; wins <= 5; wins++ {
		prev := npc.ScaleStats(base, npc.Multiplier(1, wins))
		for level := 2; level <= 60; level++ {
			if npc.IsBossLevel(level) {
				continue
			}
			cur := npc.ScaleStats(base, npc.Multiplier(level, wins))
			assert.GreaterOrEqual(t, cur.Armor, prev.Armor)
			assert.GreaterOrEqual(t, cur.Strength, prev.Strength)
			assert.GreaterOrEqual(t, cur.Health, prev.Health)
			assert.GreaterOrEqual(t, cur.Speed, prev.Speed)
			prev = cur
		}
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Bug Hunter Jake", npc.Name(1))
	assert.Equal(t, "Master Chen", npc.Name(4))
	assert.Equal(t, "Grand Master Kai", npc.Name(8))
	assert.Equal(t, "Grand Master Kai", npc.Name(9))
	assert.Equal(t, "Grand Master Kai", npc.Name(57))
	assert.Equal(t, "Boss Titan", npc.Name(10))
	assert.Equal(t, "Boss Thunder", npc.Name(20))
	assert.Equal(t, "Final Boss Omega", npc.Name(100))
	assert.Equal(t, "Final Boss Omega", npc.Name(250))
}

func TestID(t *testing.T) {
	assert.Equal(t, "npc-3", npc.ID(3))
	assert.Equal(t, "boss-30", npc.ID(30))
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
		{ID: "c1", Name: "C1", Rarity: entities.RarityCommon, Stats: entities.Stats{Armor: 10, Strength: 20, Health: 50, Speed: 15}},
		{ID: "u1", Name: "U1", Rarity: entities.RarityUncommon, Stats: entities.Stats{Armor: 10, Strength: 20, Health: 50, Speed: 15}},
		{ID: "r1", Name: "R1", Rarity: entities.RarityRare, Stats: entities.Stats{Armor: 10, Strength: 20, Health: 50, Speed: 15}},
		{ID: "l1", Name: "L1", Rarity: entities.RarityLegendary, Stats: entities.Stats{Armor: 10, Strength: 20, Health: 50, Speed: 15}},
		{ID: "m1", Name: "M1", Rarity: entities.RarityMythical, Stats: entities.Stats{Armor: 10, Strength: 20, Health: 50, Speed: 15}},
		{ID: "e1", Name: "E1", Rarity: entities.RarityEpic, Stats: entities.Stats{Armor: 10, Strength: 20, Health: 50, Speed: 15}},
	})
}

func (s *GeneratorTestSuite) generator(ints ...int) *npc.Generator {
	gen, err := npc.NewGenerator(&npc.Config{
		Templates: s.templates,
		Random:    random.NewScripted(ints, nil),
	})
	s.Require().NoError(err)
	return gen
}

func (s *GeneratorTestSuite) TestConfigRequired() {
	_, err := npc.NewGenerator(&npc.Config{})
	s.Error(err)
}

func (s *GeneratorTestSuite) TestBossAtLevelTen() {
	opp, err := s.generator(4).Generate(10, 0)
	s.Require().NoError(err)

	s.True(opp.IsBoss)
	s.Equal("boss-10", opp.ID)
	s.Equal("Boss Titan", opp.Name)
	s.Equal(entities.EntityTypeBoss, opp.GetType())
	s.Equal(10, opp.Level)
	s.Equal("m1", opp.Creature.TemplateID)
	s.Equal(36, opp.Creature.Stats.Strength)
	s.Equal(91, opp.Creature.Stats.Health)
}

func (s *GeneratorTestSuite) TestEarlyLevelsUseCommonAndUncommon() {
	for _, idx := range []int{0, 1, 2, 3, 4} {
		opp, err := s.generator(idx).Generate(3, 0)
		s.Require().NoError(err)
		s.False(opp.IsBoss)
		s.LessOrEqual(opp.Creature.Rarity.Rank(), entities.RarityUncommon.Rank())
	}
}

func (s *GeneratorTestSuite) TestMidLevelsSkipLegendary() {
	for _, level := range []int{4, 5, 6} {
		seen := map[entities.Rarity]bool{}
		for idx := 0; idx < 5; idx++ {
			opp, err := s.generator(idx).Generate(level, 0)
			s.Require().NoError(err)
			seen[opp.Creature.Rarity] = true
		}
		s.False(seen[entities.RarityLegendary], "level %d", level)
		s.True(seen[entities.RarityEpic], "level %d", level)
		s.True(seen[entities.RarityMythical], "level %d", level)
		s.Len(seen, 5, "level %d", level)
	}
}

func (s *GeneratorTestSuite) TestLateLevelsUseWholeCatalog() {
	opp, err := s.generator(3).Generate(7, 0)
	s.Require().NoError(err)
	s.Equal("l1", opp.Creature.TemplateID)
	s.Equal("npc-7", opp.ID)
	s.Equal("Legend Diana", opp.Name)
}

func (s *GeneratorTestSuite) TestEmptyPoolFallsBackToCatalog() {
	s.templates = catalog.New([]entities.Template{
		{ID: "l1", Rarity: entities.RarityLegendary, Stats: entities.Stats{Health: 10}},
	})
	opp, err := s.generator(0).Generate(2, 0)
	s.Require().NoError(err)
	s.Equal("l1", opp.Creature.TemplateID)
}

func (s *GeneratorTestSuite) TestEmptyCatalog() {
	s.templates = catalog.New(nil)
	_, err := s.generator().Generate(1, 0)
	s.Error(err)
}

func (s *GeneratorTestSuite) TestClampsLevel() {
	opp, err := s.generator(0).Generate(0, -2)
	s.Require().NoError(err)
	s.Equal(1, opp.Level)
}
