package testutils

import (
	"time"

	"github.com/KirkDiggler/bug-arena/internal/entities"
)

// TestPlayerID is the default player in fixtures
const TestPlayerID = "player-test-001"

// CreateTestTemplate returns a common template with round stats
func CreateTestTemplate(id string) entities.Template {
	return entities.Template{
		ID:          id,
		Name:        "Ladybug",
		Category:    "Beetle",
		Rarity:      entities.RarityCommon,
		Icon:        "Shield",
		Description: "A spotted garden guard.",
		Stats:       entities.Stats{Armor: 12, Strength: 10, Health: 45, Speed: 8},
	}
}

// CreateTestCreature returns a level 1 creature caught at capturedAt
func CreateTestCreature(id string, capturedAt time.Time) *entities.Creature {
	return entities.FromTemplate(CreateTestTemplate("ladybug"), id, capturedAt)
}

// CreateTestCreatureWithRarity returns a creature of the given tier and level
func CreateTestCreatureWithRarity(id string, rarity entities.Rarity, level int) *entities.Creature {
	c := CreateTestCreature(id, FixedTime)
	c.Rarity = rarity
	c.Level = level
	return c
}

// CreateTestProgression returns a starting record with some currency
func CreateTestProgression(playerID string, points, trophies int) *entities.Progression {
	p := entities.NewProgression(playerID)
	p.Points = points
	p.Trophies = trophies
	return p
}

// FixedTime is a stable capture time for fixtures
var FixedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
