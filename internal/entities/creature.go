// Package entities holds the plain data that moves between the game engine,
// the orchestrator and storage.
package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Rarity is the ordered tier of a creature template
type Rarity string

// Rarity tiers, lowest first
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
	RarityEpic      Rarity = "epic"
	RarityMythical  Rarity = "mythical"
)

// Rarities lists every tier in rank order
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityLegendary,
	RarityEpic,
	RarityMythical,
}

// Rank orders tiers from 1 (common) to 6 (mythical). Unknown tiers rank 0.
func (r Rarity) Rank() int {
	for i, tier := range Rarities {
		if tier == r {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether r is a known tier
func (r Rarity) Valid() bool {
	return r.Rank() > 0
}

// String returns the tier name
func (r Rarity) String() string {
	return string(r)
}

// Stats are the four combat stats. Health is maximum health; current health
// only exists inside a battle.
type Stats struct {
	Armor    int `json:"armor"`
	Strength int `json:"strength"`
	Health   int `json:"health"`
	Speed    int `json:"speed"`
}

// Template is a catalog entry that creatures are copied from
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Stats       Stats  `json:"stats"`
	Rarity      Rarity `json:"rarity"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// EntityTypeCreature is the core.Entity type of a captured creature
const EntityTypeCreature = "creature"

// Creature is one collected bug owned by a player
type Creature struct {
	ID          string    `json:"id"`
	TemplateID  string    `json:"template_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Stats       Stats     `json:"stats"`
	Rarity      Rarity    `json:"rarity"`
	Level       int       `json:"level"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CapturedAt  time.Time `json:"captured_at"`
}

var _ core.Entity = (*Creature)(nil)

// GetID implements core.Entity
func (c *Creature) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Creature) GetType() string {
	return EntityTypeCreature
}

// Clone returns a copy that shares no state with c
func (c *Creature) Clone() *Creature {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// FromTemplate copies a template into a level 1 creature with the given id
func FromTemplate(t Template, id string, capturedAt time.Time) *Creature {
	return &Creature{
		ID:          id,
		TemplateID:  t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Stats:       t.Stats,
		Rarity:      t.Rarity,
		Level:       1,
		Icon:        t.Icon,
		Description: t.Description,
		CapturedAt:  capturedAt,
	}
}
