package entities

import (
	"time"

	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// MaxBadges is the number of milestone badges; collecting all of them
// completes the game.
const MaxBadges = 10

// UpgradeKind names one of the trophy shop upgrades
type UpgradeKind string

// Upgrade kinds
const (
	UpgradeCatchChance      UpgradeKind = "catch_chance"
	UpgradeRareLuck         UpgradeKind = "rare_luck"
	UpgradeCreatureStrength UpgradeKind = "creature_strength"
)

// UpgradeKinds lists every upgrade in shop order
var UpgradeKinds = []UpgradeKind{
	UpgradeCatchChance,
	UpgradeRareLuck,
	UpgradeCreatureStrength,
}

// Valid reports whether k is a known upgrade
func (k UpgradeKind) Valid() bool {
	for _, kind := range UpgradeKinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Upgrades are the purchased upgrade levels
type Upgrades struct {
	CatchChance      int `json:"catch_chance"`
	RareLuck         int `json:"rare_luck"`
	CreatureStrength int `json:"creature_strength"`
}

// Level returns the current level of kind
func (u Upgrades) Level(kind UpgradeKind) int {
	switch kind {
	case UpgradeCatchChance:
		return u.CatchChance
	case UpgradeRareLuck:
		return u.RareLuck
	case UpgradeCreatureStrength:
		return u.CreatureStrength
	default:
		return 0
	}
}

// With returns a copy with kind set to level
func (u Upgrades) With(kind UpgradeKind, level int) Upgrades {
	switch kind {
	case UpgradeCatchChance:
		u.CatchChance = level
	case UpgradeRareLuck:
		u.RareLuck = level
	case UpgradeCreatureStrength:
		u.CreatureStrength = level
	}
	return u
}

// Progression is a player's meta state. The creature collection is stored
// separately.
type Progression struct {
	PlayerID        string    `json:"player_id"`
	DifficultyLevel int       `json:"difficulty_level"`
	Victories       int       `json:"victories"`
	Points          int       `json:"points"`
	Trophies        int       `json:"trophies"`
	Badges          int       `json:"badges"`
	BossWins        int       `json:"boss_wins"`
	Upgrades        Upgrades  `json:"upgrades"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewProgression returns the starting state for a player
func NewProgression(playerID string) *Progression {
	return &Progression{
		PlayerID:        playerID,
		DifficultyLevel: 1,
	}
}

// Clone returns a copy of p
func (p *Progression) Clone() *Progression {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// PlayerLevel is the level shown to the player: one level per two victories.
func (p *Progression) PlayerLevel() int {
	return p.Victories/2 + 1
}

// Complete reports whether every badge has been earned
func (p *Progression) Complete() bool {
	return p.Badges >= MaxBadges
}

// Validate checks the invariants of a record read from storage
func (p *Progression) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", p.PlayerID, vb)
	errors.ValidateMin("difficulty_level", p.DifficultyLevel, 1, vb)
	errors.ValidateMin("victories", p.Victories, 0, vb)
	errors.ValidateMin("points", p.Points, 0, vb)
	errors.ValidateMin("trophies", p.Trophies, 0, vb)
	errors.ValidateRange("badges", p.Badges, 0, MaxBadges, vb)
	errors.ValidateMin("boss_wins", p.BossWins, 0, vb)
	errors.ValidateMin("upgrades.catch_chance", p.Upgrades.CatchChance, 0, vb)
	errors.ValidateMin("upgrades.rare_luck", p.Upgrades.RareLuck, 0, vb)
	errors.ValidateMin("upgrades.creature_strength", p.Upgrades.CreatureStrength, 0, vb)
	return vb.Build()
}
