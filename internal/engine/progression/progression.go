// Package progression turns resolved game events into changes to a
// player's progression record and collection. Every function is pure: it
// reads the current state and returns the change for the caller to apply
// and persist.
package progression

import (
	"math"
	"sort"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// MaxUpgradeLevel is the highest level any upgrade can reach
const MaxUpgradeLevel = 50

// Currency names used in insufficient funds errors
const (
	CurrencyPoints   = "points"
	CurrencyTrophies = "trophies"
)

var releaseBasePoints = map[entities.Rarity]int{
	entities.RarityCommon:    10,
	entities.RarityUncommon:  25,
	entities.RarityRare:      50,
	entities.RarityLegendary: 100,
	entities.RarityEpic:      200,
	entities.RarityMythical:  500,
}

var upgradeBaseCost = map[entities.UpgradeKind]int{
	entities.UpgradeCatchChance:      3,
	entities.UpgradeRareLuck:         5,
	entities.UpgradeCreatureStrength: 4,
}

// Change is the result of one event. Patch only carries fields that moved.
type Change struct {
	Patch   entities.ProgressionPatch
	Added   *entities.Creature
	Removed *entities.Creature
	Updated *entities.Creature

	PointsEarned   int
	TrophiesEarned int
	Cost           int
	BadgeEarned    bool
}

// ReleasePoints is what releasing c pays a player at difficultyLevel.
func ReleasePoints(c *entities.Creature, difficultyLevel int) int {
	base := releaseBasePoints[c.Rarity]
	return (base + c.Level*5 + int(math.Floor(float64(difficultyLevel)*2))) * 3
}

// LevelUpCost is the point cost of raising a creature from level
func LevelUpCost(level int) int {
	return level * 20
}

// UpgradeCost is the trophy cost of the next level of kind
func UpgradeCost(kind entities.UpgradeKind, currentLevel int) int {
	return upgradeBaseCost[kind] + currentLevel*2
}

// VictoryBonusPoints is the point bonus for a win after victoriesBefore wins
func VictoryBonusPoints(victoriesBefore int) int {
	return victoriesBefore / 2 * 10
}

// LevelStat raises one stat by 10%, rounded down. Positive stats always
// gain at least one point.
func LevelStat(v int) int {
	if v <= 0 {
		return v
	}
	return max(int(math.Floor(float64(v)*1.1)), v+1)
}

// OnCatchSuccess adds a freshly caught creature at level 1.
func OnCatchSuccess(c *entities.Creature) (*Change, error) {
	if c == nil {
		return nil, errors.InvalidArgument("creature is required")
	}
	added := c.Clone()
	added.Level = 1
	return &Change{Added: added}, nil
}

// OnRelease removes creatureID from the collection and pays out points.
func OnRelease(prog *entities.Progression, collection []*entities.Creature, creatureID string) (*Change, error) {
	c := Find(collection, creatureID)
	if c == nil {
		return nil, errors.NotFoundf("creature %s not found", creatureID)
	}

	earned := ReleasePoints(c, prog.DifficultyLevel)
	return &Change{
		Patch:        entities.ProgressionPatch{Points: entities.Int(prog.Points + earned)},
		Removed:      c.Clone(),
		PointsEarned: earned,
	}, nil
}

// OnLevelUp spends points to raise a creature one level.
func OnLevelUp(prog *entities.Progression, collection []*entities.Creature, creatureID string) (*Change, error) {
	c := Find(collection, creatureID)
	if c == nil {
		return nil, errors.NotFoundf("creature %s not found", creatureID)
	}

	cost := LevelUpCost(c.Level)
	if prog.Points < cost {
		return nil, errors.InsufficientFunds(CurrencyPoints, cost, prog.Points)
	}

	updated := c.Clone()
	updated.Level++
	updated.Stats = entities.Stats{
		Armor:    LevelStat(c.Stats.Armor),
		Strength: LevelStat(c.Stats.Strength),
		Health:   LevelStat(c.Stats.Health),
		Speed:    LevelStat(c.Stats.Speed),
	}

	return &Change{
		Patch:   entities.ProgressionPatch{Points: entities.Int(prog.Points - cost)},
		Updated: updated,
		Cost:    cost,
	}, nil
}

// OnBattleVictory advances difficulty and pays out a win. Badges stop at the
// cap while boss wins keep counting.
func OnBattleVictory(prog *entities.Progression, opponentLevel int, opponentIsBoss bool) *Change {
	bonus := VictoryBonusPoints(prog.Victories)
	trophies := max(opponentLevel, 0)

	change := &Change{
		Patch: entities.ProgressionPatch{
			DifficultyLevel: entities.Int(prog.DifficultyLevel + 1),
			Victories:       entities.Int(prog.Victories + 1),
			Trophies:        entities.Int(prog.Trophies + trophies),
			Points:          entities.Int(prog.Points + bonus),
		},
		PointsEarned:   bonus,
		TrophiesEarned: trophies,
	}

	if opponentIsBoss {
		change.BadgeEarned = prog.Badges < entities.MaxBadges
		change.Patch.Badges = entities.Int(min(prog.Badges+1, entities.MaxBadges))
		change.Patch.BossWins = entities.Int(prog.BossWins + 1)
	}
	return change
}

// OnUpgradePurchase spends trophies on one level of kind.
func OnUpgradePurchase(prog *entities.Progression, kind entities.UpgradeKind) (*Change, error) {
	if !kind.Valid() {
		return nil, errors.InvalidArgumentf("unknown upgrade %q", kind)
	}

	current := prog.Upgrades.Level(kind)
	if current >= MaxUpgradeLevel {
		return nil, errors.OutOfRangef("%s is already at max level %d", kind, MaxUpgradeLevel)
	}

	cost := UpgradeCost(kind, current)
	if prog.Trophies < cost {
		return nil, errors.InsufficientFunds(CurrencyTrophies, cost, prog.Trophies)
	}

	upgrades := prog.Upgrades.With(kind, current+1)
	return &Change{
		Patch: entities.ProgressionPatch{
			Trophies: entities.Int(prog.Trophies - cost),
			Upgrades: &upgrades,
		},
		Cost: cost,
	}, nil
}

// Apply merges a change into the in-memory progression and collection and
// returns the new collection.
func Apply(prog *entities.Progression, collection []*entities.Creature, change *Change) []*entities.Creature {
	change.Patch.ApplyTo(prog)

	out := make([]*entities.Creature, 0, len(collection)+1)
	for _, c := range collection {
		switch {
		case change.Removed != nil && c.ID == change.Removed.ID:
			continue
		case change.Updated != nil && c.ID == change.Updated.ID:
			out = append(out, change.Updated.Clone())
		default:
			out = append(out, c)
		}
	}
	if change.Added != nil {
		out = append(out, change.Added.Clone())
	}
	return out
}

// Find returns the creature with id, or nil
func Find(collection []*entities.Creature, id string) *entities.Creature {
	for _, c := range collection {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Sort orders a collection for display: highest level first, then highest
// rarity, then name.
func Sort(collection []*entities.Creature) {
	sort.SliceStable(collection, func(i, j int) bool {
		a, b := collection[i], collection[j]
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		if a.Rarity.Rank() != b.Rarity.Rank() {
			return a.Rarity.Rank() > b.Rarity.Rank()
		}
		return a.Name < b.Name
	})
}
