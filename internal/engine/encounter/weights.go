// Package encounter draws creature candidates by rarity and resolves catch
// attempts against them.
package encounter

import (
	"math"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
)

// Weights are the relative encounter weights of the encounterable tiers.
// They do not need to sum to 100.
type Weights struct {
	Common    float64
	Uncommon  float64
	Rare      float64
	Legendary float64
}

// EncounterableRarities are the tiers a search can produce, in draw order.
// Epic and mythical creatures only appear as opponents.
var EncounterableRarities = []entities.Rarity{
	entities.RarityCommon,
	entities.RarityUncommon,
	entities.RarityRare,
	entities.RarityLegendary,
}

// RarityWeights returns the tier weights for a rare luck upgrade level.
// Negative levels are treated as zero.
func RarityWeights(rareLuckLevel int) Weights {
	if rareLuckLevel < 0 {
		rareLuckLevel = 0
	}
	luckBonus := float64(rareLuckLevel) * 0.5
	return Weights{
		Common:    math.Max(85-luckBonus*2, 70),
		Uncommon:  13,
		Rare:      math.Min(1.8+luckBonus, 6),
		Legendary: math.Min(0.2+luckBonus*0.5, 2),
	}
}

// Of returns the weight of r, zero for tiers that are never encountered.
func (w Weights) Of(r entities.Rarity) float64 {
	switch r {
	case entities.RarityCommon:
		return w.Common
	case entities.RarityUncommon:
		return w.Uncommon
	case entities.RarityRare:
		return w.Rare
	case entities.RarityLegendary:
		return w.Legendary
	default:
		return 0
	}
}

// Total is the sum of all weights
func (w Weights) Total() float64 {
	return w.Common + w.Uncommon + w.Rare + w.Legendary
}

// Chance returns the probability of drawing r, in [0, 1].
func (w Weights) Chance(r entities.Rarity) float64 {
	total := w.Total()
	if total <= 0 {
		return 0
	}
	return w.Of(r) / total
}

// DrawRarity picks a tier with cumulative weight roulette: r is uniform in
// [0, total) and the first tier whose running sum reaches r wins.
func DrawRarity(w Weights, src random.Source) entities.Rarity {
	total := w.Total()
	if total <= 0 {
		return entities.RarityCommon
	}

	r := src.Float64() * total
	running := 0.0
	for _, tier := range EncounterableRarities {
		running += w.Of(tier)
		if running >= r {
			return tier
		}
	}
	return EncounterableRarities[len(EncounterableRarities)-1]
}
