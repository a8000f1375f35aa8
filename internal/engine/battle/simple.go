// Package battle resolves fights between a player creature and an opponent,
// either as a single power comparison or as a multi-turn tactical exchange.
package battle

import (
	"math"

	"github.com/KirkDiggler/bug-arena/internal/entities"
)

// bossDamageMultiplier softens every hit a boss lands
const bossDamageMultiplier = 0.8

// Power is the raw hit of an attacker against a defender's armor. Armor
// never reduces a hit below 30% of strength.
func Power(strength, armor int) float64 {
	s := float64(strength)
	return math.Max(s-float64(armor)*0.1, s*0.3)
}

// QuickResult is the outcome of a single-roll battle
type QuickResult struct {
	PlayerPower float64
	NPCPower    float64
	PlayerWon   bool
	Damage      int
	Winner      EntityRef
	// TrophiesEarned is the opponent level on a win, zero otherwise
	TrophiesEarned int
	BadgeEarned    bool
}

// ResolveQuick compares both powers once. The player must be strictly
// stronger; a tie goes to the opponent.
func ResolveQuick(player *entities.Creature, opponent *entities.NPC) *QuickResult {
	playerPower := Power(player.Stats.Strength, opponent.Creature.Stats.Armor)
	npcPower := Power(opponent.Creature.Stats.Strength, player.Stats.Armor)

	result := &QuickResult{
		PlayerPower: playerPower,
		NPCPower:    npcPower,
		PlayerWon:   playerPower > npcPower,
		Damage:      int(math.Round(math.Abs(playerPower - npcPower))),
	}
	if result.PlayerWon {
		result.Winner = RefOf(player)
		result.TrophiesEarned = opponent.Level
		result.BadgeEarned = opponent.IsBoss
	} else {
		result.Winner = RefOf(opponent)
	}
	return result
}
