package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/bug-arena/internal/catalog"
	"github.com/KirkDiggler/bug-arena/internal/engine/battle"
	"github.com/KirkDiggler/bug-arena/internal/engine/encounter"
	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/orchestrators/game"
)

func printStats(w io.Writer, s entities.Stats) {
	fmt.Fprintf(w, "ARM %3d  STR %3d  HP %3d  SPD %3d", s.Armor, s.Strength, s.Health, s.Speed)
}

func printCreature(w io.Writer, c *entities.Creature) {
	fmt.Fprintf(w, "  %-32s %-16s %-9s L%-3d ", c.ID, c.Name, c.Rarity, c.Level)
	printStats(w, c.Stats)
	fmt.Fprintln(w)
}

func printProgress(w io.Writer, p *game.GetProgressOutput) {
	prog := p.Progression
	fmt.Fprintf(w, "Player %s  level %d  difficulty %d\n", prog.PlayerID, p.PlayerLevel, prog.DifficultyLevel)
	fmt.Fprintf(w, "Points %d  trophies %d  victories %d  boss wins %d\n",
		prog.Points, prog.Trophies, prog.Victories, prog.BossWins)
	fmt.Fprintf(w, "Upgrades: catch chance %d, rare luck %d, creature strength %d\n",
		prog.Upgrades.CatchChance, prog.Upgrades.RareLuck, prog.Upgrades.CreatureStrength)

	names := make([]string, len(p.Badges))
	for i, b := range p.Badges {
		names[i] = b.Name
	}
	fmt.Fprintf(w, "Badges %d/%d: %s\n", len(p.Badges), entities.MaxBadges, strings.Join(names, ", "))
	if p.Complete {
		fmt.Fprintln(w, "Every badge is yours. The arena is complete!")
	}

	if len(p.Collection) == 0 {
		fmt.Fprintln(w, "Your collection is empty. Try 'search'.")
		return
	}
	fmt.Fprintf(w, "Collection (%d):\n", len(p.Collection))
	for _, c := range p.Collection {
		printCreature(w, c)
	}
}

func printCandidates(w io.Writer, candidates []game.Candidate) {
	for _, c := range candidates {
		state := fmt.Sprintf("%d%% catch", c.CatchRate)
		if c.Taken {
			state = "gone"
		}
		fmt.Fprintf(w, "  [%d] %-16s %-9s %s\n", c.Slot+1, c.Template.Name, c.Template.Rarity, state)
	}
}

func printOpponent(w io.Writer, opp *entities.NPC) {
	kind := "Trainer"
	if opp.IsBoss {
		kind = "BOSS"
	}
	fmt.Fprintf(w, "%s %s (level %d) sends out %s\n  ", kind, opp.Name, opp.Level, opp.Creature.Name)
	printStats(w, opp.Creature.Stats)
	fmt.Fprintln(w)
}

func printRewards(w io.Writer, r *game.Rewards) {
	if r == nil {
		return
	}
	fmt.Fprintf(w, "Victory! +%d trophies, +%d points\n", r.TrophiesEarned, r.PointsEarned)
	if r.BadgeEarned {
		fmt.Fprintln(w, "You earned a badge!")
	}
}

func printBattle(w io.Writer, b *battle.Battle) {
	fmt.Fprintf(w, "Turn %d: %s HP %d/%d vs %s HP %d/%d\n",
		b.TurnNumber,
		b.Player.Name, b.PlayerHealth, b.Player.Stats.Health,
		b.Opponent.Creature.Name, b.OpponentHealth, b.Opponent.Creature.Stats.Health,
	)
	if b.PlayerStunned {
		fmt.Fprintln(w, "  You are stunned this turn.")
	}
	if b.OpponentStunned {
		fmt.Fprintln(w, "  The opponent is stunned this turn.")
	}
}

func printCatalog(w io.Writer, c *catalog.Catalog) {
	for _, r := range entities.Rarities {
		templates := c.ByRarity(r)
		if len(templates) == 0 {
			continue
		}
		base := encounter.BaseCatchRate(r)
		fmt.Fprintf(w, "%s (base catch %d%%)\n", r, base)
		for _, t := range templates {
			fmt.Fprintf(w, "  %-16s %-10s ", t.Name, t.Category)
			printStats(w, t.Stats)
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, "Badges:")
	for i, b := range catalog.Badges() {
		fmt.Fprintf(w, "  %2d. %-16s %s\n", i+1, b.Name, b.Description)
	}
}

// printError explains a failed command. Storage failures still applied the
// change for this session.
func printError(w io.Writer, err error) {
	switch {
	case errors.IsInsufficientFunds(err):
		meta := errors.GetMeta(err)
		fmt.Fprintf(w, "Not enough %v: need %v, have %v\n", meta["currency"], meta["required"], meta["available"])
	case errors.IsUnavailable(err):
		fmt.Fprintf(w, "Warning: %v (the change is kept for this session)\n", err)
	default:
		fmt.Fprintf(w, "%s\n", errors.GetMessage(err))
	}
}
