package encounter

import (
	"math"
	"strconv"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
)

// MaxCatchRate is the hard ceiling on any catch rate, in percent
const MaxCatchRate = 95

var baseCatchRates = map[entities.Rarity]int{
	entities.RarityCommon:    80,
	entities.RarityUncommon:  60,
	entities.RarityRare:      40,
	entities.RarityLegendary: 20,
	entities.RarityEpic:      10,
	entities.RarityMythical:  5,
}

// BaseCatchRate returns the percent chance before bonuses. Unknown tiers
// use the mythical rate.
func BaseCatchRate(r entities.Rarity) int {
	if rate, ok := baseCatchRates[r]; ok {
		return rate
	}
	return baseCatchRates[entities.RarityMythical]
}

// CatchRate returns the capped catch chance in percent.
func CatchRate(r entities.Rarity, playerLevel, catchChanceLevel int) int {
	if playerLevel < 0 {
		playerLevel = 0
	}
	if catchChanceLevel < 0 {
		catchChanceLevel = 0
	}
	levelBonus := min(playerLevel*5, 30)
	upgradeBonus := catchChanceLevel * 5
	return min(BaseCatchRate(r)+levelBonus+upgradeBonus, MaxCatchRate)
}

// CatchInput is everything a catch attempt depends on
type CatchInput struct {
	Template              entities.Template
	PlayerLevel           int
	CatchChanceLevel      int
	CreatureStrengthLevel int
	Now                   time.Time
}

// CatchOutcome is the result of one roll. Creature is nil when the
// candidate fled.
type CatchOutcome struct {
	Success  bool
	Creature *entities.Creature
	FledName string
	Rate     int
	Roll     int
}

// Catch rolls uniform [0, 100) against the catch rate.
func Catch(in CatchInput, src random.Source) *CatchOutcome {
	rate := CatchRate(in.Template.Rarity, in.PlayerLevel, in.CatchChanceLevel)
	roll := src.Intn(100)

	if roll >= rate {
		return &CatchOutcome{
			FledName: in.Template.Name,
			Rate:     rate,
			Roll:     roll,
		}
	}

	id := in.Template.ID + "-" + strconv.FormatInt(in.Now.UnixNano(), 10)
	creature := entities.FromTemplate(in.Template, id, in.Now)
	creature.Stats.Strength = ScaledStrength(in.Template.Stats.Strength, in.CreatureStrengthLevel)

	return &CatchOutcome{
		Success:  true,
		Creature: creature,
		Rate:     rate,
		Roll:     roll,
	}
}

// ScaledStrength applies the creature strength upgrade, rounding down.
func ScaledStrength(strength, upgradeLevel int) int {
	if upgradeLevel <= 0 {
		return strength
	}
	return int(math.Floor(float64(strength) * (1 + float64(upgradeLevel)*0.1)))
}
