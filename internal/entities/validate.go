package entities

import "github.com/KirkDiggler/bug-arena/internal/errors"

// Validate checks a creature read from storage before the game trusts it
func (c *Creature) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateRequired("name", c.Name, vb)
	if !c.Rarity.Valid() {
		vb.Fieldf("rarity", "unknown rarity %q", c.Rarity)
	}
	errors.ValidateMin("level", c.Level, 1, vb)
	errors.ValidateMin("armor", c.Stats.Armor, 0, vb)
	errors.ValidateMin("strength", c.Stats.Strength, 0, vb)
	errors.ValidateMin("health", c.Stats.Health, 0, vb)
	errors.ValidateMin("speed", c.Stats.Speed, 0, vb)
	return vb.Build()
}
