// Package catalog is the static list of creature templates and badges.
package catalog

import (
	"github.com/KirkDiggler/bug-arena/internal/entities"
)

// Catalog is a read-only set of templates indexed by id and rarity
type Catalog struct {
	templates []entities.Template
	byID      map[string]entities.Template
	byRarity  map[entities.Rarity][]entities.Template
}

// New builds a catalog from templates. Order is preserved within each tier.
func New(templates []entities.Template) *Catalog {
	c := &Catalog{
		templates: make([]entities.Template, len(templates)),
		byID:      make(map[string]entities.Template, len(templates)),
		byRarity:  make(map[entities.Rarity][]entities.Template),
	}
	copy(c.templates, templates)
	for _, t := range templates {
		c.byID[t.ID] = t
		c.byRarity[t.Rarity] = append(c.byRarity[t.Rarity], t)
	}
	return c
}

// Default returns the catalog shipped with the game
func Default() *Catalog {
	return New(defaultTemplates)
}

// All returns every template in catalog order
func (c *Catalog) All() []entities.Template {
	out := make([]entities.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// ByRarity returns the templates of one tier
func (c *Catalog) ByRarity(r entities.Rarity) []entities.Template {
	tier := c.byRarity[r]
	out := make([]entities.Template, len(tier))
	copy(out, tier)
	return out
}

// Get looks a template up by id
func (c *Catalog) Get(id string) (entities.Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	return len(c.templates)
}
