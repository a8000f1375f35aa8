package encounter

import (
	"log/slog"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
)

// DefaultBatchSize is the number of candidates offered per search
const DefaultBatchSize = 3

// TemplateSource is the read-only catalog the generator draws from
type TemplateSource interface {
	All() []entities.Template
	ByRarity(r entities.Rarity) []entities.Template
}

// GeneratorConfig holds the dependencies of a Generator
type GeneratorConfig struct {
	Templates TemplateSource
	Random    random.Source
	BatchSize int
}

// Validate checks the config
func (c *GeneratorConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Templates == nil {
		vb.RequiredField("Templates")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.BatchSize < 0 {
		vb.Field("BatchSize", "must not be negative")
	}
	return vb.Build()
}

// Generator draws encounter batches
type Generator struct {
	templates TemplateSource
	random    random.Source
	batchSize int
}

// NewGenerator creates a Generator. A zero batch size uses DefaultBatchSize.
func NewGenerator(cfg *GeneratorConfig) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generator config")
	}

	size := cfg.BatchSize
	if size == 0 {
		size = DefaultBatchSize
	}

	return &Generator{
		templates: cfg.Templates,
		random:    cfg.Random,
		batchSize: size,
	}, nil
}

// Generate draws an independent template for every slot. Duplicates across
// slots are allowed.
func (g *Generator) Generate(rareLuckLevel int) []entities.Template {
	weights := RarityWeights(rareLuckLevel)
	batch := make([]entities.Template, 0, g.batchSize)
	for i := 0; i < g.batchSize; i++ {
		tmpl, ok := g.draw(weights)
		if !ok {
			slog.Warn("catalog has no templates to encounter")
			return batch
		}
		batch = append(batch, tmpl)
	}
	return batch
}

func (g *Generator) draw(w Weights) (entities.Template, bool) {
	tier := DrawRarity(w, g.random)
	pool := g.templates.ByRarity(tier)
	if len(pool) > 0 {
		return pool[g.random.Intn(len(pool))], true
	}

	// Empty tier falls back to the first common template
	slog.Debug("empty rarity tier, using fallback", "rarity", tier)
	if commons := g.templates.ByRarity(entities.RarityCommon); len(commons) > 0 {
		return commons[0], true
	}
	if all := g.templates.All(); len(all) > 0 {
		return all[0], true
	}
	return entities.Template{}, false
}
