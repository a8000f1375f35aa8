package catalog

import "github.com/KirkDiggler/bug-arena/internal/entities"

var defaultTemplates = []entities.Template{
	// common
	{
		ID: "ladybug", Name: "Ladybug", Category: "Beetle", Rarity: entities.RarityCommon, Icon: "Shield",
		Stats:       entities.Stats{Armor: 12, Strength: 10, Health: 45, Speed: 8},
		Description: "A spotted garden guard with a surprisingly hard shell.",
	},
	{
		ID: "ant", Name: "Worker Ant", Category: "Ant", Rarity: entities.RarityCommon, Icon: "Leaf",
		Stats:       entities.Stats{Armor: 8, Strength: 14, Health: 35, Speed: 12},
		Description: "Lifts many times its own weight and never stops working.",
	},
	{
		ID: "cricket", Name: "Field Cricket", Category: "Cricket", Rarity: entities.RarityCommon, Icon: "Zap",
		Stats:       entities.Stats{Armor: 6, Strength: 11, Health: 30, Speed: 18},
		Description: "Chirps at dusk and jumps before you can blink.",
	},
	{
		ID: "pillbug", Name: "Pill Bug", Category: "Isopod", Rarity: entities.RarityCommon, Icon: "Shield",
		Stats:       entities.Stats{Armor: 18, Strength: 7, Health: 50, Speed: 4},
		Description: "Rolls into an armored ball when threatened.",
	},
	// uncommon
	{
		ID: "dragonfly", Name: "Dragonfly", Category: "Odonata", Rarity: entities.RarityUncommon, Icon: "Zap",
		Stats:       entities.Stats{Armor: 9, Strength: 18, Health: 40, Speed: 26},
		Description: "An aerial hunter that catches prey mid-flight.",
	},
	{
		ID: "mantis", Name: "Praying Mantis", Category: "Mantis", Rarity: entities.RarityUncommon, Icon: "Leaf",
		Stats:       entities.Stats{Armor: 11, Strength: 24, Health: 42, Speed: 14},
		Description: "Waits perfectly still, then strikes with folded blades.",
	},
	{
		ID: "stag-beetle", Name: "Stag Beetle", Category: "Beetle", Rarity: entities.RarityUncommon, Icon: "Shield",
		Stats:       entities.Stats{Armor: 20, Strength: 20, Health: 55, Speed: 7},
		Description: "Locks horns with rivals over the best oak sap.",
	},
	// rare
	{
		ID: "firefly", Name: "Firefly", Category: "Beetle", Rarity: entities.RarityRare, Icon: "Sparkles",
		Stats:       entities.Stats{Armor: 14, Strength: 22, Health: 50, Speed: 22},
		Description: "Its glow dazzles opponents on summer nights.",
	},
	{
		ID: "tarantula-hawk", Name: "Tarantula Hawk", Category: "Wasp", Rarity: entities.RarityRare, Icon: "Zap",
		Stats:       entities.Stats{Armor: 13, Strength: 30, Health: 48, Speed: 20},
		Description: "A wasp whose sting is feared by spiders twice its size.",
	},
	// legendary
	{
		ID: "hercules-beetle", Name: "Hercules Beetle", Category: "Beetle", Rarity: entities.RarityLegendary, Icon: "Crown",
		Stats:       entities.Stats{Armor: 30, Strength: 34, Health: 70, Speed: 10},
		Description: "The strongest beetle of the rainforest canopy.",
	},
	{
		ID: "moon-moth", Name: "Luna Moth", Category: "Moth", Rarity: entities.RarityLegendary, Icon: "Moon",
		Stats:       entities.Stats{Armor: 16, Strength: 28, Health: 60, Speed: 30},
		Description: "Seen only under a full moon, trailing pale green wings.",
	},
	// epic
	{
		ID: "orchid-mantis", Name: "Orchid Mantis", Category: "Mantis", Rarity: entities.RarityEpic, Icon: "Sparkles",
		Stats:       entities.Stats{Armor: 22, Strength: 40, Health: 72, Speed: 28},
		Description: "Disguised as a flower, it strikes from among the petals.",
	},
	// mythical
	{
		ID: "golden-scarab", Name: "Golden Scarab", Category: "Beetle", Rarity: entities.RarityMythical, Icon: "Crown",
		Stats:       entities.Stats{Armor: 36, Strength: 44, Health: 90, Speed: 18},
		Description: "A relic of legend said to roll the sun across the sky.",
	},
}
