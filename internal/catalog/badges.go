package catalog

import "github.com/KirkDiggler/bug-arena/internal/entities"

// Badge is a milestone reward for defeating a boss
type Badge struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var badges = []Badge{
	{ID: 1, Name: "Forest Badge", Description: "Defeat the Forest Guardian", Icon: "🌲"},
	{ID: 2, Name: "Thunder Badge", Description: "Defeat the Lightning Master", Icon: "⚡"},
	{ID: 3, Name: "Ocean Badge", Description: "Defeat the Sea Champion", Icon: "🌊"},
	{ID: 4, Name: "Fire Badge", Description: "Defeat the Flame Lord", Icon: "🔥"},
	{ID: 5, Name: "Ice Badge", Description: "Defeat the Frost King", Icon: "❄️"},
	{ID: 6, Name: "Shadow Badge", Description: "Defeat the Dark Master", Icon: "🌙"},
	{ID: 7, Name: "Crystal Badge", Description: "Defeat the Crystal Guardian", Icon: "💎"},
	{ID: 8, Name: "Sky Badge", Description: "Defeat the Wind Master", Icon: "☁️"},
	{ID: 9, Name: "Earth Badge", Description: "Defeat the Ground Champion", Icon: "🏔️"},
	{ID: 10, Name: "Rainbow Badge", Description: "Defeat the Ultimate Champion", Icon: "🌈"},
}

// Badges returns all badges in award order
func Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}

// EarnedBadges returns the first count badges
func EarnedBadges(count int) []Badge {
	if count <= 0 {
		return nil
	}
	if count > entities.MaxBadges {
		count = entities.MaxBadges
	}
	return Badges()[:count]
}
