package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types for opponents
const (
	EntityTypeNPC  = "npc"
	EntityTypeBoss = "boss"
)

// NPC is a generated opponent. It is rebuilt whenever the difficulty level
// or boss win count changes and is never stored with the player's data.
type NPC struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Level    int       `json:"level"`
	Creature *Creature `json:"creature"`
	Avatar   string    `json:"avatar"`
	IsBoss   bool      `json:"is_boss"`
}

var _ core.Entity = (*NPC)(nil)

// GetID implements core.Entity
func (n *NPC) GetID() string {
	return n.ID
}

// GetType implements core.Entity
func (n *NPC) GetType() string {
	if n.IsBoss {
		return EntityTypeBoss
	}
	return EntityTypeNPC
}
