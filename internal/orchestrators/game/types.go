package game

import (
	"github.com/KirkDiggler/bug-arena/internal/catalog"
	"github.com/KirkDiggler/bug-arena/internal/engine/battle"
	"github.com/KirkDiggler/bug-arena/internal/entities"
)

// GetProgressInput defines the request for loading a player's game
type GetProgressInput struct {
	PlayerID string
}

// GetProgressOutput is the player's full game state. Collection is sorted
// for display.
type GetProgressOutput struct {
	Progression *entities.Progression
	Collection  []*entities.Creature
	Badges      []catalog.Badge
	PlayerLevel int
	Complete    bool
}

// SearchInput defines the request for drawing a new encounter batch
type SearchInput struct {
	PlayerID string
}

// Candidate is one slot of the pending batch with its previewed catch rate
type Candidate struct {
	Slot      int
	Template  entities.Template
	CatchRate int
	Taken     bool
}

// SearchOutput defines the response for a search
type SearchOutput struct {
	Candidates []Candidate
}

// CatchInput defines the request for a catch attempt. Slot is zero based.
type CatchInput struct {
	PlayerID string
	Slot     int
}

// CatchOutput defines the response for a catch attempt. Creature is nil
// when the candidate fled.
type CatchOutput struct {
	Success   bool
	Creature  *entities.Creature
	FledName  string
	CatchRate int
	Roll      int
	// Remaining is how many slots of the batch are still open
	Remaining int
}

// ReleaseInput defines the request for releasing a creature
type ReleaseInput struct {
	PlayerID   string
	CreatureID string
}

// ReleaseOutput defines the response for releasing a creature
type ReleaseOutput struct {
	Released     *entities.Creature
	PointsEarned int
	Progression  *entities.Progression
}

// LevelUpInput defines the request for leveling a creature
type LevelUpInput struct {
	PlayerID   string
	CreatureID string
}

// LevelUpOutput defines the response for leveling a creature
type LevelUpOutput struct {
	Creature    *entities.Creature
	Cost        int
	Progression *entities.Progression
}

// PurchaseUpgradeInput defines the request for buying an upgrade level
type PurchaseUpgradeInput struct {
	PlayerID string
	Kind     entities.UpgradeKind
}

// PurchaseUpgradeOutput defines the response for buying an upgrade level
type PurchaseUpgradeOutput struct {
	Kind        entities.UpgradeKind
	Level       int
	Cost        int
	Progression *entities.Progression
}

// GetOpponentInput defines the request for the current opponent
type GetOpponentInput struct {
	PlayerID string
}

// GetOpponentOutput defines the response for the current opponent
type GetOpponentOutput struct {
	Opponent *entities.NPC
}

// Rewards is what a won battle paid out
type Rewards struct {
	PointsEarned   int
	TrophiesEarned int
	BadgeEarned    bool
}

// QuickBattleInput defines the request for a single roll battle
type QuickBattleInput struct {
	PlayerID   string
	CreatureID string
}

// QuickBattleOutput defines the response for a single roll battle. Rewards
// is nil on a loss.
type QuickBattleOutput struct {
	Result      *battle.QuickResult
	Opponent    *entities.NPC
	Rewards     *Rewards
	Progression *entities.Progression
}

// StartBattleInput defines the request for starting a tactical battle
type StartBattleInput struct {
	PlayerID   string
	CreatureID string
}

// StartBattleOutput defines the response for starting a tactical battle
type StartBattleOutput struct {
	Battle *battle.Battle
}

// TakeTurnInput defines the request for one tactical turn
type TakeTurnInput struct {
	PlayerID string
	Action   battle.Action
}

// TakeTurnOutput defines the response for one tactical turn. Outcome is set
// once the battle finishes, and Rewards only when the player won.
type TakeTurnOutput struct {
	Turn        *battle.Turn
	Battle      *battle.Battle
	Outcome     *battle.Outcome
	Rewards     *Rewards
	Progression *entities.Progression
}

// GetBattleInput defines the request for the active tactical battle
type GetBattleInput struct {
	PlayerID string
}

// GetBattleOutput defines the response for the active tactical battle
type GetBattleOutput struct {
	Battle *battle.Battle
}

// AbandonBattleInput defines the request for leaving a tactical battle
type AbandonBattleInput struct {
	PlayerID string
}

// AbandonBattleOutput defines the response for leaving a tactical battle
type AbandonBattleOutput struct {
	Abandoned bool
}

// ResetInput defines the request for wiping a player's game
type ResetInput struct {
	PlayerID string
}

// ResetOutput defines the response for wiping a player's game
type ResetOutput struct {
	CreaturesRemoved int
}
