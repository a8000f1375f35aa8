package battle

import (
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
)

// Action is one of the three tactical choices
type Action string

// Actions
const (
	ActionAttack Action = "attack"
	ActionDefend Action = "defend"
	ActionSpeed  Action = "speed"
)

// Actions lists every action in menu order
var Actions = []Action{ActionAttack, ActionDefend, ActionSpeed}

// ParseAction accepts an action name, including the "defense" spelling.
func ParseAction(s string) (Action, error) {
	switch s {
	case "attack", "a":
		return ActionAttack, nil
	case "defend", "defense", "d":
		return ActionDefend, nil
	case "speed", "s":
		return ActionSpeed, nil
	default:
		return "", errors.InvalidArgumentf("unknown action %q", s)
	}
}

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	return a == ActionAttack || a == ActionDefend || a == ActionSpeed
}

// Side identifies a combatant
type Side string

// Sides
const (
	SideNone     Side = ""
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// EntityRef names a combatant by its entity identity
type EntityRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// RefOf captures the identity of an entity
func RefOf(e core.Entity) EntityRef {
	return EntityRef{ID: e.GetID(), Type: e.GetType()}
}

// Status of a tactical battle
type Status string

// Statuses
const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Turn is one resolved exchange. Damage fields are damage taken.
type Turn struct {
	Number          int    `json:"number"`
	PlayerAction    Action `json:"player_action"`
	OpponentAction  Action `json:"opponent_action"`
	Result          string `json:"result"`
	PlayerDamage    int    `json:"player_damage"`
	OpponentDamage  int    `json:"opponent_damage"`
	PlayerHealth    int    `json:"player_health"`
	OpponentHealth  int    `json:"opponent_health"`
	PlayerStunned   bool   `json:"player_stunned"`
	OpponentStunned bool   `json:"opponent_stunned"`

	// Acted holds the combatants that were not stunned this turn
	Acted []EntityRef `json:"acted"`
}

// Battle is the full state of a tactical fight. It is plain data so a
// session store can keep it between turns.
type Battle struct {
	ID              string             `json:"id"`
	PlayerID        string             `json:"player_id"`
	Player          *entities.Creature `json:"player"`
	Opponent        *entities.NPC      `json:"opponent"`
	PlayerHealth    int                `json:"player_health"`
	OpponentHealth  int                `json:"opponent_health"`
	PlayerStunned   bool               `json:"player_stunned"`
	OpponentStunned bool               `json:"opponent_stunned"`
	TurnNumber      int                `json:"turn_number"`
	Turns           []Turn             `json:"turns"`
	Status          Status             `json:"status"`
	Winner          Side               `json:"winner,omitempty"`
	StartedAt       time.Time          `json:"started_at"`
}

// Outcome is what a finished battle awards
type Outcome struct {
	Winner         Side
	WinnerRef      EntityRef
	TrophiesEarned int
	BadgeEarned    bool
}

// NewBattle starts a fight with both sides at full health
func NewBattle(id, playerID string, player *entities.Creature, opponent *entities.NPC, startedAt time.Time) (*Battle, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", id, vb)
	if player == nil {
		vb.RequiredField("player")
	}
	if opponent == nil || opponent.Creature == nil {
		vb.RequiredField("opponent")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Battle{
		ID:             id,
		PlayerID:       playerID,
		Player:         player.Clone(),
		Opponent:       opponent,
		PlayerHealth:   player.Stats.Health,
		OpponentHealth: opponent.Creature.Stats.Health,
		TurnNumber:     1,
		Turns:          []Turn{},
		Status:         StatusActive,
		StartedAt:      startedAt,
	}, nil
}

// Finished reports whether the battle has a winner
func (b *Battle) Finished() bool {
	return b.Status == StatusFinished
}

// Outcome returns the awards of a finished battle, nil while it is active.
func (b *Battle) Outcome() *Outcome {
	if !b.Finished() {
		return nil
	}
	out := &Outcome{Winner: b.Winner, WinnerRef: RefOf(b.Combatant(b.Winner))}
	if b.Winner == SidePlayer {
		out.TrophiesEarned = b.Opponent.Level
		out.BadgeEarned = b.Opponent.IsBoss
	}
	return out
}

// Combatant returns the entity fighting for side. The player's side is
// their creature, the opponent's side is the trainer.
func (b *Battle) Combatant(side Side) core.Entity {
	switch side {
	case SidePlayer:
		return b.Player
	case SideOpponent:
		return b.Opponent
	default:
		return nil
	}
}

// PlayerHit is the damage the player's creature deals to the opponent
func (b *Battle) PlayerHit() int {
	return int(math.Round(Power(b.Player.Stats.Strength, b.Opponent.Creature.Stats.Armor)))
}

// OpponentHit is the damage the opponent deals to the player. Boss hits are
// softened before rounding.
func (b *Battle) OpponentHit() int {
	raw := Power(b.Opponent.Creature.Stats.Strength, b.Player.Stats.Armor)
	if b.Opponent.IsBoss {
		raw *= bossDamageMultiplier
	}
	return int(math.Round(raw))
}

// OpponentPolicy picks the opponent's action for a turn
type OpponentPolicy interface {
	Choose(b *Battle) Action
}

// UniformPolicy picks uniformly among the three actions. Bosses use it too.
type UniformPolicy struct {
	Random random.Source
}

// Choose implements OpponentPolicy
func (p *UniformPolicy) Choose(_ *Battle) Action {
	return Actions[p.Random.Intn(len(Actions))]
}

// TakeTurn asks the policy for the opponent's action and resolves the turn.
func (b *Battle) TakeTurn(playerAction Action, policy OpponentPolicy) (*Turn, error) {
	if policy == nil {
		return nil, errors.InvalidArgument("opponent policy is required")
	}
	if b.Finished() {
		return nil, errors.FailedPrecondition("battle is already finished")
	}
	return b.Resolve(playerAction, policy.Choose(b))
}

// Resolve applies one simultaneous pair of actions. A stunned side loses its
// action for the turn and its stun clears; stuns last exactly one turn.
func (b *Battle) Resolve(playerAction, opponentAction Action) (*Turn, error) {
	if b.Finished() {
		return nil, errors.FailedPrecondition("battle is already finished")
	}
	if !playerAction.Valid() {
		return nil, errors.InvalidArgumentf("unknown player action %q", playerAction)
	}
	if !opponentAction.Valid() {
		return nil, errors.InvalidArgumentf("unknown opponent action %q", opponentAction)
	}

	playerName := b.Player.Name
	oppName := b.Opponent.Creature.Name

	turn := Turn{
		Number:         b.TurnNumber,
		PlayerAction:   playerAction,
		OpponentAction: opponentAction,
	}
	if !b.PlayerStunned {
		turn.Acted = append(turn.Acted, RefOf(b.Player))
	}
	if !b.OpponentStunned {
		turn.Acted = append(turn.Acted, RefOf(b.Opponent))
	}

	switch {
	case b.PlayerStunned:
		turn.Result = fmt.Sprintf("%s is stunned and cannot act! ", playerName)
		switch opponentAction {
		case ActionAttack:
			turn.PlayerDamage = b.OpponentHit()
			turn.Result += fmt.Sprintf("%s attacks for %d damage!", oppName, turn.PlayerDamage)
		case ActionDefend:
			turn.Result += fmt.Sprintf("%s strengthens its defense!", oppName)
		case ActionSpeed:
			turn.Result += fmt.Sprintf("%s increases its speed!", oppName)
		}

	case b.OpponentStunned:
		turn.Result = fmt.Sprintf("%s is stunned and cannot act! ", oppName)
		switch playerAction {
		case ActionAttack:
			turn.OpponentDamage = b.PlayerHit()
			turn.Result += fmt.Sprintf("%s attacks for %d damage!", playerName, turn.OpponentDamage)
		case ActionDefend:
			turn.Result += fmt.Sprintf("%s strengthens its defense!", playerName)
		case ActionSpeed:
			turn.Result += fmt.Sprintf("%s increases its speed!", playerName)
		}

	default:
		b.resolvePair(&turn, playerName, oppName)
	}

	b.PlayerHealth = max(0, b.PlayerHealth-turn.PlayerDamage)
	b.OpponentHealth = max(0, b.OpponentHealth-turn.OpponentDamage)
	b.PlayerStunned = turn.PlayerStunned
	b.OpponentStunned = turn.OpponentStunned

	turn.PlayerHealth = b.PlayerHealth
	turn.OpponentHealth = b.OpponentHealth

	b.Turns = append(b.Turns, turn)
	b.TurnNumber++

	if b.PlayerHealth <= 0 || b.OpponentHealth <= 0 {
		b.Status = StatusFinished
		// a double knockout goes to the opponent
		if b.PlayerHealth > 0 {
			b.Winner = SidePlayer
		} else {
			b.Winner = SideOpponent
		}
	}

	return &turn, nil
}

func (b *Battle) resolvePair(turn *Turn, playerName, oppName string) {
	p, o := turn.PlayerAction, turn.OpponentAction

	switch {
	case p == ActionAttack && o == ActionAttack:
		turn.PlayerDamage = b.OpponentHit()
		turn.OpponentDamage = b.PlayerHit()
		turn.Result = "Both bugs clash! Each takes damage!"

	case p == ActionDefend && o == ActionAttack:
		turn.OpponentStunned = true
		turn.OpponentDamage = b.PlayerHit()
		turn.Result = fmt.Sprintf("%s blocks the attack and counter-attacks for %d damage! %s is stunned!",
			playerName, turn.OpponentDamage, oppName)

	case p == ActionAttack && o == ActionDefend:
		if b.Opponent.Creature.Stats.Armor >= b.Player.Stats.Strength {
			turn.PlayerStunned = true
			turn.Result = fmt.Sprintf("%s's armor blocks the attack and stuns %s!", oppName, playerName)
		} else {
			turn.Result = fmt.Sprintf("%s blocks the attack!", oppName)
		}

	case p == ActionSpeed && o == ActionDefend:
		turn.OpponentStunned = true
		turn.Result = fmt.Sprintf("%s dodges and stuns %s!", playerName, oppName)

	case p == ActionDefend && o == ActionSpeed:
		turn.PlayerStunned = true
		turn.Result = fmt.Sprintf("%s dodges and stuns %s!", oppName, playerName)

	case p == ActionAttack && o == ActionSpeed:
		turn.OpponentDamage = b.PlayerHit()
		turn.Result = fmt.Sprintf("%s is too slow! Takes %d damage!", oppName, turn.OpponentDamage)

	case p == ActionSpeed && o == ActionAttack:
		turn.PlayerDamage = b.OpponentHit()
		turn.Result = fmt.Sprintf("%s is too slow! Takes %d damage!", playerName, turn.PlayerDamage)

	default:
		turn.Result = "Both bugs use the same strategy! Nothing happens!"
	}
}
