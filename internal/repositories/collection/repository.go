// Package collection provides the interface for storing a player's captured
// creatures
package collection

//go:generate mockgen -destination=mock/mock_repository.go -package=collectionmock github.com/KirkDiggler/bug-arena/internal/repositories/collection Repository

import (
	"context"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// Repository stores the creatures each player owns
type Repository interface {
	// List returns every creature of a player in capture order
	// Returns errors.DataLoss if a stored creature is malformed
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Add stores a newly captured creature
	// Returns errors.AlreadyExists if the id is taken
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Remove deletes one creature
	// Returns errors.NotFound if the creature is not in the collection
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)

	// Update replaces the level and stats of a creature
	// Returns errors.NotFound if the creature is not in the collection
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Clear removes the whole collection
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// ListInput defines the input for listing a collection
type ListInput struct {
	PlayerID string
}

// ListOutput defines the output for listing a collection
type ListOutput struct {
	Creatures []*entities.Creature
}

// AddInput defines the input for adding a creature
type AddInput struct {
	PlayerID string
	Creature *entities.Creature
}

// AddOutput defines the output for adding a creature
type AddOutput struct {
	Creature *entities.Creature
}

// RemoveInput defines the input for removing a creature
type RemoveInput struct {
	PlayerID   string
	CreatureID string
}

// RemoveOutput defines the output for removing a creature
type RemoveOutput struct{}

// UpdateInput carries the fields that leveling changes
type UpdateInput struct {
	PlayerID   string
	CreatureID string
	Level      int
	Stats      entities.Stats
}

// UpdateOutput defines the output for updating a creature
type UpdateOutput struct {
	Creature *entities.Creature
}

// ClearInput defines the input for clearing a collection
type ClearInput struct {
	PlayerID string
}

// ClearOutput reports how many creatures were removed
type ClearOutput struct {
	Removed int
}

const (
	errPlayerIDEmpty   = "player ID cannot be empty"
	errCreatureIDEmpty = "creature ID cannot be empty"
	errCreatureNil     = "creature cannot be nil"
)

func validateAdd(input AddInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Creature == nil {
		return errors.InvalidArgument(errCreatureNil)
	}
	return input.Creature.Validate()
}

func validateRef(playerID, creatureID string) error {
	if playerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if creatureID == "" {
		return errors.InvalidArgument(errCreatureIDEmpty)
	}
	return nil
}

func validateUpdate(input UpdateInput) error {
	if err := validateRef(input.PlayerID, input.CreatureID); err != nil {
		return err
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("level", input.Level, 1, vb)
	errors.ValidateMin("stats.armor", input.Stats.Armor, 0, vb)
	errors.ValidateMin("stats.strength", input.Stats.Strength, 0, vb)
	errors.ValidateMin("stats.health", input.Stats.Health, 0, vb)
	errors.ValidateMin("stats.speed", input.Stats.Speed, 0, vb)
	return vb.Build()
}

func notFound(playerID, creatureID string) error {
	return errors.NotFoundf("creature %s not found for player %s", creatureID, playerID)
}
