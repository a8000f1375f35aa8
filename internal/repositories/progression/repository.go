// Package progression provides the interface for player progression storage
package progression

//go:generate mockgen -destination=mock/mock_repository.go -package=progressionmock github.com/KirkDiggler/bug-arena/internal/repositories/progression Repository

import (
	"context"

	"github.com/KirkDiggler/bug-arena/internal/entities"
)

// Repository stores one progression record per player
type Repository interface {
	// Get returns the stored record
	// Returns errors.NotFound if the player has no record
	// Returns errors.DataLoss if the stored record is malformed
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the set fields of the patch, creating the record with
	// starting values when it does not exist, and returns the merged record
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Reset removes the record. Resetting a missing record is not an error.
	Reset(ctx context.Context, input ResetInput) (*ResetOutput, error)
}

// GetInput defines the input for getting a record
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Progression *entities.Progression
}

// SaveInput defines the input for a partial save
type SaveInput struct {
	PlayerID string
	Patch    entities.ProgressionPatch
}

// SaveOutput defines the output for a partial save
type SaveOutput struct {
	Progression *entities.Progression
}

// ResetInput defines the input for removing a record
type ResetInput struct {
	PlayerID string
}

// ResetOutput defines the output for removing a record
type ResetOutput struct{}

const errPlayerIDEmpty = "player ID cannot be empty"
