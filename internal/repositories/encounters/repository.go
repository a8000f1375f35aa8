// Package encounters stores the batch of creatures a player is currently
// choosing from
package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountersmock github.com/KirkDiggler/bug-arena/internal/repositories/encounters Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// Repository defines the storage interface for pending encounter batches
type Repository interface {
	// Save replaces the player's pending batch
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the pending batch
	// Returns errors.NotFound if there is none
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the pending batch. Deleting nothing is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// Slot is one candidate in a batch. Taken slots have been caught or fled.
type Slot struct {
	Template entities.Template `json:"template"`
	Taken    bool              `json:"taken"`
}

// Batch is the set of candidates from one search
type Batch struct {
	PlayerID  string    `json:"player_id"`
	Slots     []Slot    `json:"slots"`
	CreatedAt time.Time `json:"created_at"`
}

// Open reports whether any slot is still available
func (b *Batch) Open() bool {
	for _, s := range b.Slots {
		if !s.Taken {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (b *Batch) Clone() *Batch {
	cp := *b
	cp.Slots = make([]Slot, len(b.Slots))
	copy(cp.Slots, b.Slots)
	return &cp
}

// SaveInput defines the request for saving a batch
type SaveInput struct {
	Batch *Batch
}

// SaveOutput defines the response for saving a batch
type SaveOutput struct {
	Batch *Batch
}

// GetInput defines the request for retrieving a batch
type GetInput struct {
	PlayerID string
}

// GetOutput defines the response for retrieving a batch
type GetOutput struct {
	Batch *Batch
}

// DeleteInput defines the request for deleting a batch
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the response for deleting a batch
type DeleteOutput struct{}

const errPlayerIDEmpty = "player ID is required"

func validateSave(input SaveInput) error {
	if input.Batch == nil {
		return errors.InvalidArgument("batch is required")
	}
	if input.Batch.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}
