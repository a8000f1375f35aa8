package encounters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Batch
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*Batch),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the batch
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Batch.PlayerID] = input.Batch.Clone()

	return &SaveOutput{Batch: input.Batch.Clone()}, nil
}

// Get retrieves the batch for a player
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	batch, exists := r.store[input.PlayerID]
	if !exists {
		return nil, errors.NotFound("no pending encounter")
	}

	// Return a copy to prevent external modification
	return &GetOutput{Batch: batch.Clone()}, nil
}

// Delete removes the batch
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, input.PlayerID)

	return &DeleteOutput{}, nil
}
