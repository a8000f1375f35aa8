package collection

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// InMemoryRepository keeps collections in process memory
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]*entities.Creature
}

// NewInMemory creates an empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{store: make(map[string][]*entities.Creature)}
}

var _ Repository = (*InMemoryRepository)(nil)

// List returns copies in capture order
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.store[input.PlayerID]
	out := make([]*entities.Creature, 0, len(stored))
	for _, c := range stored {
		out = append(out, c.Clone())
	}
	sortByCapture(out)

	return &ListOutput{Creatures: out}, nil
}

// Add stores a copy of the creature
func (r *InMemoryRepository) Add(_ context.Context, input AddInput) (*AddOutput, error) {
	if err := validateAdd(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.store[input.PlayerID] {
		if c.ID == input.Creature.ID {
			return nil, errors.AlreadyExistsf("creature %s already exists", c.ID)
		}
	}
	r.store[input.PlayerID] = append(r.store[input.PlayerID], input.Creature.Clone())

	return &AddOutput{Creature: input.Creature.Clone()}, nil
}

// Remove deletes one creature
func (r *InMemoryRepository) Remove(_ context.Context, input RemoveInput) (*RemoveOutput, error) {
	if err := validateRef(input.PlayerID, input.CreatureID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.store[input.PlayerID]
	for i, c := range stored {
		if c.ID == input.CreatureID {
			r.store[input.PlayerID] = append(stored[:i:i], stored[i+1:]...)
			return &RemoveOutput{}, nil
		}
	}
	return nil, notFound(input.PlayerID, input.CreatureID)
}

// Update replaces level and stats
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.store[input.PlayerID] {
		if c.ID == input.CreatureID {
			c.Level = input.Level
			c.Stats = input.Stats
			return &UpdateOutput{Creature: c.Clone()}, nil
		}
	}
	return nil, notFound(input.PlayerID, input.CreatureID)
}

// Clear drops the whole collection
func (r *InMemoryRepository) Clear(_ context.Context, input ClearInput) (*ClearOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.store[input.PlayerID])
	delete(r.store, input.PlayerID)

	return &ClearOutput{Removed: removed}, nil
}

func sortByCapture(creatures []*entities.Creature) {
	sort.SliceStable(creatures, func(i, j int) bool {
		a, b := creatures[i], creatures[j]
		if !a.CapturedAt.Equal(b.CapturedAt) {
			return a.CapturedAt.Before(b.CapturedAt)
		}
		return a.ID < b.ID
	})
}
