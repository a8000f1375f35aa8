package progression

import (
	"context"
	"sync"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
)

// InMemoryRepository keeps records in a map. Anonymous play uses it.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Progression
	clock clock.Clock
}

// NewInMemory creates an empty in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]*entities.Progression),
		clock: c,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get returns a copy of the stored record
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	prog, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("progression for player %s not found", input.PlayerID)
	}
	return &GetOutput{Progression: prog.Clone()}, nil
}

// Save merges the patch into the stored record
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prog, ok := r.store[input.PlayerID]
	if !ok {
		prog = entities.NewProgression(input.PlayerID)
	} else {
		prog = prog.Clone()
	}
	input.Patch.ApplyTo(prog)
	prog.UpdatedAt = r.clock.Now()

	if err := prog.Validate(); err != nil {
		return nil, errors.Wrap(err, "refusing to save invalid progression")
	}
	r.store[input.PlayerID] = prog

	return &SaveOutput{Progression: prog.Clone()}, nil
}

// Reset drops the record
func (r *InMemoryRepository) Reset(_ context.Context, input ResetInput) (*ResetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, input.PlayerID)

	return &ResetOutput{}, nil
}
