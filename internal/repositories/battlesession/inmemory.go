package battlesession

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/bug-arena/internal/engine/battle"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
)

// InMemoryRepository keeps sessions in memory and expires them on read
type InMemoryRepository struct {
	mu    sync.Mutex
	store map[string]*Session
	clock clock.Clock
}

// NewInMemory creates an empty in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{store: make(map[string]*Session), clock: c}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the battle
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	cp, err := copyBattle(input.Battle)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	session := &Session{
		Battle:    cp,
		CreatedAt: input.Battle.StartedAt,
		ExpiresAt: now.Add(ttlOrDefault(input.TTL)),
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}

	r.mu.Lock()
	r.store[input.Battle.PlayerID] = session
	r.mu.Unlock()

	return &SaveOutput{Session: session}, nil
}

// Get returns a copy of the stored battle
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFound("no active battle")
	}
	if r.clock.Now().After(session.ExpiresAt) {
		delete(r.store, input.PlayerID)
		return nil, errors.NotFound("battle session has expired")
	}

	cp, err := copyBattle(session.Battle)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: &Session{
		Battle:    cp,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}}, nil
}

// Delete removes the session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.store[input.PlayerID]
	delete(r.store, input.PlayerID)
	return &DeleteOutput{Deleted: ok}, nil
}

// copyBattle deep copies through json so the caller cannot mutate stored state
func copyBattle(b *battle.Battle) (*battle.Battle, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to copy battle")
	}
	var cp battle.Battle
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, errors.Wrapf(err, "failed to copy battle")
	}
	return &cp, nil
}
