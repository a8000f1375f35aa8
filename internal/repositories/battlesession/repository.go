// Package battlesession stores the tactical battle a player is in the middle
// of. Sessions expire so an abandoned fight does not linger.
package battlesession

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesessionmock github.com/KirkDiggler/bug-arena/internal/repositories/battlesession Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/engine/battle"
	"github.com/KirkDiggler/bug-arena/internal/errors"
)

// DefaultTTL is how long an idle battle is kept
const DefaultTTL = 15 * time.Minute

// Session wraps a battle with its lifetime
type Session struct {
	Battle    *battle.Battle `json:"battle"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// SaveInput stores the battle. Every save restarts the TTL.
type SaveInput struct {
	Battle *battle.Battle
	TTL    time.Duration
}

// SaveOutput contains the stored session
type SaveOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	PlayerID string
}

// GetOutput contains the stored session
type GetOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for battle session storage
type Repository interface {
	// Save stores the player's active battle with the specified TTL
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the active battle
	// Returns errors.NotFound if there is none or it expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the active battle
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errBattleNil     = "battle cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

func validateSave(input SaveInput) error {
	if input.Battle == nil {
		return errors.InvalidArgument(errBattleNil)
	}
	if input.Battle.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl == 0 {
		return DefaultTTL
	}
	return ttl
}
