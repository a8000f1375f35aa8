// Package game implements the game orchestrator. It owns a per-player
// session, runs the pure engine packages against it and writes every change
// through to the repositories.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/bug-arena/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/bug-arena/internal/catalog"
	"github.com/KirkDiggler/bug-arena/internal/engine/battle"
	"github.com/KirkDiggler/bug-arena/internal/engine/encounter"
	"github.com/KirkDiggler/bug-arena/internal/engine/npc"
	"github.com/KirkDiggler/bug-arena/internal/engine/progression"
	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
	"github.com/KirkDiggler/bug-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
	"github.com/KirkDiggler/bug-arena/internal/repositories/battlesession"
	"github.com/KirkDiggler/bug-arena/internal/repositories/collection"
	"github.com/KirkDiggler/bug-arena/internal/repositories/encounters"
	progressionrepo "github.com/KirkDiggler/bug-arena/internal/repositories/progression"
)

// Service defines the game operations available to a presentation layer
type Service interface {
	// GetProgress loads the player's game, creating a fresh record on first use
	GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error)

	// Search replaces the pending encounter batch
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// Catch rolls against one slot of the pending batch
	Catch(ctx context.Context, input *CatchInput) (*CatchOutput, error)

	// Release trades a creature for points
	Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error)

	// LevelUp spends points to raise a creature one level
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)

	// PurchaseUpgrade spends trophies on one upgrade level
	PurchaseUpgrade(ctx context.Context, input *PurchaseUpgradeInput) (*PurchaseUpgradeOutput, error)

	// GetOpponent returns the opponent for the current difficulty
	GetOpponent(ctx context.Context, input *GetOpponentInput) (*GetOpponentOutput, error)

	// QuickBattle fights the current opponent with a single comparison
	QuickBattle(ctx context.Context, input *QuickBattleInput) (*QuickBattleOutput, error)

	// StartBattle opens a turn based battle against the current opponent
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// TakeTurn plays one action in the active battle
	TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error)

	// GetBattle returns the active battle
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	// AbandonBattle drops the active battle without rewards
	AbandonBattle(ctx context.Context, input *AbandonBattleInput) (*AbandonBattleOutput, error)

	// Reset wipes the player's collection and progression
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	ProgressionRepo progressionrepo.Repository
	CollectionRepo  collection.Repository
	EncounterRepo   encounters.Repository
	BattleRepo      battlesession.Repository
	Catalog         *catalog.Catalog
	Random          random.Source
	Clock           clock.Clock
	IDGenerator     idgen.Generator
	// BattleTTL bounds an idle tactical battle. Zero uses the repository default.
	BattleTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProgressionRepo == nil {
		vb.RequiredField("ProgressionRepo")
	}
	if c.CollectionRepo == nil {
		vb.RequiredField("CollectionRepo")
	}
	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.BattleTTL < 0 {
		vb.Field("BattleTTL", "cannot be negative")
	}

	return vb.Build()
}

// session is the in-memory copy of one player's game. It is the source of
// truth while the process runs; repositories are written through.
type session struct {
	progression *entities.Progression
	collection  []*entities.Creature
	batch       *encounters.Batch

	opponent         *entities.NPC
	opponentBossWins int
}

type orchestrator struct {
	progressionRepo progressionrepo.Repository
	collectionRepo  collection.Repository
	encounterRepo   encounters.Repository
	battleRepo      battlesession.Repository
	random          random.Source
	clock           clock.Clock
	idGen           idgen.Generator
	battleTTL       time.Duration

	encounters *encounter.Generator
	opponents  *npc.Generator
	policy     battle.OpponentPolicy

	// mu serializes every operation; sessions are not safe to share
	mu       sync.Mutex
	sessions map[string]*session
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	encounterGen, err := encounter.NewGenerator(&encounter.GeneratorConfig{
		Templates: cfg.Catalog,
		Random:    cfg.Random,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create encounter generator")
	}

	opponentGen, err := npc.NewGenerator(&npc.Config{
		Templates: cfg.Catalog,
		Random:    cfg.Random,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create opponent generator")
	}

	return &orchestrator{
		progressionRepo: cfg.ProgressionRepo,
		collectionRepo:  cfg.CollectionRepo,
		encounterRepo:   cfg.EncounterRepo,
		battleRepo:      cfg.BattleRepo,
		random:          cfg.Random,
		clock:           cfg.Clock,
		idGen:           cfg.IDGenerator,
		battleTTL:       cfg.BattleTTL,
		encounters:      encounterGen,
		opponents:       opponentGen,
		policy:          &battle.UniformPolicy{Random: cfg.Random},
		sessions:        make(map[string]*session),
	}, nil
}

// GetProgress loads the player's game
func (o *orchestrator) GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayer(input.PlayerID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.loadSession(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return progressOutput(s), nil
}

// Reset wipes everything stored for the player
func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayer(input.PlayerID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// The cached session goes first so a partial failure reloads from storage
	delete(o.sessions, input.PlayerID)

	cleared, err := o.collectionRepo.Clear(ctx, collection.ClearInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, persistenceError(err, "failed to clear collection")
	}
	if _, err := o.progressionRepo.Reset(ctx, progressionrepo.ResetInput{PlayerID: input.PlayerID}); err != nil {
		return nil, persistenceError(err, "failed to reset progression")
	}
	if _, err := o.encounterRepo.Delete(ctx, encounters.DeleteInput{PlayerID: input.PlayerID}); err != nil {
		return nil, persistenceError(err, "failed to delete encounter batch")
	}
	if _, err := o.battleRepo.Delete(ctx, battlesession.DeleteInput{PlayerID: input.PlayerID}); err != nil {
		return nil, persistenceError(err, "failed to delete battle")
	}

	slog.InfoContext(ctx, "game reset",
		"player_id", input.PlayerID,
		"creatures_removed", cleared.Removed,
	)

	return &ResetOutput{CreaturesRemoved: cleared.Removed}, nil
}

// loadSession returns the cached session or builds one from storage. A
// player with no stored progression gets a fresh record.
func (o *orchestrator) loadSession(ctx context.Context, playerID string) (*session, error) {
	if s, ok := o.sessions[playerID]; ok {
		return s, nil
	}

	prog, err := o.loadProgression(ctx, playerID)
	if err != nil {
		return nil, err
	}

	listed, err := o.collectionRepo.List(ctx, collection.ListInput{PlayerID: playerID})
	if err != nil {
		return nil, persistenceError(err, "failed to load collection")
	}

	s := &session{
		progression: prog,
		collection:  listed.Creatures,
	}
	o.sessions[playerID] = s

	slog.DebugContext(ctx, "session loaded",
		"player_id", playerID,
		"difficulty_level", prog.DifficultyLevel,
		"collection_size", len(s.collection),
	)
	return s, nil
}

func (o *orchestrator) loadProgression(ctx context.Context, playerID string) (*entities.Progression, error) {
	got, err := o.progressionRepo.Get(ctx, progressionrepo.GetInput{PlayerID: playerID})
	if err == nil {
		return got.Progression, nil
	}
	if !errors.IsNotFound(err) {
		return nil, persistenceError(err, "failed to load progression")
	}

	saved, err := o.progressionRepo.Save(ctx, progressionrepo.SaveInput{PlayerID: playerID})
	if err != nil {
		return nil, persistenceError(err, "failed to create progression")
	}
	slog.InfoContext(ctx, "new player", "player_id", playerID)
	return saved.Progression, nil
}

// apply merges a change into the session and writes it through. The session
// keeps the change even when a write fails.
func (o *orchestrator) apply(ctx context.Context, playerID string, s *session, change *progression.Change) error {
	s.collection = progression.Apply(s.progression, s.collection, change)

	var firstErr error
	record := func(err error, msg string) {
		if err == nil {
			return
		}
		slog.ErrorContext(ctx, msg, "player_id", playerID, "error", err)
		if firstErr == nil {
			firstErr = persistenceError(err, msg)
		}
	}

	if change.Added != nil {
		_, err := o.collectionRepo.Add(ctx, collection.AddInput{PlayerID: playerID, Creature: change.Added})
		record(err, "failed to save creature")
	}
	if change.Removed != nil {
		_, err := o.collectionRepo.Remove(ctx, collection.RemoveInput{PlayerID: playerID, CreatureID: change.Removed.ID})
		record(err, "failed to remove creature")
	}
	if change.Updated != nil {
		_, err := o.collectionRepo.Update(ctx, collection.UpdateInput{
			PlayerID:   playerID,
			CreatureID: change.Updated.ID,
			Level:      change.Updated.Level,
			Stats:      change.Updated.Stats,
		})
		record(err, "failed to update creature")
	}
	if !change.Patch.IsEmpty() {
		_, err := o.progressionRepo.Save(ctx, progressionrepo.SaveInput{PlayerID: playerID, Patch: change.Patch})
		record(err, "failed to save progression")
	}

	return firstErr
}

func progressOutput(s *session) *GetProgressOutput {
	sorted := make([]*entities.Creature, len(s.collection))
	for i, c := range s.collection {
		sorted[i] = c.Clone()
	}
	progression.Sort(sorted)

	return &GetProgressOutput{
		Progression: s.progression.Clone(),
		Collection:  sorted,
		Badges:      catalog.EarnedBadges(s.progression.Badges),
		PlayerLevel: s.progression.PlayerLevel(),
		Complete:    s.progression.Complete(),
	}
}

func requirePlayer(playerID string) error {
	if playerID == "" {
		return errors.InvalidArgument("player ID is required")
	}
	return nil
}

// persistenceError marks a repository failure as unavailable storage.
// Malformed records keep their data loss code.
func persistenceError(err error, msg string) error {
	if errors.IsDataLoss(err) {
		return errors.Wrap(err, msg)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, msg)
}
