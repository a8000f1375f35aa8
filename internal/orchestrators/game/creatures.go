package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/bug-arena/internal/engine/encounter"
	"github.com/KirkDiggler/bug-arena/internal/engine/progression"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/repositories/encounters"
)

// Search draws a new batch, replacing any pending one
func (o *orchestrator) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
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

	templates := o.encounters.Generate(s.progression.Upgrades.RareLuck)
	if len(templates) == 0 {
		return nil, errors.FailedPrecondition("catalog has no creatures to encounter")
	}

	batch := &encounters.Batch{
		PlayerID:  input.PlayerID,
		Slots:     make([]encounters.Slot, len(templates)),
		CreatedAt: o.clock.Now(),
	}
	for i, t := range templates {
		batch.Slots[i] = encounters.Slot{Template: t}
	}
	s.batch = batch

	output := &SearchOutput{Candidates: o.candidates(s)}

	slog.DebugContext(ctx, "encounter batch drawn",
		"player_id", input.PlayerID,
		"batch_size", len(templates),
		"rare_luck", s.progression.Upgrades.RareLuck,
	)

	if _, err := o.encounterRepo.Save(ctx, encounters.SaveInput{Batch: batch.Clone()}); err != nil {
		slog.ErrorContext(ctx, "failed to save encounter batch", "player_id", input.PlayerID, "error", err)
		return output, persistenceError(err, "failed to save encounter batch")
	}
	return output, nil
}

// Catch rolls for one slot. The slot is consumed whether the creature is
// caught or flees; the rest of the batch stays available.
func (o *orchestrator) Catch(ctx context.Context, input *CatchInput) (*CatchOutput, error) {
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
	batch, err := o.pendingBatch(ctx, input.PlayerID, s)
	if err != nil {
		return nil, err
	}

	if input.Slot < 0 || input.Slot >= len(batch.Slots) {
		return nil, errors.InvalidArgumentf("slot must be between 0 and %d", len(batch.Slots)-1).
			WithMeta("slots", len(batch.Slots))
	}
	slot := &batch.Slots[input.Slot]
	if slot.Taken {
		return nil, errors.FailedPrecondition("that creature is already gone")
	}

	outcome := encounter.Catch(encounter.CatchInput{
		Template:              slot.Template,
		PlayerLevel:           s.progression.DifficultyLevel,
		CatchChanceLevel:      s.progression.Upgrades.CatchChance,
		CreatureStrengthLevel: s.progression.Upgrades.CreatureStrength,
		Now:                   o.clock.Now(),
	}, o.random)
	slot.Taken = true

	output := &CatchOutput{
		Success:   outcome.Success,
		Creature:  outcome.Creature,
		FledName:  outcome.FledName,
		CatchRate: outcome.Rate,
		Roll:      outcome.Roll,
	}
	for _, sl := range batch.Slots {
		if !sl.Taken {
			output.Remaining++
		}
	}

	slog.InfoContext(ctx, "catch attempt",
		"player_id", input.PlayerID,
		"template_id", slot.Template.ID,
		"rarity", slot.Template.Rarity,
		"catch_rate", outcome.Rate,
		"roll", outcome.Roll,
		"success", outcome.Success,
	)

	var persistErr error
	if outcome.Success {
		change, err := progression.OnCatchSuccess(outcome.Creature)
		if err != nil {
			return nil, err
		}
		output.Creature = change.Added.Clone()
		persistErr = o.apply(ctx, input.PlayerID, s, change)
	}

	if err := o.saveBatch(ctx, input.PlayerID, s); err != nil && persistErr == nil {
		persistErr = err
	}
	return output, persistErr
}

// Release trades a creature for points
func (o *orchestrator) Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayer(input.PlayerID); err != nil {
		return nil, err
	}
	if input.CreatureID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.loadSession(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	change, err := progression.OnRelease(s.progression, s.collection, input.CreatureID)
	if err != nil {
		return nil, err
	}
	persistErr := o.apply(ctx, input.PlayerID, s, change)

	slog.InfoContext(ctx, "creature released",
		"player_id", input.PlayerID,
		"creature_id", input.CreatureID,
		"points_earned", change.PointsEarned,
	)

	return &ReleaseOutput{
		Released:     change.Removed,
		PointsEarned: change.PointsEarned,
		Progression:  s.progression.Clone(),
	}, persistErr
}

// LevelUp spends points on a creature
func (o *orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayer(input.PlayerID); err != nil {
		return nil, err
	}
	if input.CreatureID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.loadSession(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	change, err := progression.OnLevelUp(s.progression, s.collection, input.CreatureID)
	if err != nil {
		return nil, err
	}
	persistErr := o.apply(ctx, input.PlayerID, s, change)

	slog.InfoContext(ctx, "creature leveled",
		"player_id", input.PlayerID,
		"creature_id", input.CreatureID,
		"level", change.Updated.Level,
		"cost", change.Cost,
	)

	return &LevelUpOutput{
		Creature:    change.Updated.Clone(),
		Cost:        change.Cost,
		Progression: s.progression.Clone(),
	}, persistErr
}

// PurchaseUpgrade spends trophies on an upgrade
func (o *orchestrator) PurchaseUpgrade(ctx context.Context, input *PurchaseUpgradeInput) (*PurchaseUpgradeOutput, error) {
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

	change, err := progression.OnUpgradePurchase(s.progression, input.Kind)
	if err != nil {
		return nil, err
	}
	persistErr := o.apply(ctx, input.PlayerID, s, change)

	level := s.progression.Upgrades.Level(input.Kind)
	slog.InfoContext(ctx, "upgrade purchased",
		"player_id", input.PlayerID,
		"upgrade", input.Kind,
		"level", level,
		"cost", change.Cost,
	)

	return &PurchaseUpgradeOutput{
		Kind:        input.Kind,
		Level:       level,
		Cost:        change.Cost,
		Progression: s.progression.Clone(),
	}, persistErr
}

// pendingBatch returns the session batch, falling back to storage so a batch
// drawn by an earlier process can still be caught from.
func (o *orchestrator) pendingBatch(ctx context.Context, playerID string, s *session) (*encounters.Batch, error) {
	if s.batch == nil {
		got, err := o.encounterRepo.Get(ctx, encounters.GetInput{PlayerID: playerID})
		switch {
		case errors.IsNotFound(err):
			return nil, errors.FailedPrecondition("no creatures nearby, search first")
		case err != nil:
			return nil, persistenceError(err, "failed to load encounter batch")
		}
		s.batch = got.Batch
	}
	if !s.batch.Open() {
		return nil, errors.FailedPrecondition("no creatures nearby, search first")
	}
	return s.batch, nil
}

// saveBatch stores the batch while it has open slots and drops it after.
func (o *orchestrator) saveBatch(ctx context.Context, playerID string, s *session) error {
	var err error
	if s.batch.Open() {
		_, err = o.encounterRepo.Save(ctx, encounters.SaveInput{Batch: s.batch.Clone()})
	} else {
		_, err = o.encounterRepo.Delete(ctx, encounters.DeleteInput{PlayerID: playerID})
		s.batch = nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to store encounter batch", "player_id", playerID, "error", err)
		return persistenceError(err, "failed to store encounter batch")
	}
	return nil
}

func (o *orchestrator) candidates(s *session) []Candidate {
	out := make([]Candidate, len(s.batch.Slots))
	for i, slot := range s.batch.Slots {
		rate := encounter.CatchRate(slot.Template.Rarity, s.progression.DifficultyLevel, s.progression.Upgrades.CatchChance)
		out[i] = Candidate{
			Slot:      i,
			Template:  slot.Template,
			CatchRate: rate,
			Taken:     slot.Taken,
		}
	}
	return out
}
