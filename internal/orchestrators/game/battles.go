package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/bug-arena/internal/engine/battle"
	"github.com/KirkDiggler/bug-arena/internal/engine/progression"
	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/repositories/battlesession"
)

// GetOpponent returns the opponent for the player's current difficulty
func (o *orchestrator) GetOpponent(ctx context.Context, input *GetOpponentInput) (*GetOpponentOutput, error) {
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
	opp, err := o.currentOpponent(ctx, s)
	if err != nil {
		return nil, err
	}
	return &GetOpponentOutput{Opponent: opp}, nil
}

// QuickBattle resolves a whole fight with one power comparison
func (o *orchestrator) QuickBattle(ctx context.Context, input *QuickBattleInput) (*QuickBattleOutput, error) {
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
	fighter := progression.Find(s.collection, input.CreatureID)
	if fighter == nil {
		return nil, errors.NotFoundf("creature %s not found", input.CreatureID)
	}
	opp, err := o.currentOpponent(ctx, s)
	if err != nil {
		return nil, err
	}

	result := battle.ResolveQuick(fighter, opp)
	output := &QuickBattleOutput{
		Result:   result,
		Opponent: opp,
	}

	slog.InfoContext(ctx, "quick battle",
		"player_id", input.PlayerID,
		"creature_id", input.CreatureID,
		"opponent_level", opp.Level,
		"player_power", result.PlayerPower,
		"npc_power", result.NPCPower,
		"player_won", result.PlayerWon,
		"winner_id", result.Winner.ID,
		"winner_type", result.Winner.Type,
	)

	var persistErr error
	if result.PlayerWon {
		output.Rewards, persistErr = o.award(ctx, input.PlayerID, s, opp)
	}
	output.Progression = s.progression.Clone()
	return output, persistErr
}

// StartBattle opens a tactical battle. Only one battle per player may be
// active.
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
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

	_, err = o.battleRepo.Get(ctx, battlesession.GetInput{PlayerID: input.PlayerID})
	switch {
	case err == nil:
		return nil, errors.FailedPrecondition("a battle is already in progress")
	case !errors.IsNotFound(err):
		return nil, persistenceError(err, "failed to check active battle")
	}

	fighter := progression.Find(s.collection, input.CreatureID)
	if fighter == nil {
		return nil, errors.NotFoundf("creature %s not found", input.CreatureID)
	}
	opp, err := o.currentOpponent(ctx, s)
	if err != nil {
		return nil, err
	}

	b, err := battle.NewBattle(o.idGen.Generate(), input.PlayerID, fighter, opp, o.clock.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to start battle")
	}

	slog.InfoContext(ctx, "battle started",
		"player_id", input.PlayerID,
		"battle_id", b.ID,
		"creature_id", fighter.ID,
		"opponent_level", opp.Level,
		"is_boss", opp.IsBoss,
	)

	if _, err := o.battleRepo.Save(ctx, battlesession.SaveInput{Battle: b, TTL: o.battleTTL}); err != nil {
		slog.ErrorContext(ctx, "failed to save battle", "player_id", input.PlayerID, "error", err)
		return nil, persistenceError(err, "failed to save battle")
	}
	return &StartBattleOutput{Battle: b}, nil
}

// TakeTurn plays one action. A finished battle is removed from storage and
// a win is applied to progression.
func (o *orchestrator) TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayer(input.PlayerID); err != nil {
		return nil, err
	}
	if !input.Action.Valid() {
		return nil, errors.InvalidArgumentf("unknown action %q", input.Action)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.loadSession(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	b, err := o.activeBattle(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	turn, err := b.TakeTurn(input.Action, o.policy)
	if err != nil {
		return nil, err
	}

	output := &TakeTurnOutput{Turn: turn, Battle: b}

	if !b.Finished() {
		if _, err := o.battleRepo.Save(ctx, battlesession.SaveInput{Battle: b, TTL: o.battleTTL}); err != nil {
			slog.ErrorContext(ctx, "failed to save battle", "player_id", input.PlayerID, "error", err)
			return output, persistenceError(err, "failed to save battle")
		}
		return output, nil
	}

	output.Outcome = b.Outcome()
	slog.InfoContext(ctx, "battle finished",
		"player_id", input.PlayerID,
		"battle_id", b.ID,
		"winner", b.Winner,
		"winner_id", output.Outcome.WinnerRef.ID,
		"winner_type", output.Outcome.WinnerRef.Type,
		"turns", len(b.Turns),
	)

	var persistErr error
	if output.Outcome.Winner == battle.SidePlayer {
		output.Rewards, persistErr = o.award(ctx, input.PlayerID, s, b.Opponent)
	}
	output.Progression = s.progression.Clone()

	if _, err := o.battleRepo.Delete(ctx, battlesession.DeleteInput{PlayerID: input.PlayerID}); err != nil {
		slog.ErrorContext(ctx, "failed to delete finished battle", "player_id", input.PlayerID, "error", err)
		if persistErr == nil {
			persistErr = persistenceError(err, "failed to delete finished battle")
		}
	}
	return output, persistErr
}

// GetBattle returns the active battle
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayer(input.PlayerID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	got, err := o.battleRepo.Get(ctx, battlesession.GetInput{PlayerID: input.PlayerID})
	switch {
	case errors.IsNotFound(err):
		return nil, err
	case err != nil:
		return nil, persistenceError(err, "failed to load battle")
	}
	return &GetBattleOutput{Battle: got.Session.Battle}, nil
}

// AbandonBattle drops the active battle. Abandoning pays nothing.
func (o *orchestrator) AbandonBattle(ctx context.Context, input *AbandonBattleInput) (*AbandonBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayer(input.PlayerID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	deleted, err := o.battleRepo.Delete(ctx, battlesession.DeleteInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, persistenceError(err, "failed to delete battle")
	}

	if deleted.Deleted {
		slog.InfoContext(ctx, "battle abandoned", "player_id", input.PlayerID)
	}
	return &AbandonBattleOutput{Abandoned: deleted.Deleted}, nil
}

func (o *orchestrator) activeBattle(ctx context.Context, playerID string) (*battle.Battle, error) {
	got, err := o.battleRepo.Get(ctx, battlesession.GetInput{PlayerID: playerID})
	switch {
	case errors.IsNotFound(err):
		return nil, errors.FailedPrecondition("no battle in progress")
	case err != nil:
		return nil, persistenceError(err, "failed to load battle")
	}
	return got.Session.Battle, nil
}

// currentOpponent regenerates the opponent only when the difficulty level
// or boss wins moved since it was drawn.
func (o *orchestrator) currentOpponent(ctx context.Context, s *session) (*entities.NPC, error) {
	level, bossWins := s.progression.DifficultyLevel, s.progression.BossWins
	if s.opponent != nil && s.opponent.Level == level && s.opponentBossWins == bossWins {
		return s.opponent, nil
	}

	opp, err := o.opponents.Generate(level, bossWins)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate opponent")
	}
	s.opponent = opp
	s.opponentBossWins = bossWins

	slog.DebugContext(ctx, "opponent generated",
		"player_id", s.progression.PlayerID,
		"opponent_id", opp.ID,
		"opponent_level", opp.Level,
		"template_id", opp.Creature.TemplateID,
		"is_boss", opp.IsBoss,
	)
	return opp, nil
}

func (o *orchestrator) award(ctx context.Context, playerID string, s *session, opp *entities.NPC) (*Rewards, error) {
	change := progression.OnBattleVictory(s.progression, opp.Level, opp.IsBoss)
	persistErr := o.apply(ctx, playerID, s, change)

	rewards := &Rewards{
		PointsEarned:   change.PointsEarned,
		TrophiesEarned: change.TrophiesEarned,
		BadgeEarned:    change.BadgeEarned,
	}
	slog.InfoContext(ctx, "victory",
		"player_id", playerID,
		"opponent_level", opp.Level,
		"points_earned", rewards.PointsEarned,
		"trophies_earned", rewards.TrophiesEarned,
		"badge_earned", rewards.BadgeEarned,
	)
	return rewards, persistErr
}
