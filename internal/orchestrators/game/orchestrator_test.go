package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bug-arena/internal/catalog"
	"github.com/KirkDiggler/bug-arena/internal/engine/battle"
	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/orchestrators/game"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
	"github.com/KirkDiggler/bug-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
	"github.com/KirkDiggler/bug-arena/internal/repositories/battlesession"
	"github.com/KirkDiggler/bug-arena/internal/repositories/collection"
	"github.com/KirkDiggler/bug-arena/internal/repositories/encounters"
	progressionrepo "github.com/KirkDiggler/bug-arena/internal/repositories/progression"
	"github.com/KirkDiggler/bug-arena/internal/testutils"
)

// The suite runs against in-memory repositories and a one-template catalog
// so every random draw is known: template picks always draw Intn(1).
type OrchestratorTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.Fixed
	progRepo *progressionrepo.InMemoryRepository
	collRepo *collection.InMemoryRepository
	encRepo  *encounters.InMemoryRepository
	batRepo  *battlesession.InMemoryRepository
	catalog  *catalog.Catalog
	playerID string
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{T: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	s.progRepo = progressionrepo.NewInMemory(s.clock)
	s.collRepo = collection.NewInMemory()
	s.encRepo = encounters.NewInMemory()
	s.batRepo = battlesession.NewInMemory(s.clock)
	s.catalog = catalog.New([]entities.Template{testutils.CreateTestTemplate("ladybug")})
	s.playerID = testutils.TestPlayerID
}

func (s *OrchestratorTestSuite) newOrchestrator(ints ...int) (game.Service, *random.Scripted) {
	src := random.NewScripted(ints, nil)
	svc, err := game.NewOrchestrator(&game.Config{
		ProgressionRepo: s.progRepo,
		CollectionRepo:  s.collRepo,
		EncounterRepo:   s.encRepo,
		BattleRepo:      s.batRepo,
		Catalog:         s.catalog,
		Random:          src,
		Clock:           s.clock,
		IDGenerator:     idgen.NewSequential("battle"),
	})
	s.Require().NoError(err)
	return svc, src
}

func (s *OrchestratorTestSuite) seedProgression(patch entities.ProgressionPatch) {
	_, err := s.progRepo.Save(s.ctx, progressionrepo.SaveInput{PlayerID: s.playerID, Patch: patch})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) seedCreature(c *entities.Creature) {
	_, err := s.collRepo.Add(s.ctx, collection.AddInput{PlayerID: s.playerID, Creature: c})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := game.NewOrchestrator(&game.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "ProgressionRepo")

	_, err = game.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetProgress_NewPlayer() {
	svc, _ := s.newOrchestrator()

	output, err := svc.GetProgress(s.ctx, &game.GetProgressInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	s.Equal(1, output.Progression.DifficultyLevel)
	s.Equal(1, output.PlayerLevel)
	s.Empty(output.Collection)
	s.Empty(output.Badges)
	s.False(output.Complete)

	// the fresh record is persisted
	stored, err := s.progRepo.Get(s.ctx, progressionrepo.GetInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(1, stored.Progression.DifficultyLevel)
}

func (s *OrchestratorTestSuite) TestGetProgress_CompleteAndSorted() {
	s.seedProgression(entities.ProgressionPatch{
		Badges:    entities.Int(entities.MaxBadges),
		Victories: entities.Int(7),
	})
	s.seedCreature(testutils.CreateTestCreatureWithRarity("low", entities.RarityCommon, 1))
	s.seedCreature(testutils.CreateTestCreatureWithRarity("high", entities.RarityRare, 4))
	svc, _ := s.newOrchestrator()

	output, err := svc.GetProgress(s.ctx, &game.GetProgressInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	s.True(output.Complete)
	s.Len(output.Badges, entities.MaxBadges)
	s.Equal(4, output.PlayerLevel)
	s.Require().Len(output.Collection, 2)
	s.Equal("high", output.Collection[0].ID)
	s.Equal("low", output.Collection[1].ID)
}

func (s *OrchestratorTestSuite) TestGetProgress_EmptyPlayer() {
	svc, _ := s.newOrchestrator()

	output, err := svc.GetProgress(s.ctx, &game.GetProgressInput{})
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSearchAndCatch_Success() {
	// three template picks then a catch roll of 10 against 85%
	svc, src := s.newOrchestrator(0, 0, 0, 10)

	searched, err := svc.Search(s.ctx, &game.SearchInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Require().Len(searched.Candidates, 3)
	for i, c := range searched.Candidates {
		s.Equal(i, c.Slot)
		s.Equal("ladybug", c.Template.ID)
		s.Equal(85, c.CatchRate)
		s.False(c.Taken)
	}

	caught, err := svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: 1})
	s.Require().NoError(err)
	s.True(caught.Success)
	s.Equal(85, caught.CatchRate)
	s.Equal(10, caught.Roll)
	s.Equal(2, caught.Remaining)
	s.Require().NotNil(caught.Creature)
	s.Equal(1, caught.Creature.Level)
	s.Equal("ladybug", caught.Creature.TemplateID)

	listed, err := s.collRepo.List(s.ctx, collection.ListInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Require().Len(listed.Creatures, 1)
	s.Equal(caught.Creature.ID, listed.Creatures[0].ID)

	stored, err := s.encRepo.Get(s.ctx, encounters.GetInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.True(stored.Batch.Slots[1].Taken)
	s.False(stored.Batch.Slots[0].Taken)

	ints, _ := src.Remaining()
	s.Equal(0, ints)
}

func (s *OrchestratorTestSuite) TestCatch_FleeConsumesSlot() {
	svc, _ := s.newOrchestrator(0, 0, 0, 90)

	_, err := svc.Search(s.ctx, &game.SearchInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	fled, err := svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: 0})
	s.Require().NoError(err)
	s.False(fled.Success)
	s.Nil(fled.Creature)
	s.Equal("Ladybug", fled.FledName)

	_, err = svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: 0})
	s.True(errors.IsFailedPrecondition(err))

	progress, err := svc.GetProgress(s.ctx, &game.GetProgressInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Empty(progress.Collection)
}

func (s *OrchestratorTestSuite) TestCatch_LastSlotClearsBatch() {
	svc, _ := s.newOrchestrator(0, 0, 0, 90, 90, 90)

	_, err := svc.Search(s.ctx, &game.SearchInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	for slot := 0; slot < 3; slot++ {
		_, err := svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: slot})
		s.Require().NoError(err)
	}

	_, err = s.encRepo.Get(s.ctx, encounters.GetInput{PlayerID: s.playerID})
	s.True(errors.IsNotFound(err))

	_, err = svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: 0})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestCatch_WithoutSearch() {
	svc, _ := s.newOrchestrator()

	_, err := svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: 0})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestCatch_SlotOutOfRange() {
	svc, _ := s.newOrchestrator(0, 0, 0)

	_, err := svc.Search(s.ctx, &game.SearchInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	_, err = svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: 3})
	s.True(errors.IsInvalidArgument(err))
	s.Equal("slot must be between 0 and 2", errors.GetMessage(err))
	s.Equal(3, errors.GetMeta(err)["slots"])
	_, err = svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCatch_BatchFromEarlierProcess() {
	first, _ := s.newOrchestrator(0, 0, 0)
	_, err := first.Search(s.ctx, &game.SearchInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	second, _ := s.newOrchestrator(5)
	caught, err := second.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: 2})
	s.Require().NoError(err)
	s.True(caught.Success)
	s.Equal(2, caught.Remaining)
}

func (s *OrchestratorTestSuite) TestSearch_PreviewIncludesUpgrade() {
	s.seedProgression(entities.ProgressionPatch{
		Upgrades: &entities.Upgrades{CatchChance: 2},
	})
	svc, _ := s.newOrchestrator(0, 0, 0)

	searched, err := svc.Search(s.ctx, &game.SearchInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(95, searched.Candidates[0].CatchRate)
}

func (s *OrchestratorTestSuite) TestRelease() {
	s.seedProgression(entities.ProgressionPatch{DifficultyLevel: entities.Int(5)})
	s.seedCreature(testutils.CreateTestCreatureWithRarity("bug-legend", entities.RarityLegendary, 3))
	svc, _ := s.newOrchestrator()

	output, err := svc.Release(s.ctx, &game.ReleaseInput{PlayerID: s.playerID, CreatureID: "bug-legend"})
	s.Require().NoError(err)
	s.Equal(375, output.PointsEarned)
	s.Equal(375, output.Progression.Points)
	s.Equal("bug-legend", output.Released.ID)

	stored, err := s.progRepo.Get(s.ctx, progressionrepo.GetInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(375, stored.Progression.Points)

	listed, err := s.collRepo.List(s.ctx, collection.ListInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Empty(listed.Creatures)

	_, err = svc.Release(s.ctx, &game.ReleaseInput{PlayerID: s.playerID, CreatureID: "bug-legend"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestLevelUp() {
	s.seedCreature(testutils.CreateTestCreature("bug-1", s.clock.Now()))
	svc, _ := s.newOrchestrator()

	_, err := svc.LevelUp(s.ctx, &game.LevelUpInput{PlayerID: s.playerID, CreatureID: "bug-1"})
	s.Require().Error(err)
	s.True(errors.IsInsufficientFunds(err))

	s.seedProgression(entities.ProgressionPatch{Points: entities.Int(20)})
	svc, _ = s.newOrchestrator()

	output, err := svc.LevelUp(s.ctx, &game.LevelUpInput{PlayerID: s.playerID, CreatureID: "bug-1"})
	s.Require().NoError(err)
	s.Equal(20, output.Cost)
	s.Equal(0, output.Progression.Points)
	s.Equal(2, output.Creature.Level)
	s.Equal(entities.Stats{Armor: 13, Strength: 11, Health: 49, Speed: 9}, output.Creature.Stats)

	listed, err := s.collRepo.List(s.ctx, collection.ListInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(2, listed.Creatures[0].Level)
	s.Equal(49, listed.Creatures[0].Stats.Health)
}

func (s *OrchestratorTestSuite) TestPurchaseUpgrade() {
	s.seedProgression(entities.ProgressionPatch{Trophies: entities.Int(4)})
	svc, _ := s.newOrchestrator()

	output, err := svc.PurchaseUpgrade(s.ctx, &game.PurchaseUpgradeInput{
		PlayerID: s.playerID,
		Kind:     entities.UpgradeCatchChance,
	})
	s.Require().NoError(err)
	s.Equal(1, output.Level)
	s.Equal(3, output.Cost)
	s.Equal(1, output.Progression.Trophies)

	_, err = svc.PurchaseUpgrade(s.ctx, &game.PurchaseUpgradeInput{
		PlayerID: s.playerID,
		Kind:     entities.UpgradeCatchChance,
	})
	s.True(errors.IsInsufficientFunds(err))

	_, err = svc.PurchaseUpgrade(s.ctx, &game.PurchaseUpgradeInput{PlayerID: s.playerID, Kind: "luck"})
	s.True(errors.IsInvalidArgument(err))

	stored, err := s.progRepo.Get(s.ctx, progressionrepo.GetInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(1, stored.Progression.Upgrades.CatchChance)
	s.Equal(1, stored.Progression.Trophies)
}

func (s *OrchestratorTestSuite) TestGetOpponent_CachedUntilDifficultyMoves() {
	svc, src := s.newOrchestrator(0, 0)

	first, err := svc.GetOpponent(s.ctx, &game.GetOpponentInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(1, first.Opponent.Level)
	s.False(first.Opponent.IsBoss)
	s.Equal(entities.Stats{Armor: 9, Strength: 8, Health: 36, Speed: 6}, first.Opponent.Creature.Stats)

	again, err := svc.GetOpponent(s.ctx, &game.GetOpponentInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Same(first.Opponent, again.Opponent)

	ints, _ := src.Remaining()
	s.Equal(1, ints)
}

func (s *OrchestratorTestSuite) TestQuickBattle_Win() {
	s.seedCreature(testutils.CreateTestCreature("bug-1", s.clock.Now()))
	// opponent pick, then the regenerated opponent for level 2
	svc, src := s.newOrchestrator(0, 0)

	output, err := svc.QuickBattle(s.ctx, &game.QuickBattleInput{PlayerID: s.playerID, CreatureID: "bug-1"})
	s.Require().NoError(err)

	s.True(output.Result.PlayerWon)
	s.InDelta(9.1, output.Result.PlayerPower, 1e-9)
	s.InDelta(6.8, output.Result.NPCPower, 1e-9)
	s.Equal(2, output.Result.Damage)
	s.Require().NotNil(output.Rewards)
	s.Equal(1, output.Rewards.TrophiesEarned)
	s.Equal(0, output.Rewards.PointsEarned)
	s.False(output.Rewards.BadgeEarned)
	s.Equal(2, output.Progression.DifficultyLevel)
	s.Equal(1, output.Progression.Victories)
	s.Equal(1, output.Progression.Trophies)

	next, err := svc.GetOpponent(s.ctx, &game.GetOpponentInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(2, next.Opponent.Level)

	ints, _ := src.Remaining()
	s.Equal(0, ints)
}

func (s *OrchestratorTestSuite) TestQuickBattle_Loss() {
	weak := testutils.CreateTestCreature("bug-weak", s.clock.Now())
	weak.Stats.Strength = 2
	s.seedCreature(weak)
	svc, _ := s.newOrchestrator(0)

	output, err := svc.QuickBattle(s.ctx, &game.QuickBattleInput{PlayerID: s.playerID, CreatureID: "bug-weak"})
	s.Require().NoError(err)
	s.False(output.Result.PlayerWon)
	s.Nil(output.Rewards)
	s.Equal(1, output.Progression.DifficultyLevel)
}

func (s *OrchestratorTestSuite) TestQuickBattle_UnknownCreature() {
	svc, _ := s.newOrchestrator()

	_, err := svc.QuickBattle(s.ctx, &game.QuickBattleInput{PlayerID: s.playerID, CreatureID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestTacticalBattle_PlayerWins() {
	s.seedCreature(testutils.CreateTestCreature("bug-1", s.clock.Now()))
	// opponent pick, then the opponent speeds four times into the player's attacks
	svc, _ := s.newOrchestrator(0, 2, 2, 2, 2)

	started, err := svc.StartBattle(s.ctx, &game.StartBattleInput{PlayerID: s.playerID, CreatureID: "bug-1"})
	s.Require().NoError(err)
	s.Equal("battle_1", started.Battle.ID)
	s.Equal(45, started.Battle.PlayerHealth)
	s.Equal(36, started.Battle.OpponentHealth)

	_, err = svc.StartBattle(s.ctx, &game.StartBattleInput{PlayerID: s.playerID, CreatureID: "bug-1"})
	s.True(errors.IsFailedPrecondition(err))

	var last *game.TakeTurnOutput
	for i := 0; i < 4; i++ {
		last, err = svc.TakeTurn(s.ctx, &game.TakeTurnInput{PlayerID: s.playerID, Action: battle.ActionAttack})
		s.Require().NoError(err)
		s.Equal(battle.ActionSpeed, last.Turn.OpponentAction)
		s.Equal(9, last.Turn.OpponentDamage)
	}

	s.True(last.Battle.Finished())
	s.Require().NotNil(last.Outcome)
	s.Equal(battle.SidePlayer, last.Outcome.Winner)
	s.Require().NotNil(last.Rewards)
	s.Equal(1, last.Rewards.TrophiesEarned)
	s.Equal(2, last.Progression.DifficultyLevel)

	_, err = svc.GetBattle(s.ctx, &game.GetBattleInput{PlayerID: s.playerID})
	s.True(errors.IsNotFound(err))

	_, err = svc.TakeTurn(s.ctx, &game.TakeTurnInput{PlayerID: s.playerID, Action: battle.ActionAttack})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestTacticalBattle_StatePersistsBetweenTurns() {
	s.seedCreature(testutils.CreateTestCreature("bug-1", s.clock.Now()))
	// opponent defends while the player speeds: the opponent is stunned
	svc, _ := s.newOrchestrator(0, 1)

	_, err := svc.StartBattle(s.ctx, &game.StartBattleInput{PlayerID: s.playerID, CreatureID: "bug-1"})
	s.Require().NoError(err)

	turn, err := svc.TakeTurn(s.ctx, &game.TakeTurnInput{PlayerID: s.playerID, Action: battle.ActionSpeed})
	s.Require().NoError(err)
	s.True(turn.Turn.OpponentStunned)
	s.Nil(turn.Outcome)

	got, err := svc.GetBattle(s.ctx, &game.GetBattleInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.True(got.Battle.OpponentStunned)
	s.Equal(2, got.Battle.TurnNumber)
	s.Len(got.Battle.Turns, 1)
}

func (s *OrchestratorTestSuite) TestTakeTurn_InvalidAction() {
	svc, _ := s.newOrchestrator()

	_, err := svc.TakeTurn(s.ctx, &game.TakeTurnInput{PlayerID: s.playerID, Action: "dance"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAbandonBattle() {
	s.seedCreature(testutils.CreateTestCreature("bug-1", s.clock.Now()))
	svc, _ := s.newOrchestrator(0)

	_, err := svc.StartBattle(s.ctx, &game.StartBattleInput{PlayerID: s.playerID, CreatureID: "bug-1"})
	s.Require().NoError(err)

	abandoned, err := svc.AbandonBattle(s.ctx, &game.AbandonBattleInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.True(abandoned.Abandoned)

	again, err := svc.AbandonBattle(s.ctx, &game.AbandonBattleInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.False(again.Abandoned)

	progress, err := svc.GetProgress(s.ctx, &game.GetProgressInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(1, progress.Progression.DifficultyLevel)
}

func (s *OrchestratorTestSuite) TestReset() {
	s.seedProgression(entities.ProgressionPatch{Points: entities.Int(500), DifficultyLevel: entities.Int(4)})
	s.seedCreature(testutils.CreateTestCreature("bug-1", s.clock.Now()))
	s.seedCreature(testutils.CreateTestCreature("bug-2", s.clock.Now().Add(time.Second)))
	svc, _ := s.newOrchestrator(0, 0, 0)

	_, err := svc.Search(s.ctx, &game.SearchInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	output, err := svc.Reset(s.ctx, &game.ResetInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(2, output.CreaturesRemoved)

	progress, err := svc.GetProgress(s.ctx, &game.GetProgressInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Equal(0, progress.Progression.Points)
	s.Equal(1, progress.Progression.DifficultyLevel)
	s.Empty(progress.Collection)

	_, err = svc.Catch(s.ctx, &game.CatchInput{PlayerID: s.playerID, Slot: 0})
	s.True(errors.IsFailedPrecondition(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
