package progression_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
	"github.com/KirkDiggler/bug-arena/internal/repositories/progression"
	"github.com/KirkDiggler/bug-arena/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (progression.Repository, func())
	repo    progression.Repository
	cleanup func()
	ctx     context.Context
	clock   *clock.Fixed
}

func TestInMemoryRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (progression.Repository, func()) {
		return progression.NewInMemory(s.clock), func() {}
	}
	suite.Run(t, s)
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (progression.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		repo, err := progression.NewRedis(&progression.RedisConfig{Client: client, Clock: s.clock})
		s.Require().NoError(err)
		return repo, cleanup
	}
	suite.Run(t, s)
}

func TestSQLiteRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (progression.Repository, func()) {
		db, cleanup := testutils.CreateTestSQLite(s.T())
		repo, err := progression.NewSQLite(&progression.SQLiteConfig{DB: db, Clock: s.clock})
		s.Require().NoError(err)
		return repo, cleanup
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{T: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, progression.GetInput{PlayerID: "nobody"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestEmptyPlayerID() {
	_, err := s.repo.Get(s.ctx, progression.GetInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Save(s.ctx, progression.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Reset(s.ctx, progression.ResetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestSaveCreatesWithDefaults() {
	out, err := s.repo.Save(s.ctx, progression.SaveInput{
		PlayerID: "p1",
		Patch:    entities.ProgressionPatch{Points: entities.Int(30)},
	})
	s.Require().NoError(err)
	s.Equal(1, out.Progression.DifficultyLevel)
	s.Equal(30, out.Progression.Points)
	s.Zero(out.Progression.Trophies)
	s.True(s.clock.T.Equal(out.Progression.UpdatedAt))

	got, err := s.repo.Get(s.ctx, progression.GetInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal("p1", got.Progression.PlayerID)
	s.Equal(30, got.Progression.Points)
}

func (s *RepositoryTestSuite) TestSaveOnlyWritesSetFields() {
	_, err := s.repo.Save(s.ctx, progression.SaveInput{
		PlayerID: "p1",
		Patch: entities.ProgressionPatch{
			DifficultyLevel: entities.Int(11),
			Victories:       entities.Int(10),
			Trophies:        entities.Int(40),
			Badges:          entities.Int(1),
			BossWins:        entities.Int(1),
			Upgrades:        &entities.Upgrades{RareLuck: 2},
		},
	})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	out, err := s.repo.Save(s.ctx, progression.SaveInput{
		PlayerID: "p1",
		Patch:    entities.ProgressionPatch{Trophies: entities.Int(31)},
	})
	s.Require().NoError(err)

	s.Equal(11, out.Progression.DifficultyLevel)
	s.Equal(10, out.Progression.Victories)
	s.Equal(31, out.Progression.Trophies)
	s.Equal(1, out.Progression.Badges)
	s.Equal(2, out.Progression.Upgrades.RareLuck)
	s.True(s.clock.T.Equal(out.Progression.UpdatedAt))
}

func (s *RepositoryTestSuite) TestPlayersAreIsolated() {
	_, err := s.repo.Save(s.ctx, progression.SaveInput{PlayerID: "p1", Patch: entities.ProgressionPatch{Points: entities.Int(5)}})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, progression.GetInput{PlayerID: "p2"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestReset() {
	_, err := s.repo.Save(s.ctx, progression.SaveInput{PlayerID: "p1", Patch: entities.ProgressionPatch{Points: entities.Int(5)}})
	s.Require().NoError(err)

	_, err = s.repo.Reset(s.ctx, progression.ResetInput{PlayerID: "p1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, progression.GetInput{PlayerID: "p1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Reset(s.ctx, progression.ResetInput{PlayerID: "p1"})
	s.NoError(err)
}

func TestRedisRejectsMalformedRecord(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	repo, err := progression.NewRedis(&progression.RedisConfig{Client: client})
	require.NoError(t, err)

	seed := func(mr *miniredis.Miniredis, field, value string) {
		mr.HSet("progression:p1", field, value)
	}
	for _, f := range []string{"difficulty_level", "victories", "points", "trophies", "badges", "boss_wins",
		"upgrade_catch_chance", "upgrade_rare_luck", "upgrade_creature_strength"} {
		seed(mr, f, "0")
	}
	seed(mr, "difficulty_level", "1")
	seed(mr, "points", "lots")

	_, err = repo.Get(context.Background(), progression.GetInput{PlayerID: "p1"})
	assert.True(t, errors.IsDataLoss(err), "got %v", err)

	seed(mr, "points", "3")
	seed(mr, "badges", "11")
	_, err = repo.Get(context.Background(), progression.GetInput{PlayerID: "p1"})
	assert.True(t, errors.IsDataLoss(err), "badge overflow, got %v", err)
}

func TestSQLiteRejectsMalformedRecord(t *testing.T) {
	db, cleanup := testutils.CreateTestSQLite(t)
	defer cleanup()

	_, err := db.Exec(`INSERT INTO progression (player_id, points) VALUES ('p1', -5)`)
	require.NoError(t, err)

	repo, err := progression.NewSQLite(&progression.SQLiteConfig{DB: db})
	require.NoError(t, err)
	_, err = repo.Get(context.Background(), progression.GetInput{PlayerID: "p1"})
	assert.True(t, errors.IsDataLoss(err), "got %v", err)
}
