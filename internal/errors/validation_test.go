package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bug-arena/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("trophies", "must be at least 0")
	ve.AddFieldError("badges", "must be between 0 and 10")

	s.Equal("validation failed: badges: must be between 0 and 10; trophies: must be at least 0", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidators() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", "  ", vb)
	errors.ValidateMin("points", -1, 0, vb)
	errors.ValidateRange("badges", 11, 0, 10, vb)
	errors.ValidateEnum("rarity", "shiny", []string{"common", "rare"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "player_id: is required")
	s.Contains(err.Error(), "points: must be at least 0")
	s.Contains(err.Error(), "badges: must be between 0 and 10")
	s.Contains(err.Error(), "rarity: must be one of: common, rare")
}

func (s *ValidationTestSuite) TestValidatorsPass() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", "p1", vb)
	errors.ValidateMin("points", 0, 0, vb)
	errors.ValidateRange("badges", 10, 0, 10, vb)
	errors.ValidateEnum("rarity", "rare", []string{"common", "rare"}, vb)

	s.NoError(vb.Build())
}
