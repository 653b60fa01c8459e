package dancers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/progression"
	"github.com/KirkDiggler/dance-battle/internal/repositories/dancers"
	"github.com/KirkDiggler/dance-battle/internal/testutils/builders"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *dancers.InMemoryRepository
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = dancers.NewInMemory()
}

func (s *InMemoryRepositoryTestSuite) newDancer(id string) *progression.Character {
	c, err := builders.NewDancerBuilder().
		WithID(id).
		WithName("Dancer " + id).
		WithSeed(7).
		Build()
	s.Require().NoError(err)
	return c
}

func (s *InMemoryRepositoryTestSuite) TestCreateAndGet() {
	dancer := s.newDancer("dancer_1")

	_, err := s.repo.Create(s.ctx, dancers.CreateInput{Dancer: dancer})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, dancers.GetInput{ID: "dancer_1"})
	s.Require().NoError(err)
	s.Same(dancer, out.Dancer)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Errors() {
	_, err := s.repo.Create(s.ctx, dancers.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	dancer := s.newDancer("dancer_1")
	_, err = s.repo.Create(s.ctx, dancers.CreateInput{Dancer: dancer})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, dancers.CreateInput{Dancer: s.newDancer("dancer_1")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_Errors() {
	_, err := s.repo.Get(s.ctx, dancers.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, dancers.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestList_KeepsCreationOrder() {
	for _, id := range []string{"c", "a", "b"} {
		_, err := s.repo.Create(s.ctx, dancers.CreateInput{Dancer: s.newDancer(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, dancers.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Dancers, 3)
	s.Equal("c", out.Dancers[0].ID())
	s.Equal("a", out.Dancers[1].ID())
	s.Equal("b", out.Dancers[2].ID())
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	for _, id := range []string{"a", "b"} {
		_, err := s.repo.Create(s.ctx, dancers.CreateInput{Dancer: s.newDancer(id)})
		s.Require().NoError(err)
	}

	_, err := s.repo.Delete(s.ctx, dancers.DeleteInput{ID: "a"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, dancers.GetInput{ID: "a"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.List(s.ctx, dancers.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Dancers, 1)
	s.Equal("b", out.Dancers[0].ID())

	_, err = s.repo.Delete(s.ctx, dancers.DeleteInput{ID: "a"})
	s.True(errors.IsNotFound(err))
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
