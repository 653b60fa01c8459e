package duel_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dance-battle/internal/battle"
	battlemock "github.com/KirkDiggler/dance-battle/internal/battle/mock"
	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/notify"
	"github.com/KirkDiggler/dance-battle/internal/orchestrators/duel"
	"github.com/KirkDiggler/dance-battle/internal/pkg/clock"
	"github.com/KirkDiggler/dance-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/dance-battle/internal/pkg/rng"
	"github.com/KirkDiggler/dance-battle/internal/progression"
	"github.com/KirkDiggler/dance-battle/internal/repositories/dancers"
	dancersmock "github.com/KirkDiggler/dance-battle/internal/repositories/dancers/mock"
)

type recordingObserver struct {
	chances []float64
}

func (r *recordingObserver) ObserveWinChance(p float64) {
	r.chances = append(r.chances, p)
}

// jammingSource fails the draw numbered failAt and delegates every other one
type jammingSource struct {
	rng.Source
	calls  int
	failAt int
}

func (j *jammingSource) IntRange(minValue, maxValue int) (int, error) {
	j.calls++
	if j.calls == j.failAt {
		return 0, errors.Internal("random source jammed")
	}
	return j.Source.IntRange(minValue, maxValue)
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	bus         events.EventBus
	mockEffects *battlemock.MockEffectsSink
	observer    *recordingObserver
	now         time.Time
	service     duel.Service

	mu     sync.Mutex
	counts map[string]int
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.bus = events.NewBus()
	s.mockEffects = battlemock.NewMockEffectsSink(s.ctrl)
	s.observer = &recordingObserver{}
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.counts = map[string]int{}

	for _, eventType := range []string{
		notify.EventStatsChanged,
		notify.EventXPShown,
		notify.EventLevelUp,
		notify.EventBattleStarted,
		notify.EventBattleResult,
	} {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.counts[e.Type()]++
			return nil
		})
	}

	service, err := duel.NewOrchestrator(&duel.Config{
		DancerRepo:        dancers.NewInMemory(),
		IDGenerator:       idgen.NewSequential("dancer"),
		BattleIDGenerator: idgen.NewSequential("battle"),
		Random:            rng.NewSeeded(99),
		LossRatio:         35,
		Clock:             &clock.Fixed{At: s.now},
		EventBus:          s.bus,
		WinChanceObserver: s.observer,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) createDancer(name string) progression.Snapshot {
	out, err := s.service.CreateDancer(s.ctx, &duel.CreateDancerInput{Name: name})
	s.Require().NoError(err)
	return out.Dancer
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Validation() {
	_, err := duel.NewOrchestrator(nil)
	s.Require().Error(err)

	_, err = duel.NewOrchestrator(&duel.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "DancerRepo")
	s.Contains(err.Error(), "IDGenerator")
	s.Contains(err.Error(), "Random")

	tuning := progression.DefaultTuning()
	tuning.BaseSkillPoints = 1
	_, err = duel.NewOrchestrator(&duel.Config{
		DancerRepo:  dancers.NewInMemory(),
		IDGenerator: idgen.NewSequential("dancer"),
		Random:      rng.NewSeeded(1),
		Tuning:      &tuning,
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "base_skill_points")
}

func (s *OrchestratorTestSuite) TestCreateDancer() {
	dancer := s.createDancer("Kid Groove")

	s.Equal("dancer_1", dancer.ID)
	s.Equal("Kid Groove", dancer.Name)
	s.Equal(1, dancer.Level)
	s.Equal(0, dancer.CurrentXP)
	s.Equal(10, dancer.XPThreshold)
	s.GreaterOrEqual(dancer.Agility, 1)
	s.Less(dancer.Agility, 4)
	s.GreaterOrEqual(dancer.Strength, 1)
	s.Less(dancer.Strength, 4)
	s.GreaterOrEqual(dancer.Intelligence, 1)
	s.Less(dancer.Intelligence, 3)
	s.Equal(dancer.Intelligence*2, dancer.Luck)

	s.Equal(1, s.counts[notify.EventStatsChanged])
}

func (s *OrchestratorTestSuite) TestCreateDancer_RequiresName() {
	_, err := s.service.CreateDancer(s.ctx, &duel.CreateDancerInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.CreateDancer(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateDancer_RepositoryFailure() {
	mockRepo := dancersmock.NewMockRepository(s.ctrl)
	service, err := duel.NewOrchestrator(&duel.Config{
		DancerRepo:  mockRepo,
		IDGenerator: idgen.NewSequential("dancer"),
		Random:      rng.NewSeeded(1),
	})
	s.Require().NoError(err)

	mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input dancers.CreateInput) (*dancers.CreateOutput, error) {
			s.Equal("dancer_1", input.Dancer.ID())
			return nil, errors.AlreadyExists("dancer already exists")
		})

	_, err = service.CreateDancer(s.ctx, &duel.CreateDancerInput{Name: "Kid Groove"})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestGetAndListDancers() {
	first := s.createDancer("First")
	second := s.createDancer("Second")

	got, err := s.service.GetDancer(s.ctx, &duel.GetDancerInput{DancerID: second.ID})
	s.Require().NoError(err)
	s.Equal(second, got.Dancer)

	list, err := s.service.ListDancers(s.ctx, &duel.ListDancersInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Dancers, 2)
	s.Equal(first.ID, list.Dancers[0].ID)
	s.Equal(second.ID, list.Dancers[1].ID)

	_, err = s.service.GetDancer(s.ctx, &duel.GetDancerInput{DancerID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestPreviewBattle() {
	a := s.createDancer("A")
	b := s.createDancer("B")

	out, err := s.service.PreviewBattle(s.ctx, &duel.PreviewBattleInput{ChallengerID: a.ID, OpponentID: b.ID})
	s.Require().NoError(err)

	s.GreaterOrEqual(out.WinChance, 0.0)
	s.LessOrEqual(out.WinChance, 100.0)
	s.Equal(math.RoundToEven(out.WinChance), out.Challenger.WinChance)
	s.Equal(math.RoundToEven(out.WinChance), out.Opponent.WinChance)
	s.Equal(0, out.Challenger.CurrentXP)
	s.Equal([]float64{out.WinChance}, s.observer.chances)
}

func (s *OrchestratorTestSuite) TestPreviewBattle_Errors() {
	a := s.createDancer("A")

	_, err := s.service.PreviewBattle(s.ctx, &duel.PreviewBattleInput{ChallengerID: a.ID, OpponentID: a.ID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.PreviewBattle(s.ctx, &duel.PreviewBattleInput{ChallengerID: a.ID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.PreviewBattle(s.ctx, &duel.PreviewBattleInput{ChallengerID: a.ID, OpponentID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestBattle() {
	a := s.createDancer("A")
	b := s.createDancer("B")

	out, err := s.service.Battle(s.ctx, &duel.BattleInput{ChallengerID: a.ID, OpponentID: b.ID})
	s.Require().NoError(err)

	outcome := out.Outcome
	s.Equal("battle_1", outcome.BattleID)
	s.Equal(a.ID, outcome.PartyAID)
	s.Equal(b.ID, outcome.PartyBID)
	s.Equal(s.now, outcome.ResolvedAt)

	// starting from zero XP, each dancer holds exactly its award
	s.Equal(outcome.XPAwardA, out.Challenger.CurrentXP)
	s.Equal(outcome.XPAwardB, out.Opponent.CurrentXP)

	// every award is at least the loser's 15 XP, past the first threshold
	s.Equal(2, out.Challenger.Level)
	s.Equal(2, out.Opponent.Level)

	s.Equal(1, s.counts[notify.EventBattleStarted])
	s.Equal(2, s.counts[notify.EventBattleResult])
	s.Equal(2, s.counts[notify.EventLevelUp])
}

func (s *OrchestratorTestSuite) TestBattle_ExtraSinksSeeStartThenResult() {
	service, err := duel.NewOrchestrator(&duel.Config{
		DancerRepo:        dancers.NewInMemory(),
		IDGenerator:       idgen.NewSequential("dancer"),
		BattleIDGenerator: idgen.NewSequential("battle"),
		Random:            rng.NewSeeded(5),
		LossRatio:         35,
		BattleSinks:       []battle.EffectsSink{s.mockEffects},
	})
	s.Require().NoError(err)

	a, err := service.CreateDancer(s.ctx, &duel.CreateDancerInput{Name: "A"})
	s.Require().NoError(err)
	b, err := service.CreateDancer(s.ctx, &duel.CreateDancerInput{Name: "B"})
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockEffects.EXPECT().ShowBattleStart(a.Dancer.ID, b.Dancer.ID),
		s.mockEffects.EXPECT().ShowBattleResult(a.Dancer.ID, b.Dancer.ID, gomock.Any()),
	)

	_, err = service.Battle(s.ctx, &duel.BattleInput{ChallengerID: a.Dancer.ID, OpponentID: b.Dancer.ID})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestBattle_PartialAwardFailureReturnsOutcome() {
	// three draws per created dancer, one power roll each, then the
	// challenger's level-up draw fails
	random := &jammingSource{Source: rng.NewSeeded(8), failAt: 9}
	service, err := duel.NewOrchestrator(&duel.Config{
		DancerRepo:        dancers.NewInMemory(),
		IDGenerator:       idgen.NewSequential("dancer"),
		BattleIDGenerator: idgen.NewSequential("battle"),
		Random:            random,
		LossRatio:         35,
		EventBus:          s.bus,
	})
	s.Require().NoError(err)

	a, err := service.CreateDancer(s.ctx, &duel.CreateDancerInput{Name: "A"})
	s.Require().NoError(err)
	b, err := service.CreateDancer(s.ctx, &duel.CreateDancerInput{Name: "B"})
	s.Require().NoError(err)

	out, err := service.Battle(s.ctx, &duel.BattleInput{ChallengerID: a.Dancer.ID, OpponentID: b.Dancer.ID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Require().NotNil(out)
	s.Require().NotNil(out.Outcome)

	s.Equal("battle_1", out.Outcome.BattleID)
	s.Equal(0, out.Challenger.CurrentXP)
	s.Equal(1, out.Challenger.Level)
	s.Equal(out.Outcome.XPAwardB, out.Opponent.CurrentXP)
	s.Equal(2, out.Opponent.Level)
	s.Equal(2, s.counts[notify.EventBattleResult])
}

func (s *OrchestratorTestSuite) TestBattle_SameDancer() {
	a := s.createDancer("A")

	_, err := s.service.Battle(s.ctx, &duel.BattleInput{ChallengerID: a.ID, OpponentID: a.ID})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(0, s.counts[notify.EventBattleStarted])
}

func (s *OrchestratorTestSuite) TestBattle_ConcurrentCallersAreSerialized() {
	a := s.createDancer("A")
	b := s.createDancer("B")

	const rounds = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		totalA   int
		totalB   int
		errCount int
	)

	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.service.Battle(s.ctx, &duel.BattleInput{ChallengerID: a.ID, OpponentID: b.ID})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errCount++
				return
			}
			totalA += out.Outcome.XPAwardA
			totalB += out.Outcome.XPAwardB
		}()
	}
	wg.Wait()

	s.Equal(0, errCount)

	gotA, err := s.service.GetDancer(s.ctx, &duel.GetDancerInput{DancerID: a.ID})
	s.Require().NoError(err)
	gotB, err := s.service.GetDancer(s.ctx, &duel.GetDancerInput{DancerID: b.ID})
	s.Require().NoError(err)

	s.Equal(totalA, gotA.Dancer.CurrentXP)
	s.Equal(totalB, gotB.Dancer.CurrentXP)
	s.Equal(rounds, s.counts[notify.EventBattleStarted])
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
