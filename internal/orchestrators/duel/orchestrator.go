// Package duel implements the orchestrator that manages the dancer roster
// and runs battles between dancers
package duel

//go:generate mockgen -destination=mock/mock_service.go -package=duelmock github.com/KirkDiggler/dance-battle/internal/orchestrators/duel Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/notify"
	"github.com/KirkDiggler/dance-battle/internal/pkg/clock"
	"github.com/KirkDiggler/dance-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/dance-battle/internal/pkg/rng"
	"github.com/KirkDiggler/dance-battle/internal/progression"
	"github.com/KirkDiggler/dance-battle/internal/repositories/dancers"
)

// Compile-time check that a dancer can fight
var _ battle.Combatant = (*progression.Character)(nil)

// Service defines the interface for duel operations
type Service interface {
	CreateDancer(ctx context.Context, input *CreateDancerInput) (*CreateDancerOutput, error)
	GetDancer(ctx context.Context, input *GetDancerInput) (*GetDancerOutput, error)
	ListDancers(ctx context.Context, input *ListDancersInput) (*ListDancersOutput, error)

	PreviewBattle(ctx context.Context, input *PreviewBattleInput) (*PreviewBattleOutput, error)
	Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error)
}

// SinkFactory builds an extra progression sink for a newly created dancer
type SinkFactory func(dancerID string) notify.DancerSink

// WinChanceObserver is told every previewed win chance
type WinChanceObserver interface {
	ObserveWinChance(percentage float64)
}

// Config holds the dependencies for the duel orchestrator
type Config struct {
	DancerRepo  dancers.Repository
	IDGenerator idgen.Generator
	Random      rng.Source

	// Tuning defaults to progression.DefaultTuning when nil
	Tuning    *progression.Tuning
	LossRatio int

	// Optional; BattleIDGenerator defaults to UUIDs prefixed "battle" and
	// Clock to the real clock.
	BattleIDGenerator idgen.Generator
	Clock             clock.Clock

	// Optional presentation and observers
	EventBus          events.EventBus
	Logger            *slog.Logger
	DancerSinks       []SinkFactory
	BattleSinks       []battle.EffectsSink
	WinChanceObserver WinChanceObserver
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DancerRepo == nil {
		vb.RequiredField("DancerRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.Tuning != nil {
		c.Tuning.Validate(vb)
	}

	return vb.Build()
}

type orchestrator struct {
	dancerRepo dancers.Repository
	idGen      idgen.Generator
	random     rng.Source
	tuning     progression.Tuning
	resolver   *battle.Resolver

	eventBus          events.EventBus
	logger            *slog.Logger
	dancerSinks       []SinkFactory
	winChanceObserver WinChanceObserver

	// mu serializes every operation that reads or mutates a dancer
	mu sync.Mutex
}

// NewOrchestrator creates a new duel orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tuning := progression.DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	battleIDGen := cfg.BattleIDGenerator
	if battleIDGen == nil {
		battleIDGen = idgen.NewUUID("battle")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	effects := notify.BattleMulti{notify.NewBattleLogSink(logger)}
	if cfg.EventBus != nil {
		busSink, err := notify.NewBattleEventSink(context.Background(), cfg.EventBus)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create battle event sink")
		}
		effects = append(effects, busSink)
	}
	effects = append(effects, cfg.BattleSinks...)

	resolver, err := battle.NewResolver(&battle.Config{
		LossRatio:   cfg.LossRatio,
		Clock:       clk,
		IDGenerator: battleIDGen,
		Effects:     effects,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	return &orchestrator{
		dancerRepo:        cfg.DancerRepo,
		idGen:             cfg.IDGenerator,
		random:            cfg.Random,
		tuning:            tuning,
		resolver:          resolver,
		eventBus:          cfg.EventBus,
		logger:            logger,
		dancerSinks:       cfg.DancerSinks,
		winChanceObserver: cfg.WinChanceObserver,
	}, nil
}

// CreateDancer rolls a new dancer and adds it to the roster
func (o *orchestrator) CreateDancer(ctx context.Context, input *CreateDancerInput) (*CreateDancerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	id := o.idGen.Generate()

	sinks, err := o.buildSinks(ctx, id)
	if err != nil {
		return nil, err
	}

	tuning := o.tuning
	dancer, err := progression.NewCharacter(&progression.Config{
		ID:          id,
		Name:        input.Name,
		Tuning:      &tuning,
		Random:      o.random,
		StatsSink:   sinks,
		XPSink:      sinks,
		LevelUpSink: sinks,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dancer")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := dancer.GenerateInitialAttributes(); err != nil {
		return nil, errors.Wrapf(err, "failed to roll attributes for %s", id)
	}

	if _, err := o.dancerRepo.Create(ctx, dancers.CreateInput{Dancer: dancer}); err != nil {
		return nil, errors.Wrap(err, "failed to save dancer")
	}

	slog.Info("Dancer created", "dancer_id", id, "name", input.Name)

	return &CreateDancerOutput{Dancer: dancer.Snapshot()}, nil
}

func (o *orchestrator) buildSinks(ctx context.Context, dancerID string) (notify.Multi, error) {
	sinks := notify.Multi{notify.NewLogSink(o.logger, dancerID)}

	if o.eventBus != nil {
		busSink, err := notify.NewEventSink(&notify.EventSinkConfig{
			DancerID: dancerID,
			EventBus: o.eventBus,
			Context:  context.WithoutCancel(ctx),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create event sink")
		}
		sinks = append(sinks, busSink)
	}

	for _, factory := range o.dancerSinks {
		if sink := factory(dancerID); sink != nil {
			sinks = append(sinks, sink)
		}
	}

	return sinks, nil
}

// GetDancer returns a snapshot of one dancer
func (o *orchestrator) GetDancer(ctx context.Context, input *GetDancerInput) (*GetDancerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	dancer, err := o.getDancer(ctx, input.DancerID)
	if err != nil {
		return nil, err
	}

	return &GetDancerOutput{Dancer: dancer.Snapshot()}, nil
}

// ListDancers returns snapshots of every dancer in creation order
func (o *orchestrator) ListDancers(ctx context.Context, input *ListDancersInput) (*ListDancersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.dancerRepo.List(ctx, dancers.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dancers")
	}

	snapshots := make([]progression.Snapshot, 0, len(out.Dancers))
	for _, d := range out.Dancers {
		snapshots = append(snapshots, d.Snapshot())
	}

	return &ListDancersOutput{Dancers: snapshots}, nil
}

// PreviewBattle estimates how close a battle would be and shows the
// chance on both dancers. The estimate does not affect a later Battle.
func (o *orchestrator) PreviewBattle(ctx context.Context, input *PreviewBattleInput) (*PreviewBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	challenger, opponent, err := o.getPair(ctx, input.ChallengerID, input.OpponentID)
	if err != nil {
		return nil, err
	}

	chance, err := o.resolver.EstimateWinProbability(challenger, opponent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to estimate win probability")
	}

	challenger.SetWinChance(chance)
	opponent.SetWinChance(chance)

	if o.winChanceObserver != nil {
		o.winChanceObserver.ObserveWinChance(chance)
	}

	return &PreviewBattleOutput{
		WinChance:  chance,
		Challenger: challenger.Snapshot(),
		Opponent:   opponent.Snapshot(),
	}, nil
}

// Battle runs one battle and awards XP to both dancers. When an award
// fails after the battle was decided, the output is returned alongside
// the error.
func (o *orchestrator) Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	challenger, opponent, err := o.getPair(ctx, input.ChallengerID, input.OpponentID)
	if err != nil {
		return nil, err
	}

	o.resolver.Begin(challenger, opponent)

	outcome, err := o.resolver.Resolve(challenger, opponent)
	if err != nil {
		if outcome == nil {
			return nil, errors.Wrap(err, "failed to resolve battle")
		}
		// decided but partly awarded; report what was committed
		return &BattleOutput{
			Outcome:    outcome,
			Challenger: challenger.Snapshot(),
			Opponent:   opponent.Snapshot(),
		}, errors.Wrap(err, "failed to award battle xp")
	}

	return &BattleOutput{
		Outcome:    outcome,
		Challenger: challenger.Snapshot(),
		Opponent:   opponent.Snapshot(),
	}, nil
}

func (o *orchestrator) getPair(ctx context.Context, challengerID, opponentID string) (*progression.Character, *progression.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("challenger_id", challengerID, vb)
	errors.ValidateRequired("opponent_id", opponentID, vb)
	if err := vb.Build(); err != nil {
		return nil, nil, err
	}
	if challengerID == opponentID {
		return nil, nil, errors.InvalidArgument("a dancer cannot battle itself").
			WithMeta("dancer_id", challengerID)
	}

	challenger, err := o.getDancer(ctx, challengerID)
	if err != nil {
		return nil, nil, err
	}
	opponent, err := o.getDancer(ctx, opponentID)
	if err != nil {
		return nil, nil, err
	}

	return challenger, opponent, nil
}

func (o *orchestrator) getDancer(ctx context.Context, id string) (*progression.Character, error) {
	out, err := o.dancerRepo.Get(ctx, dancers.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get dancer %s", id)
	}
	return out.Dancer, nil
}
