package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

// EventSinkConfig holds the dependencies for an EventSink
type EventSinkConfig struct {
	DancerID string
	EventBus events.EventBus

	// Context is used when publishing; defaults to context.Background
	Context context.Context
}

// Validate ensures all required dependencies are provided
func (c *EventSinkConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("DancerID", c.DancerID, vb)
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// EventSink publishes one dancer's progression to an event bus
type EventSink struct {
	ctx    context.Context
	bus    events.EventBus
	dancer core.Entity

	mu    sync.Mutex
	level int
}

// NewEventSink creates an event sink for a single dancer
func NewEventSink(cfg *EventSinkConfig) (*EventSink, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return &EventSink{
		ctx:    ctx,
		bus:    cfg.EventBus,
		dancer: &Dancer{ID: cfg.DancerID},
		level:  1,
	}, nil
}

// Notify publishes a stats-changed event carrying the snapshot
func (s *EventSink) Notify(snapshot progression.Snapshot) {
	s.mu.Lock()
	s.level = snapshot.Level
	s.mu.Unlock()

	event := events.NewGameEvent(EventStatsChanged, s.dancer, nil)
	event.Context().Set(KeySnapshot, snapshot)
	event.Context().Set(KeyLevel, snapshot.Level)
	publish(s.ctx, s.bus, event)
}

// ShowXP publishes the running XP total
func (s *EventSink) ShowXP(currentXP int) {
	event := events.NewGameEvent(EventXPShown, s.dancer, nil)
	event.Context().Set(KeyCurrentXP, currentXP)
	publish(s.ctx, s.bus, event)
}

// ShowLevelUp publishes a level-up event with the level from the last
// snapshot, which is always delivered first.
func (s *EventSink) ShowLevelUp() {
	s.mu.Lock()
	level := s.level
	s.mu.Unlock()

	event := events.NewGameEvent(EventLevelUp, s.dancer, nil)
	event.Context().Set(KeyLevel, level)
	publish(s.ctx, s.bus, event)
}

// BattleEventSink publishes battle presentation to an event bus
type BattleEventSink struct {
	ctx context.Context
	bus events.EventBus
}

// NewBattleEventSink creates a battle sink. A nil context means
// context.Background.
func NewBattleEventSink(ctx context.Context, bus events.EventBus) (*BattleEventSink, error) {
	if bus == nil {
		return nil, errors.InvalidArgument("event bus is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return &BattleEventSink{ctx: ctx, bus: bus}, nil
}

// ShowBattleStart publishes a single battle-started event from A to B
func (s *BattleEventSink) ShowBattleStart(partyAID, partyBID string) {
	event := events.NewGameEvent(EventBattleStarted, &Dancer{ID: partyAID}, &Dancer{ID: partyBID})
	publish(s.ctx, s.bus, event)
}

// ShowBattleResult publishes one result event per party. Each event's
// source is the party it describes and its signal is from that party's
// point of view.
func (s *BattleEventSink) ShowBattleResult(partyAID, partyBID string, outcomeSignal float64) {
	a := &Dancer{ID: partyAID}
	b := &Dancer{ID: partyBID}

	forA := events.NewGameEvent(EventBattleResult, a, b)
	forA.Context().Set(KeySignal, outcomeSignal)
	publish(s.ctx, s.bus, forA)

	forB := events.NewGameEvent(EventBattleResult, b, a)
	forB.Context().Set(KeySignal, -outcomeSignal)
	publish(s.ctx, s.bus, forB)
}

// publish never fails the caller; sinks have no error path
func publish(ctx context.Context, bus events.EventBus, event events.Event) {
	if err := bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"type", event.Type(),
			"source", event.Source().GetID(),
			"error", err,
		)
	}
}
