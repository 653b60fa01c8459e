// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/dance-battle/internal/pkg/rng"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

// DancerBuilder provides a fluent interface for building test dancers
type DancerBuilder struct {
	cfg        progression.Config
	attributes *[3]int
	xp         []int
}

// NewDancerBuilder creates a new builder with minimal defaults and a
// seeded random source
func NewDancerBuilder() *DancerBuilder {
	return &DancerBuilder{
		cfg: progression.Config{
			ID:     "dancer-test-123",
			Name:   "Test Dancer",
			Random: rng.NewSeeded(1),
		},
	}
}

// WithID sets the dancer ID
func (b *DancerBuilder) WithID(id string) *DancerBuilder {
	b.cfg.ID = id
	return b
}

// WithName sets the dancer name
func (b *DancerBuilder) WithName(name string) *DancerBuilder {
	b.cfg.Name = name
	return b
}

// WithTuning sets the balance values
func (b *DancerBuilder) WithTuning(tuning progression.Tuning) *DancerBuilder {
	b.cfg.Tuning = &tuning
	return b
}

// WithRandom sets the random source
func (b *DancerBuilder) WithRandom(random rng.Source) *DancerBuilder {
	b.cfg.Random = random
	return b
}

// WithSeed uses a seeded random source
func (b *DancerBuilder) WithSeed(seed uint64) *DancerBuilder {
	b.cfg.Random = rng.NewSeeded(seed)
	return b
}

// WithSinks sets all three progression sinks
func (b *DancerBuilder) WithSinks(stats progression.StatsChangedSink, xp progression.XPDisplaySink, levelUp progression.LevelUpEffectsSink) *DancerBuilder {
	b.cfg.StatsSink = stats
	b.cfg.XPSink = xp
	b.cfg.LevelUpSink = levelUp
	return b
}

// WithAttributes sets agility, strength and intelligence
func (b *DancerBuilder) WithAttributes(agility, strength, intelligence int) *DancerBuilder {
	b.attributes = &[3]int{agility, strength, intelligence}
	return b
}

// WithXPAwards applies each award in order after the dancer is built
func (b *DancerBuilder) WithXPAwards(amounts ...int) *DancerBuilder {
	b.xp = append(b.xp, amounts...)
	return b
}

// Build creates the dancer
func (b *DancerBuilder) Build() (*progression.Character, error) {
	cfg := b.cfg
	dancer, err := progression.NewCharacter(&cfg)
	if err != nil {
		return nil, err
	}

	if b.attributes != nil {
		if err := dancer.SetAttributes(b.attributes[0], b.attributes[1], b.attributes[2]); err != nil {
			return nil, err
		}
	}

	for _, amount := range b.xp {
		if err := dancer.AwardXP(amount); err != nil {
			return nil, err
		}
	}

	return dancer, nil
}

// MustBuild creates the dancer or panics
func (b *DancerBuilder) MustBuild() *progression.Character {
	dancer, err := b.Build()
	if err != nil {
		panic(err)
	}
	return dancer
}
