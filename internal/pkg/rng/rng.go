// Package rng provides the injectable random source used by progression and battles
package rng

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dance-battle/internal/errors"
)

//go:generate mockgen -destination=mock/mock.go -package=rngmock github.com/KirkDiggler/dance-battle/internal/pkg/rng Source

// Source draws uniformly distributed integers
type Source interface {
	// IntRange returns an integer in [minValue, maxValue). An empty range is
	// a configuration error and is reported as FailedPrecondition.
	IntRange(minValue, maxValue int) (int, error)
}

// DiceSource implements Source on top of an rpg-toolkit dice roller.
// A draw from [min, max) is a single die of size max-min, shifted by min-1.
type DiceSource struct {
	roller dice.Roller
}

// NewDiceSource wraps roller. A nil roller falls back to dice.DefaultRoller.
func NewDiceSource(roller dice.Roller) *DiceSource {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &DiceSource{roller: roller}
}

// New returns a Source backed by the toolkit's default roller
func New() Source {
	return NewDiceSource(nil)
}

// NewSeeded returns a reproducible Source
func NewSeeded(seed uint64) Source {
	return NewDiceSource(NewSeededRoller(seed))
}

// IntRange implements Source
func (s *DiceSource) IntRange(minValue, maxValue int) (int, error) {
	if maxValue <= minValue {
		return 0, errors.FailedPreconditionf("empty random range [%d, %d)", minValue, maxValue).
			WithMeta("min", minValue).
			WithMeta("max", maxValue)
	}

	roll, err := s.roller.Roll(maxValue - minValue)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", maxValue-minValue)
	}

	return minValue + roll - 1, nil
}

// SeededRoller is a dice.Roller driven by a seeded PCG generator.
// It is not safe for concurrent use.
type SeededRoller struct {
	rnd *rand.Rand
}

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value from 1 to size inclusive
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return r.rnd.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}

	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

var _ dice.Roller = (*SeededRoller)(nil)
