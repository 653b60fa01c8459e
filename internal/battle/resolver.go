// Package battle resolves a dance battle between two combatants and
// awards the resulting experience.
package battle

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/pkg/clock"
	"github.com/KirkDiggler/dance-battle/internal/pkg/idgen"
)

// Config holds the dependencies for the resolver
type Config struct {
	LossRatio   int
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// Effects is optional
	Effects EffectsSink
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("LossRatio", c.LossRatio, 0, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Resolver computes win chances and battle outcomes
type Resolver struct {
	lossRatio int
	clock     clock.Clock
	idGen     idgen.Generator
	effects   EffectsSink
}

// NewResolver creates a resolver with the provided dependencies
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	effects := cfg.Effects
	if effects == nil {
		effects = nopEffects{}
	}

	return &Resolver{
		lossRatio: cfg.LossRatio,
		clock:     cfg.Clock,
		idGen:     cfg.IDGenerator,
		effects:   effects,
	}, nil
}

// WinChance is the closeness of a match: the weaker power as a percentage
// of the stronger, rounded half to even at two decimals. Equal powers
// give 100.
func WinChance(powerA, powerB int) float64 {
	if powerA == powerB {
		return 100
	}

	low, high := powerA, powerB
	if low > high {
		low, high = high, low
	}
	if high <= 0 {
		return 0
	}
	if low < 0 {
		low = 0
	}

	percentage := float64(low) / float64(high) * 100
	return math.RoundToEven(percentage*100) / 100
}

// EstimateWinProbability rolls both power levels and returns WinChance.
// The rolls are independent of any later Resolve.
func (r *Resolver) EstimateWinProbability(a, b Combatant) (float64, error) {
	powerA, powerB, err := r.rollPowers(a, b)
	if err != nil {
		return 0, err
	}

	return WinChance(powerA, powerB), nil
}

// Begin signals that both dancers have started dancing
func (r *Resolver) Begin(a, b Combatant) {
	r.effects.ShowBattleStart(a.ID(), b.ID())
}

// Resolve rolls fresh power levels, decides the winner and awards XP to
// both sides. Each award may level up its dancer before Resolve returns.
// If an award fails after the battle was decided, the filled Outcome is
// returned with the error and the result is still shown, since the other
// side's award may already be committed.
func (r *Resolver) Resolve(a, b Combatant) (*Outcome, error) {
	powerA, powerB, err := r.rollPowers(a, b)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		BattleID: r.idGen.Generate(),
		PartyAID: a.ID(),
		PartyBID: b.ID(),
		PowerA:   powerA,
		PowerB:   powerB,
		LevelA:   a.Level(),
		LevelB:   b.Level(),
	}

	switch {
	case powerA > powerB:
		outcome.Result = PartyAWins
	case powerA < powerB:
		outcome.Result = PartyBWins
	default:
		outcome.Result = Draw
	}

	baseXP := a.ExperienceBase()
	loserXP := baseXP - r.lossRatio

	switch outcome.Result {
	case Draw:
		outcome.XPAwardA = baseXP + outcome.LevelB*opponentLevelWeight
		outcome.XPAwardB = baseXP + outcome.LevelA*opponentLevelWeight
	case PartyAWins:
		outcome.XPAwardA = baseXP + WinBonus + outcome.LevelB*opponentLevelWeight
		outcome.XPAwardB = loserXP
	case PartyBWins:
		outcome.XPAwardA = loserXP
		outcome.XPAwardB = baseXP + WinBonus + outcome.LevelA*opponentLevelWeight
	}

	// both awards are attempted so one dancer's failure does not cost the
	// other their XP
	errA := r.award(a, outcome.XPAwardA, outcome.BattleID)
	errB := r.award(b, outcome.XPAwardB, outcome.BattleID)

	outcome.ResolvedAt = r.clock.Now()
	r.effects.ShowBattleResult(outcome.PartyAID, outcome.PartyBID, outcome.Result.Signal())

	if errA != nil {
		return outcome, errors.Wrapf(errA, "failed to award xp to %s", a.ID()).
			WithMeta("battle_id", outcome.BattleID)
	}
	if errB != nil {
		return outcome, errors.Wrapf(errB, "failed to award xp to %s", b.ID()).
			WithMeta("battle_id", outcome.BattleID)
	}

	slog.Info("Battle resolved",
		"battle_id", outcome.BattleID,
		"party_a", outcome.PartyAID,
		"party_b", outcome.PartyBID,
		"result", outcome.Result.String(),
		"power_a", powerA,
		"power_b", powerB,
		"xp_a", outcome.XPAwardA,
		"xp_b", outcome.XPAwardB,
	)

	return outcome, nil
}

func (r *Resolver) rollPowers(a, b Combatant) (int, int, error) {
	powerA, err := a.PowerLevel()
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to compute power level for %s", a.ID())
	}
	powerB, err := b.PowerLevel()
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to compute power level for %s", b.ID())
	}

	if powerA <= 0 || powerB <= 0 {
		slog.Warn("Power level is not initialized for a battle",
			"party_a", a.ID(),
			"party_b", b.ID(),
			"power_a", powerA,
			"power_b", powerB,
		)
	}

	return powerA, powerB, nil
}

func (r *Resolver) award(c Combatant, amount int, battleID string) error {
	if amount < 0 {
		slog.Warn("Skipping negative loser xp, base xp is below the loss ratio",
			"battle_id", battleID,
			"dancer_id", c.ID(),
			"xp", amount,
			"loss_ratio", r.lossRatio,
		)
		return nil
	}
	return c.AwardXP(amount)
}
