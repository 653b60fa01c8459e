// Package progression owns a dancer's attributes, dance stats, power level
// and experience progression.
package progression

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/pkg/rng"
)

// Config holds the dependencies for a Character
type Config struct {
	ID   string
	Name string

	// Tuning defaults to DefaultTuning when nil
	Tuning *Tuning

	Random rng.Source

	// Sinks are optional; nil sinks discard notifications.
	StatsSink   StatsChangedSink
	XPSink      XPDisplaySink
	LevelUpSink LevelUpEffectsSink
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ID == "" {
		vb.RequiredField("ID")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.Tuning != nil {
		c.Tuning.Validate(vb)
	}

	return vb.Build()
}

// Character is one combatant's progression state. It is not safe for
// concurrent use; callers serialize battles and awards per character.
type Character struct {
	id   string
	name string

	tuning Tuning
	random rng.Source

	statsSink   StatsChangedSink
	xpSink      XPDisplaySink
	levelUpSink LevelUpEffectsSink

	level             int
	currentXP         int
	xpThreshold       int
	previousThreshold int

	agility      int
	strength     int
	intelligence int

	style  int
	rhythm int
	luck   int

	hasReachedMilestone bool

	winChance      float64
	levelProgress  float64
	experienceStep float64
}

// NewCharacter creates a level 1 dancer with the default starting attributes
func NewCharacter(cfg *Config) (*Character, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tuning := DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}

	c := &Character{
		id:           cfg.ID,
		name:         cfg.Name,
		tuning:       tuning,
		random:       cfg.Random,
		statsSink:    cfg.StatsSink,
		xpSink:       cfg.XPSink,
		levelUpSink:  cfg.LevelUpSink,
		level:        1,
		xpThreshold:  tuning.XPThreshold,
		agility:      DefaultAgility,
		strength:     DefaultStrength,
		intelligence: DefaultIntelligence,
	}
	if c.statsSink == nil {
		c.statsSink = nopSink{}
	}
	if c.xpSink == nil {
		c.xpSink = nopSink{}
	}
	if c.levelUpSink == nil {
		c.levelUpSink = nopSink{}
	}

	c.recompute()

	return c, nil
}

// ID returns the dancer's identifier
func (c *Character) ID() string { return c.id }

// Name returns the dancer's display name
func (c *Character) Name() string { return c.name }

// Level returns the current level
func (c *Character) Level() int { return c.level }

// CurrentXP returns the accumulated experience
func (c *Character) CurrentXP() int { return c.currentXP }

// XPThreshold returns the XP total at which the next level-up triggers
func (c *Character) XPThreshold() int { return c.xpThreshold }

// ExperienceBase returns the base XP used for battle awards
func (c *Character) ExperienceBase() int { return c.tuning.ExperienceBase }

// MaxLevel returns the level cap
func (c *Character) MaxLevel() int { return c.tuning.MaxLevel }

// HasReachedMilestone reports whether a milestone bonus is pending
func (c *Character) HasReachedMilestone() bool { return c.hasReachedMilestone }

// Snapshot copies the current state
func (c *Character) Snapshot() Snapshot {
	return Snapshot{
		ID:                  c.id,
		Name:                c.name,
		Level:               c.level,
		CurrentXP:           c.currentXP,
		XPThreshold:         c.xpThreshold,
		PreviousThreshold:   c.previousThreshold,
		Agility:             c.agility,
		Strength:            c.strength,
		Intelligence:        c.intelligence,
		Style:               c.style,
		Rhythm:              c.rhythm,
		Luck:                c.luck,
		HasReachedMilestone: c.hasReachedMilestone,
		WinChance:           c.winChance,
		LevelProgress:       c.levelProgress,
		ExperienceStep:      c.experienceStep,
	}
}

// SetAttributes overwrites the base attributes and recomputes dance stats
func (c *Character) SetAttributes(agility, strength, intelligence int) error {
	if agility < 0 || strength < 0 || intelligence < 0 {
		return errors.InvalidArgumentf("attributes must not be negative: agility=%d strength=%d intelligence=%d",
			agility, strength, intelligence)
	}

	c.agility = agility
	c.strength = strength
	c.intelligence = intelligence
	c.RecomputeDanceStats()

	return nil
}

// GenerateInitialAttributes rolls random starting attributes: agility and
// strength from [1,4), intelligence from [1,3).
func (c *Character) GenerateInitialAttributes() error {
	agility, err := c.random.IntRange(1, 4)
	if err != nil {
		return errors.Wrap(err, "failed to roll agility")
	}
	strength, err := c.random.IntRange(1, 4)
	if err != nil {
		return errors.Wrap(err, "failed to roll strength")
	}
	intelligence, err := c.random.IntRange(1, 3)
	if err != nil {
		return errors.Wrap(err, "failed to roll intelligence")
	}

	c.agility = agility
	c.strength = strength
	c.intelligence = intelligence
	c.RecomputeDanceStats()

	slog.Debug("Generated dancer attributes",
		"dancer_id", c.id,
		"agility", c.agility,
		"strength", c.strength,
		"intelligence", c.intelligence,
	)

	return nil
}

// RecomputeDanceStats derives style, rhythm and luck from the base
// attributes and notifies the stats sink.
func (c *Character) RecomputeDanceStats() {
	c.recompute()
	c.statsSink.Notify(c.Snapshot())
}

func (c *Character) recompute() {
	if c.tuning.AgilityMultiplier <= 0 {
		c.tuning.AgilityMultiplier = DefaultAgilityMultiplier
	}
	if c.tuning.StrengthMultiplier <= 0 {
		c.tuning.StrengthMultiplier = DefaultStrengthMultiplier
	}
	if c.tuning.IntelligenceMultiplier <= 0 {
		c.tuning.IntelligenceMultiplier = DefaultIntelligenceMultiplier
	}

	// conversion truncates toward zero
	c.style = int(float64(c.agility) * c.tuning.AgilityMultiplier)
	c.rhythm = int(float64(c.strength) * c.tuning.StrengthMultiplier)
	c.luck = int(float64(c.intelligence) * c.tuning.IntelligenceMultiplier)
}

// PowerLevel rolls a fresh power level. Every call draws a new luckiness
// from [1, luck+LuckScalingFactor).
func (c *Character) PowerLevel() (int, error) {
	upper := c.luck + c.tuning.LuckScalingFactor
	if upper <= 1 {
		return 0, errors.FailedPreconditionf("luckiness range [1, %d) is empty", upper).
			WithMeta("dancer_id", c.id).
			WithMeta("luck", c.luck).
			WithMeta("luck_scaling_factor", c.tuning.LuckScalingFactor)
	}

	luckiness, err := c.random.IntRange(1, upper)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll luckiness")
	}

	basePoints := c.agility + c.strength + c.intelligence + c.style + c.rhythm
	power := c.level + (basePoints+numberOfAttributes)*luckiness

	if power == 0 {
		slog.Warn("Power level is zero, dancer stats are probably not initialized",
			"dancer_id", c.id,
		)
	}

	return power, nil
}

// SetWinChance records the chance to win shown for this dancer, rounded to
// a whole percentage.
func (c *Character) SetWinChance(percentage float64) {
	c.winChance = math.RoundToEven(percentage)
	c.statsSink.Notify(c.Snapshot())
}

// AwardXP adds experience and triggers at most one level-up when the
// threshold is crossed. Negative awards are rejected; a zero award is
// logged and otherwise a no-op add.
func (c *Character) AwardXP(amount int) error {
	if amount < 0 {
		return errors.InvalidArgumentf("xp award must not be negative: %d", amount).
			WithMeta("dancer_id", c.id)
	}
	if amount == 0 {
		slog.Warn("Dancer was awarded no xp",
			"dancer_id", c.id,
		)
	}

	total := c.currentXP + amount

	// a zero award never levels up, even with a backlog past the threshold
	var plan *levelUpPlan
	if amount > 0 && total >= c.xpThreshold {
		p, err := c.planLevelUp(total, c.xpThreshold)
		if err != nil {
			return errors.Wrap(err, "failed to level up")
		}
		plan = p
	}

	c.experienceStep = ratio(amount, c.xpThreshold-c.previousThreshold)
	c.currentXP = total

	if plan != nil {
		c.previousThreshold = c.xpThreshold
		c.applyLevelUp(plan)
	}

	c.levelProgress = ratio(c.currentXP-c.previousThreshold, c.xpThreshold-c.previousThreshold)

	c.xpSink.ShowXP(c.currentXP)
	if plan != nil && plan.leveled {
		c.statsSink.Notify(c.Snapshot())
		c.levelUpSink.ShowLevelUp()
	}

	return nil
}

// DistributePhysicalStatsOnLevelUp splits pointsPool between agility and
// strength. When bonusIntelligence is at least 1 and a milestone is
// pending, intelligence gains the bonus, agility and strength each gain
// [1,3), and the milestone is cleared.
func (c *Character) DistributePhysicalStatsOnLevelUp(pointsPool, bonusIntelligence int) error {
	gains, err := c.planDistribution(pointsPool, bonusIntelligence, c.hasReachedMilestone)
	if err != nil {
		return err
	}

	c.applyGains(gains)
	c.RecomputeDanceStats()

	return nil
}

type statGains struct {
	agility        int
	strength       int
	intelligence   int
	milestoneBonus bool
}

type levelUpPlan struct {
	level     int
	threshold int
	milestone bool

	// leveled is false at the level cap, where only the threshold and
	// milestone are recomputed.
	leveled bool
	gains   statGains
}

func (c *Character) planLevelUp(currentXP, previousThreshold int) (*levelUpPlan, error) {
	plan := &levelUpPlan{level: c.level}

	if currentXP >= c.xpThreshold && c.level < c.tuning.MaxLevel {
		plan.level++
		plan.leveled = true
	}

	step := math.Pow(float64(c.tuning.ExperienceBase*plan.level), c.tuning.LevelScaling)
	if math.IsNaN(step) || math.IsInf(step, 0) || step > math.MaxInt32 {
		return nil, errors.FailedPreconditionf("xp threshold step out of range: %v", step).
			WithMeta("dancer_id", c.id).
			WithMeta("level", plan.level)
	}
	plan.threshold = previousThreshold + int(step)
	plan.milestone = IsMilestone(plan.level)

	if !plan.leveled {
		return plan, nil
	}

	bonus := 0
	if plan.milestone {
		if c.tuning.SkillPointScaling == 0 {
			bonus = 1
		} else {
			bonus += c.tuning.SkillPointScaling
		}
	}

	gains, err := c.planDistribution(c.tuning.BaseSkillPoints, bonus, plan.milestone)
	if err != nil {
		return nil, err
	}
	plan.gains = gains

	return plan, nil
}

func (c *Character) applyLevelUp(plan *levelUpPlan) {
	c.level = plan.level
	c.xpThreshold = plan.threshold
	c.hasReachedMilestone = plan.milestone

	if !plan.leveled {
		slog.Info("Dancer is at the level cap",
			"dancer_id", c.id,
			"level", c.level,
			"xp_threshold", c.xpThreshold,
		)
		return
	}

	c.applyGains(plan.gains)
	c.recompute()

	slog.Info("Dancer leveled up",
		"dancer_id", c.id,
		"level", c.level,
		"xp_threshold", c.xpThreshold,
		"agility", c.agility,
		"strength", c.strength,
		"intelligence", c.intelligence,
	)
}

// planDistribution draws every random gain up front so a failing source
// leaves the character untouched.
func (c *Character) planDistribution(pointsPool, bonusIntelligence int, milestone bool) (statGains, error) {
	var g statGains

	if pointsPool < 1 {
		return g, errors.InvalidArgumentf("points pool must be at least 1: %d", pointsPool)
	}
	if bonusIntelligence < 0 {
		return g, errors.InvalidArgumentf("bonus intelligence must not be negative: %d", bonusIntelligence)
	}

	switch {
	case c.agility > c.strength:
		strength, err := c.random.IntRange(1, pointsPool)
		if err != nil {
			return g, errors.Wrap(err, "failed to roll strength gain")
		}
		g.strength = strength
		g.agility = pointsPool - strength
	case c.strength > c.agility:
		agility, err := c.random.IntRange(1, pointsPool)
		if err != nil {
			return g, errors.Wrap(err, "failed to roll agility gain")
		}
		g.agility = agility
		g.strength = pointsPool - agility
	default:
		// equal attributes draw from the inclusive range [1, pool]
		strength, err := c.random.IntRange(1, pointsPool+1)
		if err != nil {
			return g, errors.Wrap(err, "failed to roll strength gain")
		}
		g.strength = strength
		g.agility = pointsPool - strength
	}

	if bonusIntelligence >= 1 && milestone {
		agility, err := c.random.IntRange(1, 3)
		if err != nil {
			return g, errors.Wrap(err, "failed to roll milestone agility")
		}
		strength, err := c.random.IntRange(1, 3)
		if err != nil {
			return g, errors.Wrap(err, "failed to roll milestone strength")
		}
		g.intelligence = bonusIntelligence
		g.agility += agility
		g.strength += strength
		g.milestoneBonus = true
	}

	return g, nil
}

func (c *Character) applyGains(g statGains) {
	c.agility += g.agility
	c.strength += g.strength
	c.intelligence += g.intelligence
	if g.milestoneBonus {
		c.hasReachedMilestone = false
	}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
