package progression

import (
	"github.com/KirkDiggler/dance-battle/internal/errors"
)

//go:generate mockgen -destination=mock/mock_sinks.go -package=progressionmock github.com/KirkDiggler/dance-battle/internal/progression StatsChangedSink,XPDisplaySink,LevelUpEffectsSink

// Tuning defaults
const (
	DefaultXPThreshold            = 10
	DefaultExperienceBase         = 50
	DefaultLevelScaling           = 1.2
	DefaultMaxLevel               = 99
	DefaultSkillPointScaling      = 1
	DefaultBaseSkillPoints        = 5
	DefaultLuckScalingFactor      = 1
	DefaultAgilityMultiplier      = 0.5
	DefaultStrengthMultiplier     = 1.0
	DefaultIntelligenceMultiplier = 2.0
)

// Starting attributes before GenerateInitialAttributes runs
const (
	DefaultAgility      = 2
	DefaultStrength     = 2
	DefaultIntelligence = 1
)

// numberOfAttributes is the flat bonus added to the attribute sum in the
// power level formula.
const numberOfAttributes = 5

// milestoneLevels grant bonus points when the level is an exact multiple.
var milestoneLevels = []int{10, 25, 50, 75, 99}

// Tuning holds the balance knobs of a dancer
type Tuning struct {
	XPThreshold       int
	ExperienceBase    int
	LevelScaling      float64
	MaxLevel          int
	SkillPointScaling int
	BaseSkillPoints   int
	LuckScalingFactor int

	// Multipliers that are zero or negative are reset to their defaults
	// the next time dance stats are computed.
	AgilityMultiplier      float64
	StrengthMultiplier     float64
	IntelligenceMultiplier float64
}

// DefaultTuning returns the stock balance values
func DefaultTuning() Tuning {
	return Tuning{
		XPThreshold:            DefaultXPThreshold,
		ExperienceBase:         DefaultExperienceBase,
		LevelScaling:           DefaultLevelScaling,
		MaxLevel:               DefaultMaxLevel,
		SkillPointScaling:      DefaultSkillPointScaling,
		BaseSkillPoints:        DefaultBaseSkillPoints,
		LuckScalingFactor:      DefaultLuckScalingFactor,
		AgilityMultiplier:      DefaultAgilityMultiplier,
		StrengthMultiplier:     DefaultStrengthMultiplier,
		IntelligenceMultiplier: DefaultIntelligenceMultiplier,
	}
}

// Validate records tuning problems on vb
func (t *Tuning) Validate(vb *errors.ValidationBuilder) {
	errors.ValidateMin("xp_threshold", t.XPThreshold, 1, vb)
	errors.ValidateMin("experience_base", t.ExperienceBase, 0, vb)
	errors.ValidatePositive("level_scaling", t.LevelScaling, vb)
	errors.ValidateMin("max_level", t.MaxLevel, 1, vb)
	errors.ValidateMin("skill_point_scaling", t.SkillPointScaling, 0, vb)
	errors.ValidateMin("luck_scaling_factor", t.LuckScalingFactor, 0, vb)
	// the unequal redistribution branches draw from [1, pool)
	errors.ValidateMin("base_skill_points", t.BaseSkillPoints, 2, vb)
}

// IsMilestone reports whether level is a positive multiple of any milestone
func IsMilestone(level int) bool {
	if level <= 0 {
		return false
	}
	for _, m := range milestoneLevels {
		if level%m == 0 {
			return true
		}
	}
	return false
}

// Snapshot is a read-only copy of a dancer's state handed to sinks
type Snapshot struct {
	ID   string
	Name string

	Level             int
	CurrentXP         int
	XPThreshold       int
	PreviousThreshold int

	Agility      int
	Strength     int
	Intelligence int

	Style  int
	Rhythm int
	Luck   int

	HasReachedMilestone bool

	// WinChance is the last displayed chance to win, a whole percentage
	WinChance float64

	// LevelProgress is the fraction of the current level's XP span earned
	LevelProgress float64

	// ExperienceStep is the fraction of the span granted by the last award
	ExperienceStep float64
}

// StatsChangedSink is told whenever attributes or dance stats change
type StatsChangedSink interface {
	Notify(snapshot Snapshot)
}

// XPDisplaySink is shown the running XP total after every award
type XPDisplaySink interface {
	ShowXP(currentXP int)
}

// LevelUpEffectsSink plays level-up feedback once per completed level-up
type LevelUpEffectsSink interface {
	ShowLevelUp()
}

type nopSink struct{}

func (nopSink) Notify(Snapshot) {}
func (nopSink) ShowXP(int)      {}
func (nopSink) ShowLevelUp()    {}
