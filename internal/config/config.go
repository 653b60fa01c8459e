// Package config defines dance-battle configuration and its loader.
package config

import (
	"log/slog"
	"strings"

	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Seed makes every random draw reproducible. Zero uses the dice
	// package's default roller.
	Seed uint64 `koanf:"seed"`

	// Rounds is the number of battles the CLI runs.
	Rounds int `koanf:"rounds"`

	// LossRatio is subtracted from base XP for the losing dancer.
	LossRatio int `koanf:"loss_ratio"`

	XPThreshold       int     `koanf:"xp_threshold"`
	ExperienceBase    int     `koanf:"experience_base"`
	LevelScaling      float64 `koanf:"level_scaling"`
	MaxLevel          int     `koanf:"max_level"`
	SkillPointScaling int     `koanf:"skill_point_scaling"`
	BaseSkillPoints   int     `koanf:"base_skill_points"`
	LuckScalingFactor int     `koanf:"luck_scaling_factor"`

	AgilityMultiplier      float64 `koanf:"agility_multiplier"`
	StrengthMultiplier     float64 `koanf:"strength_multiplier"`
	IntelligenceMultiplier float64 `koanf:"intelligence_multiplier"`
}

// New returns a Config holding the stock defaults.
func New() *Config {
	tuning := progression.DefaultTuning()

	return &Config{
		LogLevel:               "info",
		Rounds:                 1,
		LossRatio:              battle.DefaultLossRatio,
		XPThreshold:            tuning.XPThreshold,
		ExperienceBase:         tuning.ExperienceBase,
		LevelScaling:           tuning.LevelScaling,
		MaxLevel:               tuning.MaxLevel,
		SkillPointScaling:      tuning.SkillPointScaling,
		BaseSkillPoints:        tuning.BaseSkillPoints,
		LuckScalingFactor:      tuning.LuckScalingFactor,
		AgilityMultiplier:      tuning.AgilityMultiplier,
		StrengthMultiplier:     tuning.StrengthMultiplier,
		IntelligenceMultiplier: tuning.IntelligenceMultiplier,
	}
}

// Validate checks every field
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("log_level", "must be one of debug, info, warn, error")
	}
	errors.ValidateMin("rounds", c.Rounds, 1, vb)
	errors.ValidateMin("loss_ratio", c.LossRatio, 0, vb)

	tuning := c.Tuning()
	tuning.Validate(vb)

	return vb.Build()
}

// Tuning returns the progression balance values
func (c *Config) Tuning() progression.Tuning {
	return progression.Tuning{
		XPThreshold:            c.XPThreshold,
		ExperienceBase:         c.ExperienceBase,
		LevelScaling:           c.LevelScaling,
		MaxLevel:               c.MaxLevel,
		SkillPointScaling:      c.SkillPointScaling,
		BaseSkillPoints:        c.BaseSkillPoints,
		LuckScalingFactor:      c.LuckScalingFactor,
		AgilityMultiplier:      c.AgilityMultiplier,
		StrengthMultiplier:     c.StrengthMultiplier,
		IntelligenceMultiplier: c.IntelligenceMultiplier,
	}
}

// SlogLevel returns the configured log level, info if unrecognized
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
