package notify

import (
	"log/slog"

	"github.com/KirkDiggler/dance-battle/internal/progression"
)

// LogSink writes one dancer's progression as structured log lines
type LogSink struct {
	logger   *slog.Logger
	dancerID string
}

// NewLogSink creates a log sink; a nil logger means slog.Default
func NewLogSink(logger *slog.Logger, dancerID string) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{
		logger:   logger.With("dancer_id", dancerID),
		dancerID: dancerID,
	}
}

// Notify logs the dancer's stats at debug level
func (s *LogSink) Notify(snapshot progression.Snapshot) {
	s.logger.Debug("Stats changed",
		"level", snapshot.Level,
		"agility", snapshot.Agility,
		"strength", snapshot.Strength,
		"intelligence", snapshot.Intelligence,
		"style", snapshot.Style,
		"rhythm", snapshot.Rhythm,
		"luck", snapshot.Luck,
		"xp", snapshot.CurrentXP,
		"xp_threshold", snapshot.XPThreshold,
	)
}

// ShowXP logs the running XP total at debug level
func (s *LogSink) ShowXP(currentXP int) {
	s.logger.Debug("XP updated", "xp", currentXP)
}

// ShowLevelUp logs the level-up
func (s *LogSink) ShowLevelUp() {
	s.logger.Info("Dancer leveled up")
}

// BattleLogSink writes battle presentation as structured log lines
type BattleLogSink struct {
	logger *slog.Logger
}

// NewBattleLogSink creates a battle log sink; a nil logger means slog.Default
func NewBattleLogSink(logger *slog.Logger) *BattleLogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &BattleLogSink{logger: logger}
}

// ShowBattleStart logs that both dancers started dancing
func (s *BattleLogSink) ShowBattleStart(partyAID, partyBID string) {
	s.logger.Debug("Battle started", "party_a", partyAID, "party_b", partyBID)
}

// ShowBattleResult logs the result from each party's point of view
func (s *BattleLogSink) ShowBattleResult(partyAID, partyBID string, outcomeSignal float64) {
	s.logger.Debug("Battle result",
		"party_a", partyAID,
		"party_b", partyBID,
		"signal_a", outcomeSignal,
		"signal_b", -outcomeSignal,
	)
}
