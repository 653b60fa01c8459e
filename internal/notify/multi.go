package notify

import (
	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

// DancerSink is a sink for every progression notification
type DancerSink interface {
	progression.StatsChangedSink
	progression.XPDisplaySink
	progression.LevelUpEffectsSink
}

// Multi fans each progression notification out in order
type Multi []DancerSink

// Notify forwards to every sink
func (m Multi) Notify(snapshot progression.Snapshot) {
	for _, s := range m {
		s.Notify(snapshot)
	}
}

// ShowXP forwards to every sink
func (m Multi) ShowXP(currentXP int) {
	for _, s := range m {
		s.ShowXP(currentXP)
	}
}

// ShowLevelUp forwards to every sink
func (m Multi) ShowLevelUp() {
	for _, s := range m {
		s.ShowLevelUp()
	}
}

// BattleMulti fans battle presentation out in order
type BattleMulti []battle.EffectsSink

// ShowBattleStart forwards to every sink
func (m BattleMulti) ShowBattleStart(partyAID, partyBID string) {
	for _, s := range m {
		s.ShowBattleStart(partyAID, partyBID)
	}
}

// ShowBattleResult forwards to every sink
func (m BattleMulti) ShowBattleResult(partyAID, partyBID string, outcomeSignal float64) {
	for _, s := range m {
		s.ShowBattleResult(partyAID, partyBID, outcomeSignal)
	}
}
