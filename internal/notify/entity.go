package notify

// EntityType is the core entity type used for dancers on the event bus
const EntityType = "dancer"

// Event types published on the bus
const (
	EventStatsChanged  = "dance.stats_changed"
	EventXPShown       = "dance.xp_shown"
	EventLevelUp       = "dance.level_up"
	EventBattleStarted = "dance.battle_started"
	EventBattleResult  = "dance.battle_result"
)

// Event context keys
const (
	KeySnapshot  = "snapshot"
	KeyCurrentXP = "current_xp"
	KeyLevel     = "level"
	KeySignal    = "signal"
)

// Dancer identifies a dancer as a core.Entity
type Dancer struct {
	ID string
}

// GetID returns the dancer ID
func (d *Dancer) GetID() string {
	return d.ID
}

// GetType returns the entity type
func (d *Dancer) GetType() string {
	return EntityType
}
