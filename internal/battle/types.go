package battle

import (
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=battlemock github.com/KirkDiggler/dance-battle/internal/battle Combatant,EffectsSink

// Defaults for XP awards
const (
	// DefaultLossRatio is subtracted from the base XP for the losing side
	DefaultLossRatio = 35

	// WinBonus is added to the winner's base XP
	WinBonus = 15

	// opponentLevelWeight scales the opponent's level into the award
	opponentLevelWeight = 2
)

// Result is the three-way outcome of a battle, seen from party A
type Result int

// Result values double as the presentation signal
const (
	PartyBWins Result = -1
	Draw       Result = 0
	PartyAWins Result = 1
)

// String returns a readable name for the result
func (r Result) String() string {
	switch r {
	case PartyAWins:
		return "party_a_wins"
	case PartyBWins:
		return "party_b_wins"
	default:
		return "draw"
	}
}

// Signal returns +1, -1 or 0 from party A's perspective
func (r Result) Signal() float64 {
	return float64(r)
}

// Combatant is what the resolver needs from a dancer
type Combatant interface {
	ID() string
	Level() int
	ExperienceBase() int
	PowerLevel() (int, error)
	AwardXP(amount int) error
}

// EffectsSink plays battle presentation. ShowBattleResult is called once
// per resolution with party A's signal; party B's view is the negation.
type EffectsSink interface {
	ShowBattleStart(partyAID, partyBID string)
	ShowBattleResult(partyAID, partyBID string, outcomeSignal float64)
}

// Outcome records a resolved battle
type Outcome struct {
	BattleID string
	PartyAID string
	PartyBID string
	Result   Result

	// Power levels rolled for this resolution
	PowerA int
	PowerB int

	// Levels before any XP was awarded
	LevelA int
	LevelB int

	// XP computed for each side. A negative loser award is kept here as
	// computed but is not applied.
	XPAwardA int
	XPAwardB int

	ResolvedAt time.Time
}

type nopEffects struct{}

func (nopEffects) ShowBattleStart(string, string)            {}
func (nopEffects) ShowBattleResult(string, string, float64) {}
