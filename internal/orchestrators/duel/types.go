package duel

import (
	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

// CreateDancerInput defines the request for creating a dancer
type CreateDancerInput struct {
	Name string
}

// CreateDancerOutput defines the response for creating a dancer
type CreateDancerOutput struct {
	Dancer progression.Snapshot
}

// GetDancerInput defines the request for getting a dancer
type GetDancerInput struct {
	DancerID string
}

// GetDancerOutput defines the response for getting a dancer
type GetDancerOutput struct {
	Dancer progression.Snapshot
}

// ListDancersInput defines the request for listing dancers
type ListDancersInput struct{}

// ListDancersOutput defines the response for listing dancers
type ListDancersOutput struct {
	Dancers []progression.Snapshot
}

// PreviewBattleInput defines the request for previewing a battle
type PreviewBattleInput struct {
	ChallengerID string
	OpponentID   string
}

// PreviewBattleOutput defines the response for previewing a battle
type PreviewBattleOutput struct {
	// WinChance is the closeness of the match as a percentage
	WinChance float64

	Challenger progression.Snapshot
	Opponent   progression.Snapshot
}

// BattleInput defines the request for running a battle
type BattleInput struct {
	ChallengerID string
	OpponentID   string
}

// BattleOutput defines the response for running a battle. Snapshots are
// taken after XP was awarded.
type BattleOutput struct {
	Outcome    *battle.Outcome
	Challenger progression.Snapshot
	Opponent   progression.Snapshot
}
