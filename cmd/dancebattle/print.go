package main

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

func printDancer(w io.Writer, d progression.Snapshot) {
	fmt.Fprintf(w, "%s (level %d, xp %d/%d)\n", d.Name, d.Level, d.CurrentXP, d.XPThreshold)
	fmt.Fprintf(w, "  agility %d  strength %d  intelligence %d\n", d.Agility, d.Strength, d.Intelligence)
	fmt.Fprintf(w, "  style %d  rhythm %d  luck %d\n", d.Style, d.Rhythm, d.Luck)
}

func describeResult(r battle.Result, challenger, opponent string) string {
	switch r {
	case battle.PartyAWins:
		return challenger + " wins"
	case battle.PartyBWins:
		return opponent + " wins"
	default:
		return "draw"
	}
}

func printOutcome(w io.Writer, round int, o *battle.Outcome, challenger, opponent progression.Snapshot) {
	fmt.Fprintf(w, "round %d: %s (power %d vs %d)\n",
		round, describeResult(o.Result, challenger.Name, opponent.Name), o.PowerA, o.PowerB)
	fmt.Fprintf(w, "  %s +%d xp, %s +%d xp\n",
		challenger.Name, max(o.XPAwardA, 0), opponent.Name, max(o.XPAwardB, 0))
}
