package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/orchestrators/duel"
)

var (
	playerName  string
	npcName     string
	rounds      int
	seed        uint64
	showMetrics bool
)

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Run battles between a player and an NPC",
	Long:  `Roll a player and an NPC dancer, then run a number of battles between them, printing each result and every level-up.`,
	RunE:  runBattle,
}

func init() {
	battleCmd.Flags().StringVar(&playerName, "player", "Player", "player dancer name")
	battleCmd.Flags().StringVar(&npcName, "npc", "NPC", "NPC dancer name")
	battleCmd.Flags().IntVar(&rounds, "rounds", 1, "number of battles to run (overrides config)")
	battleCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible runs (overrides config)")
	battleCmd.Flags().BoolVar(&showMetrics, "metrics", true, "print a metrics summary at the end")
}

func runBattle(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("rounds") {
		cfg.Rounds = rounds
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cfg.Rounds < 1 {
		return errors.InvalidArgumentf("rounds must be at least 1, got %d", cfg.Rounds)
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	a.printLevelUps(w)

	playerID, err := a.createDancer(ctx, playerName)
	if err != nil {
		return err
	}
	npcID, err := a.createDancer(ctx, npcName)
	if err != nil {
		return err
	}

	if err := runRounds(ctx, a.service, w, playerID, npcID, cfg.Rounds); err != nil {
		return err
	}

	if showMetrics {
		return a.printMetrics(w)
	}
	return nil
}

// runRounds previews and runs each battle, then prints both dancers
func runRounds(ctx context.Context, svc duel.Service, w io.Writer, challengerID, opponentID string, n int) error {
	for round := 1; round <= n; round++ {
		preview, err := svc.PreviewBattle(ctx, &duel.PreviewBattleInput{
			ChallengerID: challengerID,
			OpponentID:   opponentID,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "round %d: match closeness %.0f%%\n", round, preview.Challenger.WinChance)

		out, err := svc.Battle(ctx, &duel.BattleInput{
			ChallengerID: challengerID,
			OpponentID:   opponentID,
		})
		if err != nil {
			return err
		}
		printOutcome(w, round, out.Outcome, out.Challenger, out.Opponent)
	}

	list, err := svc.ListDancers(ctx, &duel.ListDancersInput{})
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, d := range list.Dancers {
		printDancer(w, d)
	}

	return nil
}
