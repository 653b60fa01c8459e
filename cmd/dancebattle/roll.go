package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dance-battle/internal/orchestrators/duel"
)

var rollName string

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a new dancer",
	Long:  `Roll a level 1 dancer with random starting attributes and print its stats.`,
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&rollName, "name", "Rookie", "dancer name")
}

func runRoll(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	id, err := a.createDancer(ctx, rollName)
	if err != nil {
		return err
	}

	out, err := a.service.GetDancer(ctx, &duel.GetDancerInput{DancerID: id})
	if err != nil {
		return err
	}

	printDancer(cmd.OutOrStdout(), out.Dancer)
	return nil
}
