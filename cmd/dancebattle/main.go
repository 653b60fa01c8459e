// Package main is the entry point for the dance-battle CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dance-battle/internal/errors"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "dancebattle",
	Short:         "Dance battle game core",
	Long:          `Roll dancers and run dance battles between a player and an NPC, levelling both up as they earn XP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (or set DANCE_CONFIG)")

	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(battleCmd)
}
