package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bug-arena/internal/catalog"
	"github.com/KirkDiggler/bug-arena/internal/orchestrators/game"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print progress and collection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := startApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.service.GetProgress(cmd.Context(), &game.GetProgressInput{PlayerID: a.playerID})
		if err != nil {
			return err
		}
		printProgress(cmd.OutOrStdout(), out)
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every bug and badge",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printCatalog(cmd.OutOrStdout(), catalog.Default())
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a player's collection and progress",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := startApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.service.Reset(cmd.Context(), &game.ResetInput{PlayerID: a.playerID})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s: %d bugs removed\n", a.playerID, out.CreaturesRemoved)
		return nil
	},
}
