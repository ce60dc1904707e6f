// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/datapipe/internal/history"
	"github.com/pdiddy/datapipe/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past conversion runs",
	Long: `History lists runs recorded in the SQLite journal, newest first.
Recording is off by default; enable it with history.enabled in the config
file or DATAPIPE_HISTORY_ENABLED=true.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	presentation, _ := cmd.Flags().GetString("format")

	store, err := history.NewStore(types.HistoryConfig{Path: viper.GetString("history.path")})
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}
	return history.Render(os.Stdout, runs, presentation)
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(historyCmd)
}
