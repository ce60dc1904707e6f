// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the datapipe CLI, a converter for
// flat record data: CSV, JSON, and YAML in or out, with optional row-level
// cleanup on the way through.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/datapipe/internal/history"
	"github.com/pdiddy/datapipe/internal/pipeline"
	"github.com/pdiddy/datapipe/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; the conversion itself runs here, so the
// original single-invocation surface still works:
//
//	datapipe --input data.csv --output data.json --filter-empty
var rootCmd = &cobra.Command{
	Use:   "datapipe --input <path> --output <path>",
	Short: "Convert flat record data between CSV, JSON, and YAML",
	Long: `datapipe reads a file of records, optionally drops empty fields and
stamps a shared timestamp, and writes the records out in the format implied
by the output file's extension.

Formats are inferred from extensions only: .csv, .json, .yaml/.yml. The whole
dataset is held in memory; record order is preserved end to end.`,
	SilenceUsage: true,
	RunE:         runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	filterEmpty, _ := cmd.Flags().GetBool("filter-empty")
	addTimestamp, _ := cmd.Flags().GetBool("add-timestamp")

	// csv-header is bound to csv.header, so the flag wins when set and the
	// config file, environment, and default apply in that order otherwise.
	header := viper.GetString("csv.header")
	policy := types.HeaderPolicy(header)
	if !policy.Valid() {
		return fmt.Errorf("invalid csv-header %q (want first or union)", header)
	}

	started := time.Now()
	result, err := pipeline.Run(pipeline.Options{
		InputPath:    input,
		OutputPath:   output,
		FilterEmpty:  filterEmpty,
		AddTimestamp: addTimestamp,
		CSVHeader:    policy,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "converted %s (%s) -> %s (%s): %d record(s)\n",
		input, result.InputFormat, output, result.OutputFormat, result.Records)

	recordRun(started, input, output, result)
	return nil
}

// recordRun appends the run to the history journal when enabled. The output
// file is already in place, so a journal failure warns rather than failing
// the run.
func recordRun(started time.Time, input, output string, result pipeline.Result) {
	if !viper.GetBool("history.enabled") {
		return
	}

	store, err := history.NewStore(types.HistoryConfig{Path: viper.GetString("history.path")})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	defer store.Close()

	ops := make([]string, len(result.Operations))
	for i, op := range result.Operations {
		ops[i] = string(op)
	}
	run := history.Run{
		StartedAt:    started,
		InputPath:    input,
		InputFormat:  string(result.InputFormat),
		OutputPath:   output,
		OutputFormat: string(result.OutputFormat),
		Operations:   ops,
		Records:      result.Records,
	}
	if err := store.Append(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./datapipe.yaml or ~/.config/datapipe/config.yaml)")

	rootCmd.Flags().String("input", "", "source file path (.csv, .json, .yaml)")
	rootCmd.Flags().String("output", "", "destination file path (.csv, .json, .yaml)")
	rootCmd.Flags().Bool("filter-empty", false, "drop record fields with empty values")
	rootCmd.Flags().Bool("add-timestamp", false, "stamp every record with one shared timestamp")
	rootCmd.Flags().String("csv-header", "first", "CSV output header policy: first or union")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")

	viper.BindPFlag("csv.header", rootCmd.Flags().Lookup("csv-header"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("datapipe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "datapipe"))
		}
	}

	viper.SetDefault("csv.header", string(types.HeaderFirstRecord))
	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.path", "")

	viper.SetEnvPrefix("DATAPIPE")
	// Nested keys map to underscored variables: history.enabled is
	// DATAPIPE_HISTORY_ENABLED.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
