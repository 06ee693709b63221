package main

import (
	"fmt"
	"io"

	"github.com/markovejnovic/libdbc/dbc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.dbc>",
	Short: "Print the contents of a DBC file",
	Long:  "Parse a DBC file and print its version, nodes, value tables, messages and diagnostics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	_ = viper.BindPFlag("format", inspectCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return inspectFile(cmd.OutOrStdout(), args[0], cfg, logger)
}

func inspectFile(w io.Writer, path string, cfg Config, logger *zap.Logger) error {
	logger.Info("decoding file", zap.String("path", path))

	db, report, err := dbc.ParseFile(path, dbc.WithLogger(logger), dbc.WithStrict(cfg.Strict))
	if db == nil {
		return err
	}
	defer db.Close()

	if werr := writeSummary(w, buildSummary(path, db, report), cfg.Format); werr != nil {
		return fmt.Errorf("writing summary: %w", werr)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
