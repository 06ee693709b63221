package main

import (
	"fmt"
	"io"

	"github.com/markovejnovic/libdbc/dbc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.dbc>...",
	Short: "Report problems in DBC files",
	Long:  "Parse each DBC file and print its malformed and critical statements. Exits non-zero if any file fails.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	failed, err := checkFiles(cmd.OutOrStdout(), args, cfg, logger)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// checkFiles prints the diagnostics of every file and returns how many files
// failed. A file fails on a Critical statement, or on a Malformed one when
// cfg.Strict is set.
func checkFiles(w io.Writer, paths []string, cfg Config, logger *zap.Logger) (int, error) {
	threshold := dbc.Critical
	if cfg.Strict {
		threshold = dbc.Malformed
	}

	failed := 0
	for _, path := range paths {
		logger.Info("checking file", zap.String("path", path))

		db, report, err := dbc.ParseFile(path, dbc.WithLogger(logger))
		if db != nil {
			db.Close()
		}
		if err != nil {
			return failed, fmt.Errorf("checking %s: %w", path, err)
		}

		for _, d := range report.Diagnostics {
			fmt.Fprintln(w, formatDiagnostic(path, diagnosticSummary{
				Line:      d.Line,
				Keyword:   d.Keyword,
				Severity:  d.Severity.String(),
				Statement: d.Statement,
			}))
		}
		if len(report.Diagnostics) > 0 && report.Worst() >= threshold {
			failed++
		}
	}
	return failed, nil
}
