package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/stepfind/internal/db"
	"github.com/chriserin/stepfind/internal/ui"
)

var dbFlag string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Run a full scan and persist it to a sqlite database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSnapshot(cmd.OutOrStdout(), stepsFlag, featuresFlag, includeFlag, dbFlag)
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&dbFlag, "db", "stepfind.db", "Path of the snapshot database")
	rootCmd.AddCommand(snapshotCmd)
}

// RunSnapshot scans once and records the scan, its definitions, and its
// undefined steps. The snapshot database is write-only history for outside
// tooling; queries always rescan the file system.
func RunSnapshot(w io.Writer, stepsDir, featuresDir, include, dbPath string) error {
	s, err := newScanner(stepsDir, featuresDir, include)
	if err != nil {
		return err
	}

	defs := s.Index()
	missing := s.Undefined()

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	tx, err := sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot: %w", err)
	}

	res, err := tx.Exec(`INSERT INTO scans (steps_dir, features_dir) VALUES (?, ?)`, stepsDir, featuresDir)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("inserting scan: %w", err)
	}
	scanID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("reading scan id: %w", err)
	}

	for _, d := range defs {
		_, err := tx.Exec(
			`INSERT INTO definitions (scan_id, file_path, line_number, raw, normalized, keyword) VALUES (?, ?, ?, ?, ?, ?)`,
			scanID, d.File, d.Line, d.Raw, d.Normalized, d.Keyword,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting definition %s:%d: %w", d.File, d.Line, err)
		}
	}

	for _, u := range missing {
		_, err := tx.Exec(
			`INSERT INTO undefined_steps (scan_id, feature_file, line_number, text, normalized) VALUES (?, ?, ?, ?, ?)`,
			scanID, u.FeatureFile, u.Line, u.Text, u.Normalized,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting undefined step %s:%d: %w", u.FeatureFile, u.Line, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	ui.SnapshotLine(w, dbPath, scanID, len(defs), len(missing))
	return nil
}
