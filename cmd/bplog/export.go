// ABOUTME: CLI command for exporting the measurement log to CSV.
// ABOUTME: Fixed header, rows in (date, time) order, file or stdout.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export measurements to CSV",
	Long: `Export every measurement as CSV with the header
date,time,systolic,diastolic,comment.

EXAMPLES:

  bplog export                   # Write bplog_database.csv
  bplog export -o readings.csv   # Write to a named file
  bplog export -o -              # Write to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOutput == "-" {
			return repo.ExportCSV(os.Stdout)
		}

		f, err := os.OpenFile(exportOutput, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()

		if err := repo.ExportCSV(f); err != nil {
			return err
		}

		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "bplog_database.csv", "output file ('-' for stdout)")
	rootCmd.AddCommand(exportCmd)
}
