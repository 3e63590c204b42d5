// ABOUTME: CLI command for charting blood pressure over time.
// ABOUTME: Draws systolic and diastolic series in the terminal.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/bplog/internal/apperror"
	"github.com/harperreed/bplog/internal/plot"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Chart measurements over time",
	Long: `Draw a terminal chart of systolic and diastolic readings in
ascending (date, time) order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := repo.ListAll()
		if err != nil {
			return fmt.Errorf("failed to list measurements: %w", err)
		}

		chart, err := plot.Chart(records)
		if err != nil {
			if errors.Is(err, apperror.ErrNoRecords) {
				fmt.Println("No data to plot")
				return nil
			}
			return fmt.Errorf("failed to plot measurements: %w", err)
		}

		fmt.Println(chart)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
}
