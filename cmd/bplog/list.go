// ABOUTME: CLI command for listing blood pressure measurements.
// ABOUTME: Renders a table with a count and average summary.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harperreed/bplog/internal/apperror"
	"github.com/harperreed/bplog/internal/render"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List all measurements",
	Long: `List every measurement in ascending (date, time) order, followed by
the record count and the average reading.

Output is a boxed table on a terminal and tab-delimited text when piped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := repo.ListAll()
		if err != nil {
			return fmt.Errorf("failed to list measurements: %w", err)
		}

		out, err := render.ForWriter(os.Stdout).Render(records)
		if err != nil {
			if errors.Is(err, apperror.ErrNoRecords) {
				fmt.Println("No measurements found.")
				return nil
			}
			return fmt.Errorf("failed to render measurements: %w", err)
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
