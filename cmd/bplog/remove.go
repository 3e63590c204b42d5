// ABOUTME: CLI command for removing measurements.
// ABOUTME: Prompts for a time of day when a date is ambiguous.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bplog/internal/apperror"
	"github.com/harperreed/bplog/internal/models"
)

var (
	removeDate string
	removeTime string
	removeLast bool
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove a measurement",
	Long: `Remove a measurement by date, or the most recently added one.

When several measurements share the date, they are listed and you are
asked for the time of day of the one to remove. The time must match the
stored value exactly (e.g. 09:05, not 9:05).

EXAMPLES:

  bplog remove -d 2024-12-14            # Remove by date, prompt if ambiguous
  bplog remove -d 2024-12-14 -t 07:30   # Remove a specific reading
  bplog remove --last                   # Remove the last reading added

CAUTION:

  This permanently deletes the measurement. There is no undo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if removeLast {
			return runRemoveLast()
		}
		return runRemoveByDate(cmd)
	},
}

func runRemoveLast() error {
	m, err := repo.DeleteMostRecent()
	if err != nil {
		return fmt.Errorf("failed to remove last measurement: %w", err)
	}
	if m == nil {
		fmt.Println("No measurements recorded.")
		return nil
	}

	reportRemoved(m)
	return nil
}

func runRemoveByDate(cmd *cobra.Command) error {
	date := removeDate
	if date == "" {
		var err error
		date, err = prompt(cmd, "Enter date of measurement to remove (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
	}

	// A preset time skips the enumeration round-trip entirely.
	if removeTime != "" {
		return removeAt(date, removeTime)
	}

	result, err := repo.RemoveByDate(date)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			fmt.Println(err.Error())
			return nil
		}
		return fmt.Errorf("failed to remove measurement: %w", err)
	}

	if result.Removed != nil {
		reportRemoved(result.Removed)
		return nil
	}

	fmt.Printf("%d measurements found for %s:\n", len(result.Candidates), date)
	for i := range result.Candidates {
		c := &result.Candidates[i]
		fmt.Printf("%s %s - %s\n", c.Date, c.Time, c.BloodPressure())
	}

	tod, err := prompt(cmd, "Enter time of the measurement to remove (HH:MM): ")
	if err != nil {
		return err
	}
	return removeAt(date, tod)
}

// removeAt deletes the measurement on date whose stored time matches tod
// exactly. A non-matching time is a reported outcome, not a failure.
func removeAt(date, tod string) error {
	m, err := repo.RemoveByDateAndTime(date, tod)
	if err != nil {
		if errors.Is(err, apperror.ErrNoMatch) || errors.Is(err, apperror.ErrNotFound) {
			fmt.Println(err.Error())
			return nil
		}
		return fmt.Errorf("failed to remove measurement: %w", err)
	}

	reportRemoved(m)
	return nil
}

func reportRemoved(m *models.Measurement) {
	color.Yellow("✗ Removed measurement")
	fmt.Printf("  %s (%s %s)\n",
		m.BloodPressure(),
		color.New(color.Faint).Sprint(m.Date),
		color.New(color.Faint).Sprint(m.Time))
}

// prompt reads one line from the command's input stream.
func prompt(cmd *cobra.Command, question string) (string, error) {
	fmt.Print(question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	removeCmd.Flags().StringVarP(&removeDate, "date", "d", "", "date of the measurement to remove (YYYY-MM-DD)")
	removeCmd.Flags().StringVarP(&removeTime, "time", "t", "", "time of the measurement to remove (HH:MM)")
	removeCmd.Flags().BoolVar(&removeLast, "last", false, "remove the most recently added measurement")
	rootCmd.AddCommand(removeCmd)
}
