// ABOUTME: CLI command for adding blood pressure measurements.
// ABOUTME: Parses the SYS:DIA pair and normalizes date/time inputs.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bplog/internal/models"
)

var (
	addDate    string
	addTime    string
	addComment string
)

var addCmd = &cobra.Command{
	Use:     "add <SYS:DIA>",
	Aliases: []string{"a"},
	Short:   "Add a blood pressure measurement",
	Long: `Add a blood pressure measurement, systolic and diastolic separated
by a colon. Date and time default to now.

Examples:
  bplog add 120:80
  bplog add 135:85 -c "after coffee"
  bplog add 118:76 -d 2024-12-14 -t 07:30
  bplog add 118:76 -d 14,12,2024`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		systolic, diastolic, err := parseBloodPressure(args[0])
		if err != nil {
			return err
		}

		m := models.NewMeasurement(systolic, diastolic)

		if addDate != "" {
			date, err := parseDate(addDate)
			if err != nil {
				return err
			}
			m.WithDate(date)
		}
		if addTime != "" {
			tod, err := parseTimeOfDay(addTime)
			if err != nil {
				return err
			}
			m.WithTime(tod)
		}
		if addComment != "" {
			m.WithComment(addComment)
		}

		if err := repo.Insert(m); err != nil {
			return fmt.Errorf("failed to add measurement: %w", err)
		}

		color.Green("✓ Added blood pressure")
		fmt.Printf("  %s (%s %s)\n",
			m.BloodPressure(),
			color.New(color.Faint).Sprint(m.Date),
			color.New(color.Faint).Sprint(m.Time))

		return nil
	},
}

// parseBloodPressure splits a "SYS:DIA" pair into its integer halves.
func parseBloodPressure(s string) (int, int, error) {
	sysStr, diaStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid measurement %q: expected SYS:DIA (e.g. 120:80)", s)
	}
	systolic, err := strconv.Atoi(sysStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid systolic value: %s", sysStr)
	}
	diastolic, err := strconv.Atoi(diaStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid diastolic value: %s", diaStr)
	}
	if systolic <= 0 || diastolic <= 0 {
		return 0, 0, fmt.Errorf("blood pressure values must be positive: %s", s)
	}
	return systolic, diastolic, nil
}

// parseDate accepts YYYY-MM-DD or DD,MM,YYYY and normalizes to the
// stored YYYY-MM-DD form.
func parseDate(s string) (string, error) {
	layouts := []string{models.DateLayout, "02,01,2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(models.DateLayout), nil
		}
	}
	return "", fmt.Errorf("invalid date %q: use YYYY-MM-DD or DD,MM,YYYY", s)
}

// parseTimeOfDay normalizes a 24-hour HH:MM value.
func parseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(models.TimeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: use HH:MM (24-hour)", s)
	}
	return t.Format(models.TimeLayout), nil
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "measurement date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addTime, "time", "t", "", "measurement time (HH:MM, default now)")
	addCmd.Flags().StringVarP(&addComment, "comment", "c", "", "comment for the measurement")
	rootCmd.AddCommand(addCmd)
}
