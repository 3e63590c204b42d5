// ABOUTME: Tests for CLI helper functions and the remove flow.
// ABOUTME: Covers SYS:DIA parsing, date/time normalization, and prompting.
package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/harperreed/bplog/internal/models"
	"github.com/harperreed/bplog/internal/storage"
)

func TestParseBloodPressure(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSys int
		wantDia int
		wantErr bool
	}{
		{
			name:    "typical reading",
			input:   "120:80",
			wantSys: 120,
			wantDia: 80,
		},
		{
			name:    "high reading",
			input:   "185:110",
			wantSys: 185,
			wantDia: 110,
		},
		{
			name:    "missing colon",
			input:   "12080",
			wantErr: true,
		},
		{
			name:    "non-numeric systolic",
			input:   "abc:80",
			wantErr: true,
		},
		{
			name:    "non-numeric diastolic",
			input:   "120:xy",
			wantErr: true,
		},
		{
			name:    "zero value",
			input:   "0:80",
			wantErr: true,
		},
		{
			name:    "negative value",
			input:   "120:-5",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, dia, err := parseBloodPressure(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseBloodPressure(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseBloodPressure(%q) unexpected error: %v", tt.input, err)
				return
			}
			if sys != tt.wantSys || dia != tt.wantDia {
				t.Errorf("parseBloodPressure(%q) = %d:%d, want %d:%d",
					tt.input, sys, dia, tt.wantSys, tt.wantDia)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "ISO form",
			input: "2024-12-14",
			want:  "2024-12-14",
		},
		{
			name:  "comma form normalizes",
			input: "14,12,2024",
			want:  "2024-12-14",
		},
		{
			name:    "US form rejected",
			input:   "12/14/2024",
			wantErr: true,
		},
		{
			name:    "random string",
			input:   "not a date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDate(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseDate(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("parseDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := parseTimeOfDay("9:05")
	if err != nil {
		t.Fatalf("parseTimeOfDay unexpected error: %v", err)
	}
	if got != "09:05" {
		t.Errorf("parseTimeOfDay(9:05) = %q, want normalized 09:05", got)
	}

	if _, err := parseTimeOfDay("25:00"); err == nil {
		t.Error("parseTimeOfDay(25:00) expected error, got nil")
	}
	if _, err := parseTimeOfDay("noon"); err == nil {
		t.Error("parseTimeOfDay(noon) expected error, got nil")
	}
}

// setupTestRepo points the package-level repo at a temp store.
func setupTestRepo(t *testing.T) *storage.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "bplog.db")
	db, err := storage.Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
		repo = nil
	})
	repo = db
	return db
}

func mustInsert(t *testing.T, db *storage.DB, date, tod string, sys, dia int) {
	t.Helper()
	m := &models.Measurement{Date: date, Time: tod, Systolic: sys, Diastolic: dia}
	if err := db.Insert(m); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
}

func TestRunRemoveLast(t *testing.T) {
	db := setupTestRepo(t)

	mustInsert(t, db, "2024-06-01", "08:00", 120, 80)
	mustInsert(t, db, "2024-06-01", "09:00", 130, 85)

	if err := runRemoveLast(); err != nil {
		t.Fatalf("runRemoveLast failed: %v", err)
	}

	records, err := db.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(records) != 1 || records[0].Time != "08:00" {
		t.Errorf("expected only the 08:00 record to remain, got %+v", records)
	}

	// Draining the table and removing again is a reported outcome, not an error
	if err := runRemoveLast(); err != nil {
		t.Fatalf("runRemoveLast failed: %v", err)
	}
	if err := runRemoveLast(); err != nil {
		t.Errorf("runRemoveLast on empty store should not error, got %v", err)
	}
}

func TestRunRemoveByDatePromptsForTime(t *testing.T) {
	db := setupTestRepo(t)

	mustInsert(t, db, "2020-03-03", "11:01", 121, 81)
	mustInsert(t, db, "2020-03-03", "11:02", 122, 82)
	mustInsert(t, db, "2020-03-05", "11:03", 123, 83)

	removeDate = "2020-03-03"
	removeTime = ""
	t.Cleanup(func() { removeDate, removeTime = "", "" })

	cmd := &cobra.Command{}
	cmd.SetIn(bytes.NewBufferString("11:01\n"))

	if err := runRemoveByDate(cmd); err != nil {
		t.Fatalf("runRemoveByDate failed: %v", err)
	}

	sameDay, err := db.FindByDate("2020-03-03")
	if err != nil {
		t.Fatalf("FindByDate failed: %v", err)
	}
	if len(sameDay) != 1 || sameDay[0].Time != "11:02" {
		t.Errorf("expected only the 11:02 record on 2020-03-03, got %+v", sameDay)
	}

	otherDay, err := db.FindByDate("2020-03-05")
	if err != nil {
		t.Fatalf("FindByDate failed: %v", err)
	}
	if len(otherDay) != 1 {
		t.Errorf("expected the 2020-03-05 record untouched, got %+v", otherDay)
	}
}

func TestRunRemoveByDateNonMatchingTimeKeepsAll(t *testing.T) {
	db := setupTestRepo(t)

	mustInsert(t, db, "2020-03-03", "11:01", 121, 81)
	mustInsert(t, db, "2020-03-03", "11:02", 122, 82)

	removeDate = "2020-03-03"
	removeTime = "9:05" // stored values are zero-padded; this must not match
	t.Cleanup(func() { removeDate, removeTime = "", "" })

	if err := runRemoveByDate(&cobra.Command{}); err != nil {
		t.Fatalf("runRemoveByDate failed: %v", err)
	}

	records, err := db.FindByDate("2020-03-03")
	if err != nil {
		t.Fatalf("FindByDate failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected no mutation for non-matching time, got %d records", len(records))
	}
}

func TestSkipStoreInit(t *testing.T) {
	show := configShowCmd
	if !skipStoreInit(show) {
		t.Error("config subcommands must not open the database")
	}
	if skipStoreInit(listCmd) {
		t.Error("list requires the database")
	}
}
