// ABOUTME: Measurement model for blood pressure readings.
// ABOUTME: Defines date/time string formats and structural validation.
package models

import (
	"fmt"
	"time"
)

// Date and time layouts used everywhere a Measurement is stored or shown.
// Dates sort lexically in chronological order; times are 24-hour.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Measurement represents a single blood pressure reading.
// There is no update path: correcting a reading means delete and re-insert.
type Measurement struct {
	ID        int64
	Date      string // YYYY-MM-DD
	Time      string // HH:MM, 24-hour
	Systolic  int    // mmHg
	Diastolic int    // mmHg
	Comment   string // empty when absent
}

// NewMeasurement creates a Measurement stamped with the current date and time.
// The ID is assigned by the store on insert.
func NewMeasurement(systolic, diastolic int) *Measurement {
	now := time.Now()
	return &Measurement{
		Date:      now.Format(DateLayout),
		Time:      now.Format(TimeLayout),
		Systolic:  systolic,
		Diastolic: diastolic,
	}
}

// WithDate sets a custom measurement date.
func (m *Measurement) WithDate(date string) *Measurement {
	m.Date = date
	return m
}

// WithTime sets a custom measurement time of day.
func (m *Measurement) WithTime(tod string) *Measurement {
	m.Time = tod
	return m
}

// WithComment sets a comment on the measurement.
func (m *Measurement) WithComment(comment string) *Measurement {
	m.Comment = comment
	return m
}

// BloodPressure returns the reading in the conventional "sys:dia" form.
func (m *Measurement) BloodPressure() string {
	return fmt.Sprintf("%d:%d", m.Systolic, m.Diastolic)
}

// Validate reports whether the measurement is structurally sound:
// both timestamp fields present and both pressure values positive.
func (m *Measurement) Validate() error {
	if m.Date == "" {
		return fmt.Errorf("measurement has no date")
	}
	if m.Time == "" {
		return fmt.Errorf("measurement has no time")
	}
	if m.Systolic <= 0 || m.Diastolic <= 0 {
		return fmt.Errorf("measurement has non-positive pressure %d:%d", m.Systolic, m.Diastolic)
	}
	return nil
}
