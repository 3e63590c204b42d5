// ABOUTME: Date-scoped removal with same-day disambiguation.
// ABOUTME: The store enumerates candidates; prompting belongs to the caller.
package storage

import (
	"github.com/harperreed/bplog/internal/apperror"
	"github.com/harperreed/bplog/internal/models"
)

// RemovalResult reports the outcome of a date-scoped removal. Exactly one
// of Removed and Candidates is set: Removed when a single record was
// deleted, Candidates when the caller must supply a disambiguating time.
type RemovalResult struct {
	Removed    *models.Measurement
	Candidates []models.Measurement
}

// RemoveByDate removes the measurement recorded on the given date.
//
// Zero matches returns apperror.ErrNotFound and mutates nothing. Exactly
// one match is deleted directly. Multiple matches are returned as
// Candidates, again with no mutation; the caller obtains a time of day
// from the operator and follows up with RemoveByDateAndTime.
func (d *DB) RemoveByDate(date string) (*RemovalResult, error) {
	matches, err := d.FindByDate(date)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, apperror.NotFound(date)
	case 1:
		if err := d.DeleteByID(matches[0].ID); err != nil {
			return nil, err
		}
		return &RemovalResult{Removed: &matches[0]}, nil
	default:
		return &RemovalResult{Candidates: matches}, nil
	}
}

// RemoveByDateAndTime removes the first measurement on date whose time of
// day is string-equal to tod. The comparison is exact: "9:05" does not
// match "09:05". When nothing matches, apperror.ErrNoMatch is returned
// and nothing is mutated.
func (d *DB) RemoveByDateAndTime(date, tod string) (*models.Measurement, error) {
	matches, err := d.FindByDate(date)
	if err != nil {
		return nil, err
	}

	for i := range matches {
		if matches[i].Time == tod {
			if err := d.DeleteByID(matches[i].ID); err != nil {
				return nil, err
			}
			return &matches[i], nil
		}
	}

	return nil, apperror.NoMatchAtTime(date, tod)
}
