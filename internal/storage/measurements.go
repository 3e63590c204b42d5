// ABOUTME: Measurement CRUD operations for SQLite storage.
// ABOUTME: Implements insert, date-scoped lookup, full listing, and deletes.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/harperreed/bplog/internal/models"
)

const measurementColumns = "id, date, time, systolic, diastolic, comment"

// Insert appends a new measurement and assigns its ID from the store.
// No uniqueness is enforced; duplicate timestamps are accepted silently.
func (d *DB) Insert(m *models.Measurement) error {
	res, err := d.builder.
		Insert("measurements").
		Columns("date", "time", "systolic", "diastolic", "comment").
		Values(m.Date, m.Time, m.Systolic, m.Diastolic, m.Comment).
		RunWith(d.db).
		Exec()
	if err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}
	m.ID = id

	d.log.WithFields(logrus.Fields{
		"id":   m.ID,
		"date": m.Date,
		"time": m.Time,
	}).Debug("measurement inserted")
	return nil
}

// FindByDate returns all measurements on an exact date, ordered by time
// ascending. An empty slice means no matches; it is not an error.
func (d *DB) FindByDate(date string) ([]models.Measurement, error) {
	rows, err := d.builder.
		Select("id", "date", "time", "systolic", "diastolic", "comment").
		From("measurements").
		Where(squirrel.Eq{"date": date}).
		OrderBy("time ASC").
		RunWith(d.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("find by date: %w", err)
	}
	defer rows.Close()

	return scanMeasurements(rows)
}

// ListAll returns every measurement ordered by (date, time) ascending.
func (d *DB) ListAll() ([]models.Measurement, error) {
	rows, err := d.builder.
		Select("id", "date", "time", "systolic", "diastolic", "comment").
		From("measurements").
		OrderBy("date ASC", "time ASC").
		RunWith(d.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	return scanMeasurements(rows)
}

// DeleteByID removes the measurement with the given id. A missing id is
// a no-op, not an error.
func (d *DB) DeleteByID(id int64) error {
	_, err := d.builder.
		Delete("measurements").
		Where(squirrel.Eq{"id": id}).
		RunWith(d.db).
		Exec()
	if err != nil {
		return fmt.Errorf("delete measurement %d: %w", id, err)
	}

	d.log.WithField("id", id).Debug("measurement deleted")
	return nil
}

// DeleteMostRecent removes the measurement with the highest id, which is
// the most recently inserted reading (not necessarily the chronologically
// latest one). It returns the deleted record for caller reporting, or
// (nil, nil) when the table is empty. Read and delete happen in a single
// transaction so the deletion is durable when the call returns.
func (d *DB) DeleteMostRecent() (*models.Measurement, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("delete most recent: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(fmt.Sprintf(
		"SELECT %s FROM measurements WHERE id = (SELECT MAX(id) FROM measurements)",
		measurementColumns,
	))
	m, err := scanMeasurement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete most recent: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM measurements WHERE id = ?", m.ID); err != nil {
		return nil, fmt.Errorf("delete most recent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("delete most recent: %w", err)
	}

	d.log.WithField("id", m.ID).Debug("most recent measurement deleted")
	return m, nil
}

// scanMeasurement scans a single row into a Measurement.
func scanMeasurement(row *sql.Row) (*models.Measurement, error) {
	var m models.Measurement
	var comment sql.NullString

	err := row.Scan(&m.ID, &m.Date, &m.Time, &m.Systolic, &m.Diastolic, &comment)
	if err != nil {
		return nil, err
	}
	m.Comment = comment.String

	return &m, nil
}

// scanMeasurements scans multiple rows into a slice of Measurements.
func scanMeasurements(rows *sql.Rows) ([]models.Measurement, error) {
	var measurements []models.Measurement

	for rows.Next() {
		var m models.Measurement
		var comment sql.NullString

		if err := rows.Scan(&m.ID, &m.Date, &m.Time, &m.Systolic, &m.Diastolic, &comment); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		m.Comment = comment.String

		measurements = append(measurements, m)
	}

	return measurements, rows.Err()
}
