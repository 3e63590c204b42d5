// ABOUTME: Repository interface for the measurement store.
// ABOUTME: Defines the query/mutation contract consumed by the CLI.
package storage

import (
	"io"

	"github.com/harperreed/bplog/internal/models"
)

// Repository defines the storage interface for blood pressure data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Mutations
	Insert(m *models.Measurement) error
	DeleteByID(id int64) error
	DeleteMostRecent() (*models.Measurement, error)
	RemoveByDate(date string) (*RemovalResult, error)
	RemoveByDateAndTime(date, tod string) (*models.Measurement, error)

	// Queries
	FindByDate(date string) ([]models.Measurement, error)
	ListAll() ([]models.Measurement, error)

	// Export
	ExportCSV(w io.Writer) error

	// Lifecycle
	Close() error
}

var _ Repository = (*DB)(nil)
