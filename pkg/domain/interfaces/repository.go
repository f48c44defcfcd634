package interfaces

import "github.com/m-mizutani/goerr/v2"

// Repository defines the interface for data persistence
type Repository interface {
	Property() PropertyRepository
	Inspection() InspectionRepository

	// Close releases any resources held by the backend
	Close() error
}

// ErrNotFound is returned by repositories when a record does not exist.
// Both backends wrap it so callers can match with errors.Is regardless of
// the configured backend.
var ErrNotFound = goerr.New("record not found")
