package repository

import (
	"alcyxob/training-periodization/internal/domain"
	"context"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateID  = RepositoryError("duplicate id")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// MacroCycleRepository is the persistence adapter for generated programs.
// Records are written once and never mutated except for the active flag.
type MacroCycleRepository interface {
	// Save stores a new record. It must not partially write on failure.
	Save(ctx context.Context, record *domain.MacroCycleRecord) error
	GetByID(ctx context.Context, id string) (*domain.MacroCycleRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.MacroCycleRecord, error)
	// SetActive marks id as the user's active plan and clears the flag on the rest.
	SetActive(ctx context.Context, userID, id string) error
}
