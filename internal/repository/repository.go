package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/exercise-tracker/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user documents
// and their embedded exercise logs.
type UserRepository interface {
	// Create inserts a new user with an empty log.
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	// List returns every user, id and username only (log omitted).
	List(ctx context.Context) ([]domain.User, error)
	// GetByID returns the user including the full log, or ErrNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// AppendEntry pushes one entry onto the user's log as a single
	// atomic update. Returns ErrNotFound if no user matches.
	AppendEntry(ctx context.Context, userID primitive.ObjectID, entry *domain.Entry) error
}
