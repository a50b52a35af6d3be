package repository

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
// Exercises are create-only.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	// FindLog returns the exercises stored under username whose date lies in
	// window, most recent first, truncated to window.Limit when positive.
	FindLog(ctx context.Context, username string, window domain.LogWindow) ([]domain.Exercise, error)
	// Count returns how many exercises stored under username fall in window,
	// ignoring window.Limit.
	Count(ctx context.Context, username string, window domain.LogWindow) (int64, error)
}
