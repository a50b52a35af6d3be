// Package memory provides in-process repositories. They back the test
// suites and can run the service without MongoDB.
package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is a map-backed repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	users map[primitive.ObjectID]domain.User
}

// NewUserRepository returns an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]domain.User)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Username == "" {
		return primitive.NilObjectID, errors.New("username is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return user.ID, nil
}

func (r *UserRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}

// ExerciseRepository is a slice-backed repository.ExerciseRepository that
// keeps records in insertion order.
type ExerciseRepository struct {
	mu        sync.RWMutex
	exercises []domain.Exercise
}

// NewExerciseRepository returns an empty ExerciseRepository.
func NewExerciseRepository() *ExerciseRepository {
	return &ExerciseRepository{}
}

var _ repository.ExerciseRepository = (*ExerciseRepository)(nil)

func (r *ExerciseRepository) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Username == "" || exercise.Description == "" || exercise.Duration <= 0 || exercise.Date.IsZero() {
		return primitive.NilObjectID, errors.New("exercise username, description, duration and date are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	exercise.Date = domain.CalendarDay(exercise.Date)
	exercise.CreatedAt = time.Now().UTC()
	r.exercises = append(r.exercises, *exercise)
	return exercise.ID, nil
}

func (r *ExerciseRepository) FindLog(_ context.Context, username string, window domain.LogWindow) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.SelectLog(r.exercises, username, window), nil
}

func (r *ExerciseRepository) Count(_ context.Context, username string, window domain.LogWindow) (int64, error) {
	window.Limit = 0
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(domain.SelectLog(r.exercises, username, window))), nil
}
