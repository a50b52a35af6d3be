package service

import (
	"context"
	"time"

	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/events"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

type mockExerciseRepo struct{ mock.Mock }

func (m *mockExerciseRepo) Create(ctx context.Context, ex *domain.Exercise) (primitive.ObjectID, error) {
	args := m.Called(ctx, ex)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockExerciseRepo) FindLog(ctx context.Context, username string, w domain.LogWindow) ([]domain.Exercise, error) {
	args := m.Called(ctx, username, w)
	records, _ := args.Get(0).([]domain.Exercise)
	return records, args.Error(1)
}

func (m *mockExerciseRepo) Count(ctx context.Context, username string, w domain.LogWindow) (int64, error) {
	args := m.Called(ctx, username, w)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserCache struct{ mock.Mock }

func (m *mockUserCache) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserCache) Set(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishExerciseLogged(ctx context.Context, evt events.ExerciseLogged) error {
	return m.Called(ctx, evt).Error(0)
}

func (m *mockPublisher) Close() error { return nil }

type mockFileStorage struct{ mock.Mock }

func (m *mockFileStorage) PutObject(ctx context.Context, key, contentType string, body []byte) error {
	return m.Called(ctx, key, contentType, body).Error(0)
}

func (m *mockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	args := m.Called(ctx, key, expires)
	return args.String(0), args.Error(1)
}
