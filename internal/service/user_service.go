package service

import (
	"alcyxob/exercise-tracker/internal/cache"
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
	cache    cache.UserCache
	logger   logrus.FieldLogger
}

// NewUserService creates a new instance of userService. A nil cache
// disables caching.
func NewUserService(userRepo repository.UserRepository, userCache cache.UserCache, logger logrus.FieldLogger) UserService {
	if userCache == nil {
		userCache = cache.NopUserCache{}
	}
	return &userService{
		userRepo: userRepo,
		cache:    userCache,
		logger:   logger,
	}
}

// CreateUser stores a new user. Duplicate usernames are allowed.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, malformed("username is required")
	}

	user := &domain.User{Username: username}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, storeUnavailable("create user", err)
	}
	user.ID = id

	if err := s.cache.Set(ctx, user); err != nil {
		s.logger.WithError(err).WithField("user_id", id.Hex()).Warn("failed to cache new user")
	}
	return user, nil
}

// GetUser resolves a user by id, consulting the cache first. Cache
// failures only cost a store round trip.
func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if id.IsZero() {
		return nil, malformed("user id is required")
	}

	user, err := s.cache.Get(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.WithError(err).WithField("user_id", id.Hex()).Warn("user cache lookup failed")
	}

	user, err = s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeUnavailable("find user", err)
	}

	if err := s.cache.Set(ctx, user); err != nil {
		s.logger.WithError(err).WithField("user_id", id.Hex()).Warn("failed to cache user")
	}
	return user, nil
}

// ListUsers returns every user.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, storeUnavailable("list users", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
