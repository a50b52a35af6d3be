// Package cache holds the user lookup cache. Users are never updated or
// deleted, so a cached entry cannot go stale; the TTL only bounds memory.
package cache

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrMiss is returned by Get when the user is not cached.
var ErrMiss = errors.New("cache miss")

// UserCache caches users by ID.
type UserCache interface {
	Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
}

// NopUserCache never stores anything.
type NopUserCache struct{}

func (NopUserCache) Get(context.Context, primitive.ObjectID) (*domain.User, error) {
	return nil, ErrMiss
}

func (NopUserCache) Set(context.Context, *domain.User) error {
	return nil
}
