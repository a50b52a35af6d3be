package cache

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultKeyPrefix = "et:"

// RedisUserCache stores users as JSON strings under <prefix>user:<hex id>.
type RedisUserCache struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

// NewRedisUserCache creates a RedisUserCache. A zero ttl stores entries
// without expiry.
func NewRedisUserCache(client redis.Cmdable, keyPrefix string, ttl time.Duration) *RedisUserCache {
	if client == nil {
		panic("redis client cannot be nil for RedisUserCache")
	}
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisUserCache{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (c *RedisUserCache) userKey(id primitive.ObjectID) string {
	return fmt.Sprintf("%suser:%s", c.keyPrefix, id.Hex())
}

// cachedUser is the stored form; domain.User hides CreatedAt from JSON.
type cachedUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *RedisUserCache) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("redis: get user %s: %w", id.Hex(), err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("redis: decode user %s: %w", id.Hex(), err)
	}
	oid, err := primitive.ObjectIDFromHex(cu.ID)
	if err != nil {
		return nil, fmt.Errorf("redis: decode user %s: %w", id.Hex(), err)
	}
	return &domain.User{ID: oid, Username: cu.Username, CreatedAt: cu.CreatedAt}, nil
}

func (c *RedisUserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedUser{ID: user.ID.Hex(), Username: user.Username, CreatedAt: user.CreatedAt})
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.userKey(user.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set user %s: %w", user.ID.Hex(), err)
	}
	return nil
}
