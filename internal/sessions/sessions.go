// Package sessions maps admin session ids to user ids.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSession means the sid is unknown, expired or signed out.
var ErrNoSession = errors.New("no session")

type Store interface {
	Bind(ctx context.Context, sid, userID string) error
	UserID(ctx context.Context, sid string) (string, error)
	Unbind(ctx context.Context, sid string) error
}

// RedisStore keeps sessions in redis with a sliding TTL.
type RedisStore struct {
	c   *redis.Client
	ttl time.Duration
}

func NewRedisStore(addr, pass string, db int, ttl time.Duration) *RedisStore {
	return NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), ttl)
}

func NewRedisStoreWithClient(c *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisStore{c: c, ttl: ttl}
}

func key(sid string) string { return "session:" + sid }

func (s *RedisStore) Bind(ctx context.Context, sid, userID string) error {
	return s.c.Set(ctx, key(sid), userID, s.ttl).Err()
}

func (s *RedisStore) UserID(ctx context.Context, sid string) (string, error) {
	uid, err := s.c.GetEx(ctx, key(sid), s.ttl).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return uid, nil
}

func (s *RedisStore) Unbind(ctx context.Context, sid string) error {
	return s.c.Del(ctx, key(sid)).Err()
}

// Ping checks connectivity at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.c.Ping(ctx).Err()
}

func (s *RedisStore) Close() error { return s.c.Close() }
