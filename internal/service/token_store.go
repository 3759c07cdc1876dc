package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore guarda los jti de refresh tokens vigentes y permite
// revocarlos. Con redis el estado se comparte entre instancias; la variante en
// memoria es el fallback de desarrollo.
type RefreshTokenStore interface {
	Store(jti, userID string, ttl time.Duration) error
	Exists(jti string) (bool, error)
	Revoke(jti string) error
}

type memoryTokenStore struct {
	mu    sync.Mutex
	items map[string]time.Time
}

func NewMemoryRefreshTokenStore() RefreshTokenStore {
	return &memoryTokenStore{items: make(map[string]time.Time)}
}

func (s *memoryTokenStore) Store(jti, _ string, ttl time.Duration) error {
	if strings.TrimSpace(jti) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[jti] = time.Now().UTC().Add(ttl)
	return nil
}

func (s *memoryTokenStore) Exists(jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.items[jti]
	if !ok {
		return false, nil
	}
	if time.Now().UTC().After(exp) {
		delete(s.items, jti)
		return false, nil
	}
	return true, nil
}

func (s *memoryTokenStore) Revoke(jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, jti)
	return nil
}

// redisKVClient es el subconjunto de *redis.Client que necesita el store.
// Tener la interfaz permite mockearlo en tests sin un redis real.
type redisKVClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisTokenStore struct {
	client redisKVClient
	prefix string
}

func NewRedisRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	if client == nil {
		return nil
	}
	return &redisTokenStore{
		client: client,
		prefix: "auth:refresh:",
	}
}

func (s *redisTokenStore) Store(jti, userID string, ttl time.Duration) error {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	ctx, cancel := storeContext()
	defer cancel()
	return s.client.Set(ctx, s.prefix+jti, userID, ttl).Err()
}

func (s *redisTokenStore) Exists(jti string) (bool, error) {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return false, nil
	}
	ctx, cancel := storeContext()
	defer cancel()
	n, err := s.client.Exists(ctx, s.prefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(jti string) error {
	jti = strings.TrimSpace(jti)
	if jti == "" {
		return nil
	}
	ctx, cancel := storeContext()
	defer cancel()
	return s.client.Del(ctx, s.prefix+jti).Err()
}

func storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 500*time.Millisecond)
}
