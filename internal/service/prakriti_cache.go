package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"prakriti-api/internal/domain"
)

// PrakritiCache guarda el ultimo resultado de prakriti por usuario.
type PrakritiCache interface {
	Get(ctx context.Context, userID string) (domain.PrakritiResult, bool, error)
	Set(ctx context.Context, result domain.PrakritiResult) error
}

type cachedResult struct {
	result    domain.PrakritiResult
	expiresAt time.Time
}

type memoryPrakritiCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]cachedResult
}

func NewMemoryPrakritiCache(ttl time.Duration) PrakritiCache {
	return newMemoryPrakritiCache(ttl)
}

func newMemoryPrakritiCache(ttl time.Duration) *memoryPrakritiCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &memoryPrakritiCache{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]cachedResult),
	}
}

func (c *memoryPrakritiCache) Get(_ context.Context, userID string) (domain.PrakritiResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[userID]
	if !ok {
		return domain.PrakritiResult{}, false, nil
	}
	if c.now().After(item.expiresAt) {
		delete(c.items, userID)
		return domain.PrakritiResult{}, false, nil
	}
	return item.result, true, nil
}

func (c *memoryPrakritiCache) Set(_ context.Context, result domain.PrakritiResult) error {
	if strings.TrimSpace(result.UserID) == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	// Barre entradas vencidas de usuarios que no volvieron a leer.
	for userID, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, userID)
		}
	}
	c.items[result.UserID] = cachedResult{
		result:    result,
		expiresAt: now.Add(c.ttl),
	}
	return nil
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisPrakritiCache struct {
	client redisKV
	ttl    time.Duration
	prefix string
}

// NewRedisPrakritiCache serializa el resultado como JSON bajo prakriti:latest:<user>.
func NewRedisPrakritiCache(client *redis.Client, ttl time.Duration) PrakritiCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisPrakritiCache{
		client: client,
		ttl:    ttl,
		prefix: "prakriti:latest:",
	}
}

func (c *redisPrakritiCache) Get(ctx context.Context, userID string) (domain.PrakritiResult, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.PrakritiResult{}, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PrakritiResult{}, false, nil
	}
	if err != nil {
		return domain.PrakritiResult{}, false, err
	}
	var result domain.PrakritiResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.PrakritiResult{}, false, err
	}
	return result, true, nil
}

func (c *redisPrakritiCache) Set(ctx context.Context, result domain.PrakritiResult) error {
	if strings.TrimSpace(result.UserID) == "" {
		return nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+result.UserID, payload, c.ttl).Err()
}
