package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SubmissionRateLimiter limita cuantas evaluaciones puede enviar un usuario.
// Ambas implementaciones usan ventana deslizante: se permiten como maximo max
// envios cuyo instante cae en (ahora-window, ahora].
type SubmissionRateLimiter interface {
	Allow(key string) bool
}

type memoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	now    func() time.Time
	hits   map[string][]time.Time
}

// NewMemoryRateLimiter guarda los instantes de envio por clave en memoria.
func NewMemoryRateLimiter(window time.Duration, max int) SubmissionRateLimiter {
	return newMemoryRateLimiter(window, max)
}

func newMemoryRateLimiter(window time.Duration, max int) *memoryRateLimiter {
	window, max = normalizeLimits(window, max)
	return &memoryRateLimiter{
		window: window,
		max:    max,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)

	hits := l.hits[key]
	if len(hits) >= l.max {
		return false
	}
	l.hits[key] = append(hits, now)
	return true
}

// pruneLocked descarta instantes fuera de la ventana y borra claves vacias.
func (l *memoryRateLimiter) pruneLocked(now time.Time) {
	cutoff := now.Add(-l.window)
	for key, hits := range l.hits {
		i := 0
		for i < len(hits) && !hits[i].After(cutoff) {
			i++
		}
		if i == len(hits) {
			delete(l.hits, key)
			continue
		}
		if i > 0 {
			l.hits[key] = append(hits[:0], hits[i:]...)
		}
	}
}

// redisSlidingWindowScript mantiene un sorted set por clave con score en ms.
// Devuelve 1 si el envio entra en la ventana y 0 si se rechaza.
const redisSlidingWindowScript = `
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local max = tonumber(ARGV[3])
redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", now - window)
if redis.call("ZCARD", KEYS[1]) >= max then
  redis.call("PEXPIRE", KEYS[1], window)
  return 0
end
redis.call("ZADD", KEYS[1], now, ARGV[4])
redis.call("PEXPIRE", KEYS[1], window)
return 1
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
	now    func() time.Time
}

// NewRedisRateLimiter comparte la ventana entre instancias del API.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) SubmissionRateLimiter {
	if client == nil {
		return nil
	}
	return newRedisRateLimiter(client, window, max)
}

func newRedisRateLimiter(client redisEvaler, window time.Duration, max int) *redisRateLimiter {
	window, max = normalizeLimits(window, max)
	return &redisRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "prakriti:rl:",
		now:    time.Now,
	}
}

// Allow falla abierto: si Redis no responde la evaluacion sigue adelante.
func (l *redisRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	allowed, err := l.client.Eval(ctx, redisSlidingWindowScript, []string{l.prefix + key},
		l.now().UnixMilli(),
		l.window.Milliseconds(),
		l.max,
		uuid.NewString(),
	).Int()
	if err != nil {
		return true
	}
	return allowed == 1
}

func normalizeLimits(window time.Duration, max int) (time.Duration, int) {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return window, max
}
