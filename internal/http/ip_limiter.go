package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	ipLimiterMaxEntries = 10000
	ipLimiterIdleTTL    = 10 * time.Minute
)

type ipVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter mantiene un token bucket por IP de cliente.
type ipLimiter struct {
	mu         sync.Mutex
	visitors   map[string]*ipVisitor
	limit      rate.Limit
	burst      int
	maxEntries int
}

func newIPLimiter(perMinute, burst int) *ipLimiter {
	if burst <= 0 {
		burst = perMinute
	}
	return &ipLimiter{
		visitors:   make(map[string]*ipVisitor),
		limit:      rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		burst:      burst,
		maxEntries: ipLimiterMaxEntries,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.visitors[ip]
	if !ok {
		if len(l.visitors) >= l.maxEntries {
			l.evictIdle(now)
		}
		if len(l.visitors) >= l.maxEntries {
			l.evictOldest()
		}
		v = &ipVisitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (l *ipLimiter) evictIdle(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > ipLimiterIdleTTL {
			delete(l.visitors, ip)
		}
	}
}

// evictOldest libera un lugar cuando ningun visitante esta inactivo.
func (l *ipLimiter) evictOldest() {
	var (
		oldestIP string
		oldest   time.Time
	)
	for ip, v := range l.visitors {
		if oldestIP == "" || v.lastSeen.Before(oldest) {
			oldestIP, oldest = ip, v.lastSeen
		}
	}
	delete(l.visitors, oldestIP)
}

// IPRateLimitMiddleware limita requests por IP; perMinute <= 0 lo desactiva.
func IPRateLimitMiddleware(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newIPLimiter(perMinute, burst)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
