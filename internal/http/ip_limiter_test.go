package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestIPRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", IPRateLimitMiddleware(60, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	if hit("10.0.0.1") != http.StatusOK || hit("10.0.0.1") != http.StatusOK {
		t.Fatalf("expected burst of 2 to pass")
	}
	if code := hit("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := hit("10.0.0.2"); code != http.StatusOK {
		t.Fatalf("expected other ip to pass, got %d", code)
	}
}

func TestIPRateLimitMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", IPRateLimitMiddleware(0, 0), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with limiter disabled, got %d", rec.Code)
		}
	}
}

func TestIPLimiterEvictsIdleVisitors(t *testing.T) {
	l := newIPLimiter(60, 1)
	l.allow("a")
	l.visitors["a"].lastSeen = l.visitors["a"].lastSeen.Add(-2 * ipLimiterIdleTTL)
	l.allow("b")
	l.evictIdle(l.visitors["b"].lastSeen)
	if _, ok := l.visitors["a"]; ok {
		t.Fatalf("expected idle visitor to be evicted")
	}
	if _, ok := l.visitors["b"]; !ok {
		t.Fatalf("expected active visitor to remain")
	}
}

func TestIPLimiterStaysWithinCap(t *testing.T) {
	l := newIPLimiter(60, 1)
	l.maxEntries = 3

	for _, ip := range []string{"a", "b", "c"} {
		l.allow(ip)
	}
	l.visitors["a"].lastSeen = l.visitors["b"].lastSeen.Add(-time.Second)
	l.allow("d")

	if len(l.visitors) != 3 {
		t.Fatalf("expected map to stay at cap 3, got %d", len(l.visitors))
	}
	if _, ok := l.visitors["a"]; ok {
		t.Fatalf("expected least recently seen visitor to be evicted")
	}
	if _, ok := l.visitors["d"]; !ok {
		t.Fatalf("expected new visitor to be tracked")
	}
}
