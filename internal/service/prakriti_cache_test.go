package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"prakriti-api/internal/domain"
)

type fakeRedisKV struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newFakeRedisKV() *fakeRedisKV {
	return &fakeRedisKV{data: make(map[string][]byte)}
}

func (f *fakeRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
		return cmd
	}
	val, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(val))
	return cmd
}

func (f *fakeRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
		return cmd
	}
	f.data[key] = value.([]byte)
	f.lastTTL = expiration
	cmd.SetVal("OK")
	return cmd
}

func sampleResult(userID string) domain.PrakritiResult {
	return domain.PrakritiResult{
		ID:      "r1",
		UserID:  userID,
		Answers: map[string]string{"mind": "calm"},
		ClassificationResult: domain.ClassificationResult{
			PrimaryDosha:    domain.DoshaKapha,
			SecondaryDosha:  domain.DoshaVata,
			Scores:          domain.DoshaScore{Kapha: 100},
			Characteristics: []string{"Calm and stable nature"},
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRedisPrakritiCacheRoundTrip(t *testing.T) {
	kv := newFakeRedisKV()
	c := &redisPrakritiCache{client: kv, ttl: 30 * time.Minute, prefix: "prakriti:latest:"}
	ctx := context.Background()

	if _, found, err := c.Get(ctx, "u1"); err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	if err := c.Set(ctx, sampleResult("u1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := kv.data["prakriti:latest:u1"]; !ok {
		t.Fatalf("expected prefixed key, got %v", kv.data)
	}
	if kv.lastTTL != 30*time.Minute {
		t.Fatalf("expected ttl to be forwarded, got %v", kv.lastTTL)
	}

	got, found, err := c.Get(ctx, "u1")
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if got.PrimaryDosha != domain.DoshaKapha || got.Scores.Kapha != 100 || got.Answers["mind"] != "calm" {
		t.Fatalf("unexpected cached result %+v", got)
	}
}

func TestRedisPrakritiCacheErrors(t *testing.T) {
	kv := newFakeRedisKV()
	kv.getErr = errors.New("redis down")
	c := &redisPrakritiCache{client: kv, ttl: time.Minute, prefix: "prakriti:latest:"}
	if _, _, err := c.Get(context.Background(), "u1"); err == nil {
		t.Fatalf("expected error to surface")
	}

	kv = newFakeRedisKV()
	kv.data["prakriti:latest:u1"] = []byte("{not json")
	c.client = kv
	if _, _, err := c.Get(context.Background(), "u1"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestMemoryPrakritiCacheExpires(t *testing.T) {
	c := NewMemoryPrakritiCache(20 * time.Millisecond)
	ctx := context.Background()
	if err := c.Set(ctx, sampleResult("u1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found, _ := c.Get(ctx, "u1"); !found {
		t.Fatalf("expected hit before ttl")
	}
	time.Sleep(40 * time.Millisecond)
	if _, found, _ := c.Get(ctx, "u1"); found {
		t.Fatalf("expected miss after ttl")
	}
}

func TestMemoryPrakritiCacheSetSweepsExpired(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := newMemoryPrakritiCache(time.Minute)
	c.now = clock.now
	ctx := context.Background()

	for _, userID := range []string{"u1", "u2", "u3"} {
		if err := c.Set(ctx, sampleResult(userID)); err != nil {
			t.Fatalf("set %s: %v", userID, err)
		}
	}
	clock.advance(2 * time.Minute)
	if err := c.Set(ctx, sampleResult("u4")); err != nil {
		t.Fatalf("set u4: %v", err)
	}

	if len(c.items) != 1 {
		t.Fatalf("expected expired users to be swept, got %d entries", len(c.items))
	}
	if _, found, _ := c.Get(ctx, "u4"); !found {
		t.Fatalf("expected fresh entry to remain")
	}
}
