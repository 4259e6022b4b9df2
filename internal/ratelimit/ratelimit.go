// Package ratelimit caps how often a client may submit downloads: a
// fixed per-minute window keyed by user id (or IP for anonymous
// calls). Counters live in Redis when an address is configured, so
// multiple instances share one budget; otherwise in process memory.
package ratelimit

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const window = time.Minute

// Limiter is a fixed-window counter. The zero limit disables it.
type Limiter struct {
	perMinute int
	redis     *redis.Client

	mu          sync.Mutex
	counts      map[string]int
	windowStart time.Time
}

// New builds a limiter allowing perMinute submits per client each
// minute. A non-empty redisAddr switches the counters to Redis;
// connection problems there degrade to the in-memory fallback rather
// than blocking submissions.
func New(perMinute int, redisAddr string) *Limiter {
	l := &Limiter{
		perMinute: perMinute,
		counts:    make(map[string]int),
	}
	if redisAddr != "" {
		l.redis = redis.NewClient(&redis.Options{
			Addr:         redisAddr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.redis.Ping(ctx).Err(); err != nil {
			log.Printf("Rate limiter could not reach redis at %s, using in-memory counters: %v", redisAddr, err)
		}
	}
	return l
}

// Allow reports whether the client identified by key may submit now,
// along with the remaining budget for this window (best effort).
func (l *Limiter) Allow(key string) (bool, int) {
	if l.perMinute <= 0 {
		return true, 0
	}
	if l.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		bucket := minuteKey(key)
		n, err := l.redis.Incr(ctx, bucket).Result()
		if err != nil {
			return l.allowInMemory(key)
		}
		// First hit owns the expiry; 65s covers clock skew across
		// instances.
		if n == 1 {
			_ = l.redis.Expire(ctx, bucket, 65*time.Second).Err()
		}
		return int(n) <= l.perMinute, l.perMinute - int(n)
	}
	return l.allowInMemory(key)
}

func (l *Limiter) allowInMemory(key string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	if now.Sub(l.windowStart) > window {
		l.counts = make(map[string]int)
		l.windowStart = now
	}
	l.counts[key]++
	n := l.counts[key]
	return n <= l.perMinute, l.perMinute - n
}

func minuteKey(key string) string {
	return fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/60)
}
