package middleware

import (
	"context"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// TooFastPath is where throttled callers are redirected instead of
// receiving a normal response.
const TooFastPath = "/too-fast"

// LoginLimiter enforces a fixed window per client IP. With a Redis
// client configured the window is shared across instances; otherwise
// it falls back to in-process buckets.
type LoginLimiter struct {
	limit  int
	window time.Duration
	rdb    *redis.Client

	mu      sync.Mutex
	clients map[string]*bucket
}

type bucket struct {
	count     int
	windowEnd time.Time
}

func NewLoginLimiter(limit int, window time.Duration, rdb *redis.Client) *LoginLimiter {
	if limit <= 0 {
		limit = 5
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{
		limit:   limit,
		window:  window,
		rdb:     rdb,
		clients: make(map[string]*bucket),
	}
}

func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)

		if !l.allow(c.Request.Context(), ip) {
			c.Redirect(http.StatusSeeOther, TooFastPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (l *LoginLimiter) allow(ctx context.Context, ip string) bool {
	if l.rdb != nil {
		return l.allowRedis(ctx, ip)
	}
	return l.allowMemory(ip)
}

func (l *LoginLimiter) allowRedis(ctx context.Context, ip string) bool {
	key := "ratelimit:login:" + ip

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		// Fail open: an unreachable limiter backend must not lock
		// everyone out of login.
		log.Println("rate limiter backend error:", err)
		return true
	}
	if count == 1 {
		l.rdb.Expire(ctx, key, l.window)
	}

	return count <= int64(l.limit)
}

func (l *LoginLimiter) allowMemory(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.clients[ip]
	if !ok || now.After(b.windowEnd) {
		l.clients[ip] = &bucket{count: 1, windowEnd: now.Add(l.window)}
		return true
	}

	if b.count >= l.limit {
		return false
	}

	b.count++
	return true
}

func clientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		return "127.0.0.1"
	}

	if host, _, err := net.SplitHostPort(ip); err == nil && host != "" {
		return host
	}
	return ip
}
