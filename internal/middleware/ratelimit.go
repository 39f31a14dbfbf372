package middleware

import (
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kamilaomar/moodtracker/backend/internal/apierror"
	"github.com/kamilaomar/moodtracker/backend/internal/logger"
)

// RateLimiter is a fixed-window request counter per client key
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	rate    int
	window  time.Duration
	now     func() time.Time
}

type window struct {
	count   int
	started time.Time
}

// NewRateLimiter allows rate requests per client in each window
func NewRateLimiter(rate int, per time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*window),
		rate:    rate,
		window:  per,
		now:     time.Now,
	}
}

// allow records a request and reports whether it fits, plus how long until
// the client's window resets.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.evictExpired(now)

	w, ok := rl.clients[key]
	if !ok || now.Sub(w.started) >= rl.window {
		w = &window{started: now}
		rl.clients[key] = w
	}
	w.count++

	return w.count <= rl.rate, rl.window - now.Sub(w.started)
}

// evictExpired drops stale windows once the map grows; callers hold mu.
func (rl *RateLimiter) evictExpired(now time.Time) {
	if len(rl.clients) < 1024 {
		return
	}
	for key, w := range rl.clients {
		if now.Sub(w.started) >= rl.window {
			delete(rl.clients, key)
		}
	}
}

// RateLimit rejects clients that exceed the limiter with a 429 problem
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, reset := rl.allow(ip)
		if ok {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(reset.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}

		logger.Ctx(c.Request.Context()).Warn("rate limit exceeded",
			logger.String("client_ip", ip),
			logger.Int("limit", rl.rate),
			logger.Duration("window", rl.window),
		)
		apierror.WriteProblem(c, apierror.NewRateLimitError(apierror.GetRequestID(c), retryAfter))
	}
}
