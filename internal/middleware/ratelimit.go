package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/candlepulse/internal/domain/dto"
)

// client counts the requests of one IP inside its current fixed window.
type client struct {
	windowStart time.Time
	count       int
}

// Process-wide limiter state; one instance per process.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 60
	lastSweep       time.Time
	nowFunc         = time.Now
	rateLimiterLock sync.Mutex
)

// ConfigureRateLimit sets the per-IP budget. Non-positive values keep the current setting.
func ConfigureRateLimit(requests int, per time.Duration) {
	rateLimiterLock.Lock()
	defer rateLimiterLock.Unlock()
	if requests > 0 {
		limit = requests
	}
	if per > 0 {
		window = per
	}
}

// RateLimiter allows up to limit requests per fixed window for each client IP
// and answers 429 Too Many Requests beyond that. A client's window starts with
// its first request and is not extended by later ones.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rateLimiterLock.Lock()
		now := nowFunc()
		sweepLocked(now)

		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) >= window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		rateLimiterLock.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}

// sweepLocked drops clients whose window has expired, at most once per window.
// Callers hold rateLimiterLock.
func sweepLocked(now time.Time) {
	if now.Sub(lastSweep) < window {
		return
	}
	for ip, cl := range clients {
		if now.Sub(cl.windowStart) >= window {
			delete(clients, ip)
		}
	}
	lastSweep = now
}

// resetRateLimiter clears tracked clients.
func resetRateLimiter() {
	rateLimiterLock.Lock()
	defer rateLimiterLock.Unlock()
	clients = make(map[string]*client)
	lastSweep = time.Time{}
}
