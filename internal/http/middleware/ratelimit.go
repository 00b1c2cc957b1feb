package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles public submission endpoints per client IP with a token
// bucket. Limiters live for the process lifetime; the public surface is small
// enough that the map is not evicted.
type RateLimit struct {
	limiters sync.Map
	limit    rate.Limit
	burst    int
}

// NewRateLimit builds a limiter allowing perMinute requests with the given
// burst per IP.
func NewRateLimit(perMinute int, burst int) *RateLimit {
	if perMinute <= 0 {
		perMinute = 5
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &RateLimit{
		limit: rate.Limit(float64(perMinute) / 60.0),
		burst: burst,
	}
}

func (rl *RateLimit) limiter(key string) *rate.Limiter {
	if v, ok := rl.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}
	lim := rate.NewLimiter(rl.limit, rl.burst)
	actual, loaded := rl.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

// Handler is the gin middleware form.
func (rl *RateLimit) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests; please slow down",
			})
			return
		}
		c.Next()
	}
}
