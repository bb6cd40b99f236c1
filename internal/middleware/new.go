package middleware

import (
	"time"

	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

const (
	DefaultRateLimitPerMin = 120
	limiterCacheSize       = 1000
	limiterTTL             = 5 * time.Minute
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. requestsPerMin bounds each client IP; zero
// takes the default and a negative value disables the limit.
func New(l log.Logger, requestsPerMin int) Middleware {
	if requestsPerMin == 0 {
		requestsPerMin = DefaultRateLimitPerMin
	}
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
