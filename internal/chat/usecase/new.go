package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

const (
	DefaultSessionTTL      = 30 * time.Minute
	DefaultMaxSessions     = 1000
	DefaultRateLimitPerMin = 30
)

// Options tunes the session cache. Zero values take the defaults; a negative
// RateLimitPerMin disables rate limiting.
type Options struct {
	SessionTTL      time.Duration
	MaxSessions     int
	RateLimitPerMin int
}

// session owns one engine. mu serializes its turns.
type session struct {
	mu        sync.Mutex
	engine    *dialogue.Engine
	limiter   *rate.Limiter
	createdAt time.Time
}

type implUseCase struct {
	// mu makes get-or-create and TTL refresh atomic against EndSession.
	mu       sync.Mutex
	l        log.Logger
	factory  *dialogue.Factory
	sessions *expirable.LRU[string, *session]
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a chat UseCase that hosts one dialogue engine per session.
func New(l log.Logger, factory *dialogue.Factory, opts Options) *implUseCase {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.RateLimitPerMin == 0 {
		opts.RateLimitPerMin = DefaultRateLimitPerMin
	}

	limit, burst := rate.Inf, 0
	if opts.RateLimitPerMin > 0 {
		limit = rate.Limit(float64(opts.RateLimitPerMin) / 60)
		burst = opts.RateLimitPerMin
	}

	return &implUseCase{
		l:        l,
		factory:  factory,
		sessions: expirable.NewLRU[string, *session](opts.MaxSessions, nil, opts.SessionTTL),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}
