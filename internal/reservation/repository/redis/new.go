package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

// WATCH conflicts on a hot slot are retried this many times.
const maxTxAttempts = 5

// Options configures the redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type implRepository struct {
	rdb    *goredis.Client
	prefix string
	l      log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New connects and pings redis.
func New(ctx context.Context, opt Options, l log.Logger) (*implRepository, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opt.Addr, err)
	}

	prefix := opt.Prefix
	if prefix == "" {
		prefix = "restaurant"
	}
	l.Infof(ctx, "redis store ready at %s (prefix=%s)", opt.Addr, prefix)
	return &implRepository{rdb: rdb, prefix: prefix, l: l}, nil
}

func (r *implRepository) Close() error {
	return r.rdb.Close()
}

func (r *implRepository) slotKey(date, clock string) string {
	return fmt.Sprintf("%s:slot:%s:%s", r.prefix, date, clock)
}

func (r *implRepository) dateKey(date string) string {
	return fmt.Sprintf("%s:date:%s", r.prefix, date)
}

func (r *implRepository) customerKey(key string) string {
	return fmt.Sprintf("%s:customer:%s", r.prefix, key)
}
