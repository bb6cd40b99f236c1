package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/belenfg/restaurant-chatbot/config"
	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
	fileRepo "github.com/belenfg/restaurant-chatbot/internal/reservation/repository/file"
	redisRepo "github.com/belenfg/restaurant-chatbot/internal/reservation/repository/redis"
	sqlRepo "github.com/belenfg/restaurant-chatbot/internal/reservation/repository/sql"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

// OpenRepository opens the reservation store named by cfg.Storage.Driver.
func OpenRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, error) {
	switch cfg.Storage.Driver {
	case "", "file":
		return fileRepo.New(ctx, cfg.Storage.DataDir, l)
	case "sqlite":
		dsn := cfg.Storage.DSN
		if dsn == "" {
			dsn = filepath.Join(cfg.Storage.DataDir, "reservations.db")
		}
		return sqlRepo.New(ctx, "sqlite", dsn, l)
	case "postgres":
		return sqlRepo.New(ctx, "postgres", cfg.Storage.DSN, l)
	case "redis":
		return redisRepo.New(ctx, redisRepo.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}, l)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
