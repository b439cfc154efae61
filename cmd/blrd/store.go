package main

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/blrd/internal/repositories/score"
)

// openStore returns the configured score repository and a func releasing it
func openStore(cfg *Config, logger *zerolog.Logger) (score.Repository, func(), error) {
	switch cfg.Store {
	case storeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo, err := score.NewRedis(&score.RedisConfig{
			RedisClient: client,
			KeyPrefix:   cfg.KeyPrefix,
			Logger:      logger,
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis score repository: %w", err)
		}
		return repo, func() { _ = client.Close() }, nil

	case storeSQLite:
		repo, err := score.NewSQLite(&score.SQLiteConfig{
			Path:      cfg.DBPath,
			KeyPrefix: cfg.KeyPrefix,
			Logger:    logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create sqlite score repository: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}
