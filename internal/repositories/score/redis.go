package score

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/blrd/internal/models"
)

// maxAppendRetries bounds optimistic-lock retries in AppendScore
const maxAppendRetries = 5

// RedisConfig holds configuration for the Redis score repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces the keys, DefaultKeyPrefix when empty
	KeyPrefix string

	// Logger is optional, logging is disabled when nil
	Logger *zerolog.Logger
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	scoresKey     string
	lastPlayedKey string
	logger        zerolog.Logger
}

// NewRedis creates a new Redis-backed score repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	scoresKey, lastPlayedKey := keys(cfg.KeyPrefix)
	return &redisRepository{
		client:        cfg.RedisClient,
		scoresKey:     scoresKey,
		lastPlayedKey: lastPlayedKey,
		logger:        storeLogger(cfg.Logger, "redis"),
	}, nil
}

// LoadHistory reads the score list from Redis
func (r *redisRepository) LoadHistory(ctx context.Context, input *LoadHistoryInput) (*LoadHistoryOutput, error) {
	raw, err := r.client.Get(ctx, r.scoresKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadHistoryOutput{History: models.ScoreHistory{}}, nil
		}
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	history, err := decodeHistory(raw)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", r.scoresKey).Msg("discarding corrupt score history")
		return &LoadHistoryOutput{History: models.ScoreHistory{}, Recovered: true}, nil
	}

	return &LoadHistoryOutput{History: history}, nil
}

// AppendScore appends under WATCH so a concurrent writer cannot lose a score
func (r *redisRepository) AppendScore(ctx context.Context, input *AppendScoreInput) (*AppendScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Score < 0 {
		return nil, ErrNegative
	}

	var history models.ScoreHistory
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, r.scoresKey).Result()
		if err != nil && err != redis.Nil {
			return err
		}

		history, err = decodeHistory(raw)
		if err != nil {
			r.logger.Warn().Err(err).Str("key", r.scoresKey).Msg("overwriting corrupt score history")
			history = models.ScoreHistory{}
		}
		history = append(history, input.Score)

		encoded, err := encodeHistory(history)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.scoresKey, encoded, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxAppendRetries; i++ {
		err := r.client.Watch(ctx, txf, r.scoresKey)
		if err == nil {
			return &AppendScoreOutput{History: history}, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return nil, fmt.Errorf("failed to append score: %w", err)
	}

	return nil, fmt.Errorf("failed to append score: %w", redis.TxFailedErr)
}

// HasPlayedToday compares the stored timestamp with the start of today
func (r *redisRepository) HasPlayedToday(ctx context.Context, input *HasPlayedTodayInput) (bool, error) {
	if input == nil {
		return false, ErrNilInput
	}

	raw, err := r.client.Get(ctx, r.lastPlayedKey).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get last played timestamp: %w", err)
	}

	last, err := decodeTimestamp(raw)
	if err != nil {
		return false, err
	}

	return playedToday(last, input.Now)
}

// RecordPlayedToday stores the timestamp as epoch milliseconds
func (r *redisRepository) RecordPlayedToday(ctx context.Context, input *RecordPlayedTodayInput) error {
	if input == nil {
		return ErrNilInput
	}

	if err := r.client.Set(ctx, r.lastPlayedKey, encodeTimestamp(input.Now), 0).Err(); err != nil {
		return fmt.Errorf("failed to set last played timestamp: %w", err)
	}
	return nil
}
