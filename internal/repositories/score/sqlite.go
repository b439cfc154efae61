package score

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/blrd/internal/models"
)

// migrations are applied in order and recorded in _migrations
var migrations = []struct {
	name string
	sql  string
}{
	{
		name: "0001_kv",
		sql: `CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	},
}

// SQLiteConfig holds configuration for the SQLite score repository
type SQLiteConfig struct {
	// Path is the database file, created with its directory if missing
	Path string

	// KeyPrefix namespaces the keys, DefaultKeyPrefix when empty
	KeyPrefix string

	// Logger is optional, logging is disabled when nil
	Logger *zerolog.Logger
}

// sqliteRepository implements the Repository interface on a local key-value table
type sqliteRepository struct {
	db            *sql.DB
	scoresKey     string
	lastPlayedKey string
	logger        zerolog.Logger
}

// NewSQLite opens (and creates if missing) the database and applies migrations
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Path == "" {
		return nil, errors.New("database path cannot be empty")
	}

	logger := storeLogger(cfg.Logger, "sqlite")

	db, err := openDB(cfg.Path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	scoresKey, lastPlayedKey := keys(cfg.KeyPrefix)
	return &sqliteRepository{
		db:            db,
		scoresKey:     scoresKey,
		lastPlayedKey: lastPlayedKey,
		logger:        logger,
	}, nil
}

func openDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One device, one writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB, logger zerolog.Logger) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		logger.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// Close releases the database handle
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getValue(ctx context.Context, q queryer, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key=?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

const upsertValue = `INSERT INTO kv(key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`

// LoadHistory reads the score list from the kv table
func (r *sqliteRepository) LoadHistory(ctx context.Context, input *LoadHistoryInput) (*LoadHistoryOutput, error) {
	raw, ok, err := getValue(ctx, r.db, r.scoresKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}
	if !ok {
		return &LoadHistoryOutput{History: models.ScoreHistory{}}, nil
	}

	history, err := decodeHistory(raw)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", r.scoresKey).Msg("discarding corrupt score history")
		return &LoadHistoryOutput{History: models.ScoreHistory{}, Recovered: true}, nil
	}

	return &LoadHistoryOutput{History: history}, nil
}

// AppendScore reads, appends and writes back inside one transaction
func (r *sqliteRepository) AppendScore(ctx context.Context, input *AppendScoreInput) (*AppendScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Score < 0 {
		return nil, ErrNegative
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to append score: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	raw, _, err := getValue(ctx, tx, r.scoresKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	history, err := decodeHistory(raw)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", r.scoresKey).Msg("overwriting corrupt score history")
		history = models.ScoreHistory{}
	}
	history = append(history, input.Score)

	encoded, err := encodeHistory(history)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, upsertValue, r.scoresKey, encoded); err != nil {
		return nil, fmt.Errorf("failed to append score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to append score: %w", err)
	}

	return &AppendScoreOutput{History: history}, nil
}

// HasPlayedToday compares the stored timestamp with the start of today
func (r *sqliteRepository) HasPlayedToday(ctx context.Context, input *HasPlayedTodayInput) (bool, error) {
	if input == nil {
		return false, ErrNilInput
	}

	raw, ok, err := getValue(ctx, r.db, r.lastPlayedKey)
	if err != nil {
		return false, fmt.Errorf("failed to get last played timestamp: %w", err)
	}
	if !ok {
		return false, nil
	}

	last, err := decodeTimestamp(raw)
	if err != nil {
		return false, err
	}

	return playedToday(last, input.Now)
}

// RecordPlayedToday stores the timestamp as epoch milliseconds
func (r *sqliteRepository) RecordPlayedToday(ctx context.Context, input *RecordPlayedTodayInput) error {
	if input == nil {
		return ErrNilInput
	}

	if _, err := r.db.ExecContext(ctx, upsertValue, r.lastPlayedKey, encodeTimestamp(input.Now)); err != nil {
		return fmt.Errorf("failed to set last played timestamp: %w", err)
	}
	return nil
}
