package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ethiocareer/careercli/internal/client/storage/migrations"
	"github.com/ethiocareer/careercli/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the key-value area in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// one writer; keeps ":memory:" databases on a single connection too
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if err := upsert(ctx, s.db, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) SetMany(ctx context.Context, values map[string][]byte) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for k, v := range values {
			if err := upsert(ctx, tx, k, v); err != nil {
				return fmt.Errorf("kv[%s]: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set kv batch: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, keys ...string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, k); err != nil {
				return fmt.Errorf("kv[%s]: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete kv: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func upsert(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	return err
}
