package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/geofield/borelog/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	return setSnapshot(ctx, r.db, key, value)
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return clearSnapshots(ctx, r.db)
}

// Replace atomically drops every snapshot and writes the given entries in one
// transaction. Readers never observe the store half-wiped.
func (r *SQLiteRepository) Replace(ctx context.Context, entries map[string][]byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearSnapshots(ctx, tx); err != nil {
			return err
		}
		for key, value := range entries {
			if err := setSnapshot(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func setSnapshot(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set snapshot[%s]: %w", key, err)
	}
	return nil
}

func clearSnapshots(ctx context.Context, db dbx.DBTX) error {
	_, err := db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}
