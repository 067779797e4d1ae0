package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/awarddeck/internal/common"
	"github.com/dmitrijs2005/awarddeck/internal/dbx"
	"github.com/dmitrijs2005/awarddeck/internal/server/kvstore/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Postgres implements Store over a dbx.DBTX (*sql.DB or *sql.Tx).
type Postgres struct {
	db dbx.DBTX

	// sqlDB is set when the store is bound to a root handle; it lets
	// SetBatch open its own transaction.
	sqlDB *sql.DB
}

// NewPostgres constructs a store bound to the given DBTX.
func NewPostgres(db dbx.DBTX) *Postgres {
	s := &Postgres{db: db}
	if sqlDB, ok := db.(*sql.DB); ok {
		s.sqlDB = sqlDB
	}
	return s
}

// Open connects to PostgreSQL, runs migrations and returns a ready store
// together with the underlying handle for lifecycle management.
func Open(ctx context.Context, dsn string) (*Postgres, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return NewPostgres(db), db, nil
}

func (s *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_records WHERE key=$1`
	row := s.db.QueryRowContext(ctx, query, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, nil
}

func (s *Postgres) Set(ctx context.Context, key string, value []byte) error {
	return setOne(ctx, s.db, key, value)
}

// SetBatch upserts all records inside one transaction, so a failed batch
// leaves no partial writes behind. When the store is already bound to a
// transactional handle the records ride on that transaction instead.
func (s *Postgres) SetBatch(ctx context.Context, records []Record) error {
	if s.sqlDB == nil {
		return setAll(ctx, s.db, records)
	}
	return dbx.WithTx(ctx, s.sqlDB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return setAll(ctx, tx, records)
	})
}

func setAll(ctx context.Context, db dbx.DBTX, records []Record) error {
	for _, rec := range records {
		if err := setOne(ctx, db, rec.Key, rec.Value); err != nil {
			return err
		}
	}
	return nil
}

func setOne(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	query := `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now();
	`
	if _, err := db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Del removes a key. Deleting a missing key is not an error.
func (s *Postgres) Del(ctx context.Context, key string) error {
	query := `DELETE FROM kv_records WHERE key=$1`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (s *Postgres) GetByPrefix(ctx context.Context, prefix string) ([]Record, error) {
	query := `SELECT key, value FROM kv_records WHERE key LIKE $1 || '%' ORDER BY key`
	rows, err := s.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var item Record
		if err := rows.Scan(&item.Key, &item.Value); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
