package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/awarddeck/internal/client/drafts/migrations"
	"github.com/dmitrijs2005/awarddeck/internal/dbx"
)

// draftRowID pins the table to a single row; every save overwrites it.
const draftRowID = 1

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Open opens (or creates) the draft database at the given path and runs the
// schema migrations. The caller owns the returned *sql.DB.
func Open(ctx context.Context, dsn string) (*SQLiteRepository, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open draft db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run draft migrations: %w", err)
	}

	return NewSQLiteRepository(db), db, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, d Draft) error {
	if d.SavedAt.IsZero() {
		d.SavedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO drafts (id, payload, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`, draftRowID, payload, d.SavedAt)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Load returns the stored draft, or (nil, nil) when none exists.
func (r *SQLiteRepository) Load(ctx context.Context) (*Draft, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM drafts WHERE id = ?`, draftRowID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var d Draft
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &d, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, draftRowID)
	if err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
