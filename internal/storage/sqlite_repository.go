package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteRepository stores slots as rows of the slots table.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return &SQLiteRepository{db: db, now: time.Now}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Read(ctx context.Context, key string) (string, error) {
	rec, err := r.GetSlot(ctx, key)
	if err != nil {
		return "", err
	}
	return rec.Value, nil
}

func (r *SQLiteRepository) Write(ctx context.Context, key, value string) error {
	return r.PutSlot(ctx, SlotRecord{Key: key, Value: value, UpdatedAt: r.now()})
}

func (r *SQLiteRepository) Remove(ctx context.Context, key string) error {
	err := r.DeleteSlot(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func (r *SQLiteRepository) Keys(ctx context.Context) ([]string, error) {
	records, err := r.ListSlots(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Key)
	}
	return out, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM slots`)
	return err
}

func (r *SQLiteRepository) PutSlot(ctx context.Context, in SlotRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		in.Key, in.Value, mustTime(in.UpdatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetSlot(ctx context.Context, key string) (SlotRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM slots WHERE key = ?`, key)
	rec, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SlotRecord{}, ErrNotFound
		}
		return SlotRecord{}, err
	}
	return rec, nil
}

func (r *SQLiteRepository) DeleteSlot(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

// ListSlots returns every stored slot ordered by key.
func (r *SQLiteRepository) ListSlots(ctx context.Context) ([]SlotRecord, error) {
	const query = `SELECT key, value, updated_at FROM slots ORDER BY key ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SlotRecord, 0)
	for rows.Next() {
		rec, scanErr := scanSlot(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSlot(s scanner) (SlotRecord, error) {
	var out SlotRecord
	var updated string
	if err := s.Scan(&out.Key, &out.Value, &updated); err != nil {
		return SlotRecord{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return SlotRecord{}, err
	}
	out.UpdatedAt = updatedAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
