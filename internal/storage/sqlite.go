package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// SQLite is the persistent engine, backed by a single database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Get implements Records.
func (s *SQLite) Get(ctx context.Context, kind Kind, id int) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM records WHERE kind = ? AND id = ?", string(kind), id).
		Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put implements Records.
func (s *SQLite) Put(ctx context.Context, kind Kind, id int, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO records (kind, id, data) VALUES (?, ?, ?) ON CONFLICT (kind, id) DO UPDATE SET data = excluded.data",
		string(kind), id, data)
	return err
}

// Remove implements Records.
func (s *SQLite) Remove(ctx context.Context, kind Kind, id int) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE kind = ? AND id = ?", string(kind), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Scan implements Records.
func (s *SQLite) Scan(ctx context.Context, kind Kind) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, data FROM records WHERE kind = ? ORDER BY id", string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Data); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertPair implements Pairs.
func (s *SQLite) InsertPair(ctx context.Context, table Table, left, right int) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO links (tbl, left_id, right_id) VALUES (?, ?, ?)",
		string(table), left, right)
	return err
}

// DeletePairs implements Pairs.
func (s *SQLite) DeletePairs(ctx context.Context, table Table, left, right int) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM links WHERE tbl = ? AND left_id = ? AND right_id = ?",
		string(table), left, right)
	return err
}

// DeleteLeft implements Pairs.
func (s *SQLite) DeleteLeft(ctx context.Context, table Table, left int) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM links WHERE tbl = ? AND left_id = ?", string(table), left)
	return err
}

// DeleteRight implements Pairs.
func (s *SQLite) DeleteRight(ctx context.Context, table Table, right int) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM links WHERE tbl = ? AND right_id = ?", string(table), right)
	return err
}

// ScanPairs implements Pairs. rowid order is insertion order.
func (s *SQLite) ScanPairs(ctx context.Context, table Table) ([]Pair, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT left_id, right_id FROM links WHERE tbl = ? ORDER BY rowid", string(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Pair
	for rows.Next() {
		var p Pair
		if err := rows.Scan(&p.Left, &p.Right); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Close implements Store.
func (s *SQLite) Close() error { return s.db.Close() }
