// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// ErrUnknownDatabaseType is returned by Open for an unrecognized -t value.
var ErrUnknownDatabaseType = errors.New("unknown database type")

// Open returns a KV backed by the requested database. dbType is "sqlite"
// (url is a file path), "postgres" (url is a connection string), or
// "memory". The kv table is created on first use.
func Open(dbType, url string) (KV, error) {
	switch dbType {
	case "memory":
		return NewMemoryKV(), nil
	case "sqlite":
		db, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return newSQLKV(db)
	case "postgres":
		db, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return newSQLKV(db)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDatabaseType, dbType)
}

// sqlKV stores each document as one row. The same statements work on both
// SQLite and Postgres: $1 placeholders and ON CONFLICT upsert are common to
// the two dialects.
type sqlKV struct {
	db *sql.DB
}

// newSQLKV bootstraps the kv table. Safe to call repeatedly; uses IF NOT
// EXISTS.
func newSQLKV(db *sql.DB) (*sqlKV, error) {
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &sqlKV{db: db}, nil
}

func (s *sqlKV) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT v FROM kv WHERE k = $1`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return v, true, nil
}

func (s *sqlKV) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (k, v) VALUES ($1, $2)
		ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *sqlKV) Close() error {
	return s.db.Close()
}
