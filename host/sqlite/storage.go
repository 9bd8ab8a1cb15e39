// This package implements a persistent [host.Storage] backed by SQLite.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/paramsync/paramsync/host"
	"github.com/paramsync/paramsync/internal"
)

var (
	// ErrClosed is returned by Storage methods when the storage has been closed.
	ErrClosed = errors.New("storage is closed")
)

const (
	memory = ":memory:"
)

var _ host.Storage = (*Storage)(nil)

// Storage is a persistent key-value slot store backed by SQLite.
type Storage struct {
	cfg *Config
	db  *sql.DB
}

// New creates a new Storage with the provided configuration functions.
//
// Default configuration:
//   - File: ":memory:" (in-memory database)
//   - Durable: false
//
// Returns an error if the SQLite database cannot be opened or initialized.
func New(configFuncs ...ConfigFunc) (*Storage, error) {
	cfg := &Config{}
	cfg.File(memory)
	for _, cf := range configFuncs {
		cf(cfg)
	}

	db, err := open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if err := setup(db); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	storage := Storage{
		cfg: cfg,
		db:  db,
	}

	return &storage, nil
}

// Get fetches the value stored under key. ok is false when the key is absent.
//
// Returns [ErrClosed] if the storage has been closed.
func (s *Storage) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		`
		select value from slot
		where key = :key
		`,
		sql.Named("key", key),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	} else if err != nil {
		return "", false, closedOr(err)
	}

	return value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Storage) Set(key, value string) error {
	_, err := s.db.Exec(
		`
		insert into slot (key, value, updated_at)
		values (:key, :value, :updated_at)
		on conflict (key) do update set
			value = excluded.value,
			updated_at = excluded.updated_at
		`,
		sql.Named("key", key),
		sql.Named("value", value),
		sql.Named("updated_at", toTimestamp(time.Now())),
	)
	return closedOr(err)
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Storage) Delete(key string) error {
	_, err := s.db.Exec(
		`
		delete from slot
		where key = :key
		`,
		sql.Named("key", key),
	)
	return closedOr(err)
}

// Close closes the underlying SQLite database.
//
// After closing, all methods on Storage will return [ErrClosed].
func (s *Storage) Close() error {
	return s.db.Close()
}

func open(cfg *Config) (*sql.DB, error) {
	name := cfg.file

	params := url.Values{}
	params.Add("_txlock", "immediate")
	params.Add("_timeout", "5000") // 5s
	if name == memory {
		name = internal.GenerateID()
		params.Add("mode", "memory")
		params.Add("cache", "shared")
	} else {
		params.Add("_journal", "wal")
		params.Add("_cache_size", "-20000") // 20mb
		if cfg.durable {
			params.Add("_sync", "full")
		} else {
			params.Add("_sync", "normal")
		}
	}

	db, err := sql.Open("sqlite3", "file:"+name+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

func setup(db *sql.DB) error {
	if _, err := db.Exec(
		`
		create table if not exists slot (
			key        text primary key,
			value      text not null,
			updated_at int not null
		) strict
		`,
	); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	return nil
}

func closedOr(err error) error {
	if err != nil && err.Error() == "sql: database is closed" {
		return ErrClosed
	}
	return err
}

func toTimestamp(time time.Time) int64 {
	return time.UnixNano()
}
