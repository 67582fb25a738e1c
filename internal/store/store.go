// Package store persists the inventory data structures as JSON snapshots in
// an embedded Badger database.
//
// Each structure (catalog, ledger, barcode registry, scan log) lives under
// its own key and is written in full on every mutation, last-writer-wins. A
// missing or unreadable snapshot is never an error: the caller gets the
// built-in default for that structure instead.
package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Snapshot keys. One key per data structure.
const (
	keyCatalog  = "snapshot:catalog"
	keyLedger   = "snapshot:ledger"
	keyBarcodes = "snapshot:barcodes"
	keyScanLog  = "snapshot:scanlog"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}
	return s, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// loadSnapshot reads the JSON blob under key into dest. It returns
// badger.ErrKeyNotFound when the key has never been written; a blob that
// fails to unmarshal is reported as an error so callers can fall back to a
// default rather than crash.
func (s *Store) loadSnapshot(ctx context.Context, key string, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// saveSnapshot overwrites the JSON blob under key with the serialized value.
func (s *Store) saveSnapshot(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// warnFallback logs why a snapshot was replaced by its default. A missing key
// is the normal first-run case and logged at debug.
func (s *Store) warnFallback(key string, err error) {
	if s.logger == nil {
		return
	}
	if errors.Is(err, badger.ErrKeyNotFound) {
		s.logger.Debug("no snapshot stored, using default", "key", key)
		return
	}
	s.logger.Warn("snapshot unreadable, falling back to default", "key", key, "error", err)
}
