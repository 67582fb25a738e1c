package store

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepstock/prepstock-server/internal/domain"
)

// setupTestStore creates a temporary store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	require.NotNil(t, s)

	t.Cleanup(func() { s.Close() })
	return s
}

// corruptKey overwrites a snapshot key with bytes that are not valid JSON.
func corruptKey(t *testing.T, s *Store, key string) {
	t.Helper()
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte("{not json"))
	})
	require.NoError(t, err)
}

func TestCatalog_DefaultWhenMissing(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	c, err := s.Catalog(ctx)

	require.NoError(t, err)
	require.NotNil(t, c)
	// The seeded default, not an empty catalog.
	assert.True(t, c.ContainsName("FRENCH FRIES"))
	assert.NotNil(t, c.Section(domain.SectionOther).Category(domain.TemporaryCategory))
}

func TestCatalog_RoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	c := domain.NewCatalog()
	c.AddTemporary("LIME WEDGES")
	require.NoError(t, s.SaveCatalog(ctx, c))

	loaded, err := s.Catalog(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.ContainsName("LIME WEDGES"))
	assert.False(t, loaded.ContainsName("FRENCH FRIES"))
}

func TestCatalog_CorruptBlobFallsBackToDefault(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	corruptKey(t, s, keyCatalog)

	c, err := s.Catalog(ctx)
	require.NoError(t, err)
	assert.True(t, c.ContainsName("FRENCH FRIES"))
}

func TestLedger_RoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	l := domain.NewLedger()
	l.SetCount("EGGS", "4")
	l.SetStatus("MILK", domain.StatusNeeded)
	require.NoError(t, s.SaveLedger(ctx, l))

	loaded, err := s.Ledger(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4", loaded.Entries["EGGS"].CurrentCount)
	assert.Equal(t, domain.StatusNeeded, loaded.Entries["MILK"].Status)
}

func TestLedger_EmptyWhenMissingOrCorrupt(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	l, err := s.Ledger(ctx)
	require.NoError(t, err)
	assert.Empty(t, l.Entries)

	corruptKey(t, s, keyLedger)
	l, err = s.Ledger(ctx)
	require.NoError(t, err)
	assert.Empty(t, l.Entries)
}

func TestBarcodeRegistry_RoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	r := domain.NewBarcodeRegistry()
	created := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	r.Bind("012345", "HOT SAUCE", domain.SectionStore, "GENERAL STORE", created)
	require.NoError(t, s.SaveBarcodeRegistry(ctx, r))

	loaded, err := s.BarcodeRegistry(ctx)
	require.NoError(t, err)
	b, ok := loaded.Lookup("012345")
	require.True(t, ok)
	assert.Equal(t, "HOT SAUCE", b.ItemName)
	assert.True(t, b.CreatedAt.Equal(created))
}

func TestScanLog_RoundTripPreservesOrder(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	l := domain.NewScanLog()
	base := time.Now()
	l.Prepend(domain.ScanLogEntry{ID: "a", Timestamp: base, Action: domain.ActionUsed, Quantity: 1})
	l.Prepend(domain.ScanLogEntry{ID: "b", Timestamp: base.Add(time.Minute), Action: domain.ActionReceived, Quantity: 3})
	require.NoError(t, s.SaveScanLog(ctx, l))

	loaded, err := s.ScanLog(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	assert.Equal(t, "b", loaded.Entries[0].ID)
}

func TestSnapshots_AreIndependent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	c := domain.NewCatalog()
	c.AddTemporary("LIME WEDGES")
	require.NoError(t, s.SaveCatalog(ctx, c))

	l := domain.NewLedger()
	l.SetStatus("LIME WEDGES", domain.StatusNeeded)
	require.NoError(t, s.SaveLedger(ctx, l))

	r := domain.NewBarcodeRegistry()
	r.Bind("1", "LIME WEDGES", domain.SectionOther, domain.TemporaryCategory, time.Now())
	require.NoError(t, s.SaveBarcodeRegistry(ctx, r))

	// Clearing the ledger leaves catalog and registry untouched.
	require.NoError(t, s.SaveLedger(ctx, domain.NewLedger()))

	loadedLedger, err := s.Ledger(ctx)
	require.NoError(t, err)
	assert.Empty(t, loadedLedger.Entries)

	loadedCatalog, err := s.Catalog(ctx)
	require.NoError(t, err)
	assert.True(t, loadedCatalog.ContainsName("LIME WEDGES"))

	loadedRegistry, err := s.BarcodeRegistry(ctx)
	require.NoError(t, err)
	_, ok := loadedRegistry.Lookup("1")
	assert.True(t, ok)
}

func TestStore_CancelledContext(t *testing.T) {
	s := setupTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Catalog(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.SaveCatalog(ctx, domain.NewCatalog()), context.Canceled)
}
