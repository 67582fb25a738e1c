package store

import (
	"context"

	"github.com/prepstock/prepstock-server/internal/domain"
)

// Catalog loads the catalog snapshot. A missing or unreadable snapshot
// yields the built-in seeded default.
func (s *Store) Catalog(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var c domain.Catalog
	if err := s.loadSnapshot(ctx, keyCatalog, &c); err != nil {
		s.warnFallback(keyCatalog, err)
		return domain.DefaultCatalog(), nil
	}
	c.Normalize()
	return &c, nil
}

// SaveCatalog overwrites the catalog snapshot.
func (s *Store) SaveCatalog(ctx context.Context, c *domain.Catalog) error {
	return s.saveSnapshot(ctx, keyCatalog, c)
}

// Ledger loads the count/status ledger snapshot, empty when absent.
func (s *Store) Ledger(ctx context.Context) (*domain.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var l domain.Ledger
	if err := s.loadSnapshot(ctx, keyLedger, &l); err != nil {
		s.warnFallback(keyLedger, err)
		return domain.NewLedger(), nil
	}
	l.Normalize()
	return &l, nil
}

// SaveLedger overwrites the ledger snapshot.
func (s *Store) SaveLedger(ctx context.Context, l *domain.Ledger) error {
	return s.saveSnapshot(ctx, keyLedger, l)
}

// BarcodeRegistry loads the barcode registry snapshot, empty when absent.
func (s *Store) BarcodeRegistry(ctx context.Context) (*domain.BarcodeRegistry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var r domain.BarcodeRegistry
	if err := s.loadSnapshot(ctx, keyBarcodes, &r); err != nil {
		s.warnFallback(keyBarcodes, err)
		return domain.NewBarcodeRegistry(), nil
	}
	r.Normalize()
	return &r, nil
}

// SaveBarcodeRegistry overwrites the barcode registry snapshot.
func (s *Store) SaveBarcodeRegistry(ctx context.Context, r *domain.BarcodeRegistry) error {
	return s.saveSnapshot(ctx, keyBarcodes, r)
}

// ScanLog loads the scan action log snapshot, empty when absent.
func (s *Store) ScanLog(ctx context.Context) (*domain.ScanLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var l domain.ScanLog
	if err := s.loadSnapshot(ctx, keyScanLog, &l); err != nil {
		s.warnFallback(keyScanLog, err)
		return domain.NewScanLog(), nil
	}
	return &l, nil
}

// SaveScanLog overwrites the scan log snapshot.
func (s *Store) SaveScanLog(ctx context.Context, l *domain.ScanLog) error {
	return s.saveSnapshot(ctx, keyScanLog, l)
}
