package search

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/prepstock/prepstock-server/internal/domain"
)

// ItemIndex wraps an in-memory Bleve index over the catalog.
//
// Thread safety: all public methods are safe for concurrent use. The mutex
// protects against searches racing a Reindex swap.
type ItemIndex struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// Options configures the item index.
type Options struct {
	Logger *slog.Logger // Logger for operations (uses discard if nil)
}

// NewItemIndex creates an empty in-memory index. Call Reindex with the
// current catalog before serving queries.
func NewItemIndex(opts Options) (*ItemIndex, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &ItemIndex{
		index:  index,
		logger: logger,
	}, nil
}

// Close closes the index and releases resources.
func (s *ItemIndex) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// Reindex replaces the entire index contents with the given catalog.
// The catalog rarely exceeds a few hundred items so a full rebuild per
// mutation is cheaper than tracking deltas.
func (s *ItemIndex) Reindex(catalog *domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	docs := DocumentsFromCatalog(catalog)
	batch := fresh.NewBatch()
	for _, doc := range docs {
		// Convert to map to ensure field names match the mapping (lowercase)
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			fresh.Close()
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
	}
	if err := fresh.Batch(batch); err != nil {
		fresh.Close()
		return fmt.Errorf("commit batch: %w", err)
	}

	old := s.index
	s.index = fresh
	if old != nil {
		if err := old.Close(); err != nil {
			s.logger.Warn("failed to close previous index", "error", err)
		}
	}

	s.logger.Debug("reindexed catalog", "documents", len(docs))
	return nil
}

// DocumentCount returns the total number of indexed items.
func (s *ItemIndex) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}
