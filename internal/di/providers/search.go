package providers

import (
	"github.com/samber/do/v2"

	"github.com/prepstock/prepstock-server/internal/logger"
	"github.com/prepstock/prepstock-server/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.ItemIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the in-memory Bleve item index.
// The index is rebuilt from the persisted catalog on startup and after every
// catalog mutation, so nothing is written to disk.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewItemIndex(search.Options{
		Logger: log.Logger,
	})
	if err != nil {
		return nil, err
	}

	log.Info("Search index initialized")

	return &SearchIndexHandle{ItemIndex: index}, nil
}
