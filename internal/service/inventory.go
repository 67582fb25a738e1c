// Package service orchestrates catalog, ledger, and scan operations on top of
// the snapshot store, keeping the search index and connected SSE clients in
// step with every mutation.
package service

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/prepstock/prepstock-server/internal/domain"
	domainerrors "github.com/prepstock/prepstock-server/internal/errors"
	"github.com/prepstock/prepstock-server/internal/normalize"
	"github.com/prepstock/prepstock-server/internal/search"
	"github.com/prepstock/prepstock-server/internal/sse"
	"github.com/prepstock/prepstock-server/internal/store"
)

// InventoryService owns all catalog and ledger mutations. A single mutex
// serializes the load-mutate-save cycle; the store holds one snapshot per
// concern and concurrent writers would clobber each other without it.
type InventoryService struct {
	mu         sync.Mutex
	store      *store.Store
	index      *search.ItemIndex
	sseManager *sse.Manager
	logger     *slog.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(store *store.Store, index *search.ItemIndex, sseManager *sse.Manager, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		store:      store,
		index:      index,
		sseManager: sseManager,
		logger:     logger,
	}
}

// WarmIndex seeds the search index from the persisted catalog. Called once
// at startup.
func (s *InventoryService) WarmIndex(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return err
	}
	return s.index.Reindex(catalog)
}

// Catalog returns the full catalog merged with session state, in
// authoritative order with no filtering.
func (s *InventoryService) Catalog(ctx context.Context) (*CatalogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		return nil, err
	}

	view := &CatalogView{NeededCount: domain.NeededCount(ledger, catalog)}
	for _, sec := range catalog.Sections {
		view.Sections = append(view.Sections, buildSectionView(sec, ledger, "", false))
	}
	return view, nil
}

// Section returns one section's display listing. A non-empty query filters
// items by case-insensitive substring match; categories emptied by the
// filter are omitted. Items are name-sorted within each category.
func (s *InventoryService) Section(ctx context.Context, sectionRaw, query string) (*SectionView, error) {
	section, err := domain.ParseSection(sectionRaw)
	if err != nil {
		return nil, domainerrors.Validation(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		return nil, err
	}

	view := buildSectionView(catalog.Section(section), ledger, query, true)
	return &view, nil
}

// AddPermanentItem inserts a named item into an existing category. Unlike
// promotion, the category is never auto-created here. A duplicate name in
// the target category is silently suppressed.
func (s *InventoryService) AddPermanentItem(ctx context.Context, nameRaw, parRaw, sectionRaw, categoryRaw string) (bool, error) {
	name := normalize.ItemName(nameRaw)
	if name == "" {
		return false, domainerrors.Validation("item name is required")
	}
	section, err := domain.ParseSection(sectionRaw)
	if err != nil {
		return false, domainerrors.Validation(err.Error())
	}
	category := normalize.Category(categoryRaw)
	if category == "" {
		return false, domainerrors.Validation("category is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return false, err
	}

	sec := catalog.Section(section)
	if sec == nil || sec.Category(category) == nil {
		return false, domainerrors.NotFoundf("category %q not found in section %s", category, section)
	}

	item := domain.Item{Name: name, Par: parsePar(parRaw)}
	if !catalog.InsertIfAbsent(section, category, item, false) {
		return false, nil
	}

	if err := s.persistCatalog(ctx, catalog); err != nil {
		return false, err
	}

	s.logger.Info("item added",
		"name", name,
		"section", section,
		"category", category,
	)
	return true, nil
}

// AddTemporaryItem inserts an ad-hoc item into the temporary list and marks
// it needed right away; a temporary item only exists because somebody wants
// it ordered. The returned section tells the client where the item landed.
// A name that exists anywhere in the catalog is silently suppressed.
func (s *InventoryService) AddTemporaryItem(ctx context.Context, nameRaw string) (domain.Section, bool, error) {
	name := normalize.ItemName(nameRaw)
	if name == "" {
		return "", false, domainerrors.Validation("item name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return "", false, err
	}

	inserted := catalog.AddTemporary(name)
	if inserted {
		if err := s.persistCatalog(ctx, catalog); err != nil {
			return "", false, err
		}
	}

	// The needed mark applies whether or not the insert happened; re-adding
	// an existing item is how it gets back on the list.
	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		return "", false, err
	}
	ledger.SetStatus(name, domain.StatusNeeded)
	if err := s.persistLedger(ctx, ledger); err != nil {
		return "", false, err
	}

	if inserted {
		s.logger.Info("temporary item added", "name", name)
	}
	return domain.SectionOther, inserted, nil
}

// PromoteItem moves a temporary item into a permanent section/category,
// auto-creating the category.
func (s *InventoryService) PromoteItem(ctx context.Context, nameRaw, sectionRaw, categoryRaw string) error {
	name := normalize.ItemName(nameRaw)
	if name == "" {
		return domainerrors.Validation("item name is required")
	}
	section, err := domain.ParseSection(sectionRaw)
	if err != nil {
		return domainerrors.Validation(err.Error())
	}
	category := normalize.Category(categoryRaw)
	if category == "" {
		return domainerrors.Validation("category is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return err
	}

	if !catalog.Promote(name, section, category) {
		return domainerrors.NotFoundf("temporary item %q not found", name)
	}

	if err := s.persistCatalog(ctx, catalog); err != nil {
		return err
	}

	s.logger.Info("item promoted",
		"name", name,
		"section", section,
		"category", category,
	)
	return nil
}

// RemoveItem deletes an item by its position within a category.
func (s *InventoryService) RemoveItem(ctx context.Context, sectionRaw, categoryRaw string, index int) error {
	section, err := domain.ParseSection(sectionRaw)
	if err != nil {
		return domainerrors.Validation(err.Error())
	}
	category := normalize.Category(categoryRaw)

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return err
	}

	if !catalog.RemoveAt(section, category, index) {
		return domainerrors.NotFoundf("no item at %s/%s[%d]", section, category, index)
	}

	if err := s.persistCatalog(ctx, catalog); err != nil {
		return err
	}

	s.logger.Info("item removed",
		"section", section,
		"category", category,
		"index", index,
	)
	return nil
}

// UpdatePar sets the item's target level from raw input. Anything that does
// not parse as a number clears the par.
func (s *InventoryService) UpdatePar(ctx context.Context, sectionRaw, categoryRaw string, index int, parRaw string) error {
	section, err := domain.ParseSection(sectionRaw)
	if err != nil {
		return domainerrors.Validation(err.Error())
	}
	category := normalize.Category(categoryRaw)

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return err
	}

	if !catalog.SetParAt(section, category, index, parsePar(parRaw)) {
		return domainerrors.NotFoundf("no item at %s/%s[%d]", section, category, index)
	}

	return s.persistCatalog(ctx, catalog)
}

// Ledger returns all session entries with their derived needs.
func (s *InventoryService) Ledger(ctx context.Context) (*LedgerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		return nil, err
	}

	view := &LedgerView{NeededCount: domain.NeededCount(ledger, catalog)}
	for name, entry := range ledger.Entries {
		var par *float64
		if item, _, _, ok := catalog.FindItem(name); ok {
			par = item.Par
		}
		need := domain.DeriveNeed(&entry, par)
		view.Entries = append(view.Entries, LedgerEntryView{
			Name:          name,
			CurrentCount:  entry.CurrentCount,
			Status:        entry.Status,
			OrderQuantity: need.OrderQuantity,
			Needed:        need.Needed,
		})
	}
	sort.Slice(view.Entries, func(i, j int) bool {
		return view.Entries[i].Name < view.Entries[j].Name
	})
	return view, nil
}

// SetCount records a raw count input against an item name. The count is
// stored as typed; derivation decides later whether it parses.
func (s *InventoryService) SetCount(ctx context.Context, nameRaw, count string) error {
	name := normalize.ItemName(nameRaw)
	if name == "" {
		return domainerrors.Validation("item name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		return err
	}

	ledger.SetCount(name, count)
	return s.persistLedger(ctx, ledger)
}

// SetStatus records an explicit need decision for an item. Status "none"
// removes the entry entirely.
func (s *InventoryService) SetStatus(ctx context.Context, nameRaw, statusRaw string) error {
	name := normalize.ItemName(nameRaw)
	if name == "" {
		return domainerrors.Validation("item name is required")
	}
	status, ok := domain.ParseItemStatus(statusRaw)
	if !ok {
		return domainerrors.Validationf("unknown status %q", statusRaw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		return err
	}

	ledger.SetStatus(name, status)
	return s.persistLedger(ctx, ledger)
}

// ResetCounts empties the ledger for a fresh counting session. The catalog
// and barcode registry are untouched.
func (s *InventoryService) ResetCounts(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		return err
	}

	ledger.Reset()
	if err := s.persistLedger(ctx, ledger); err != nil {
		return err
	}

	s.logger.Info("ledger reset")
	return nil
}

// Search runs a full-text query over the catalog index.
func (s *InventoryService) Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	return s.index.Search(ctx, params)
}

// recordScanOutcome applies a committed scan's ledger side effect. Called by
// the scan service under its own flow; locking happens here.
func (s *InventoryService) recordScanOutcome(ctx context.Context, itemName string, action domain.ScanAction, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		return err
	}

	switch action {
	case domain.ActionReceived:
		ledger.SetStatus(itemName, domain.StatusNotNeeded)
	case domain.ActionCounted:
		ledger.SetCount(itemName, strconv.Itoa(quantity))
	default:
		// "used" is log-only.
		return nil
	}

	return s.persistLedger(ctx, ledger)
}

// insertScannedItem adds a freshly bound item to the catalog, auto-creating
// the category. Duplicate names in the target are suppressed.
func (s *InventoryService) insertScannedItem(ctx context.Context, name, barcode string, section domain.Section, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return err
	}

	if !catalog.InsertIfAbsent(section, category, domain.Item{Name: name, Barcode: barcode}, true) {
		return nil
	}
	return s.persistCatalog(ctx, catalog)
}

// persistCatalog saves the snapshot, rebuilds the search index, and notifies
// clients. Caller holds the mutex.
func (s *InventoryService) persistCatalog(ctx context.Context, catalog *domain.Catalog) error {
	if err := s.store.SaveCatalog(ctx, catalog); err != nil {
		return err
	}
	if err := s.index.Reindex(catalog); err != nil {
		s.logger.Warn("failed to reindex catalog", "error", err)
	}

	ledger, err := s.store.Ledger(ctx)
	if err != nil {
		s.logger.Warn("failed to load ledger for event", "error", err)
		return nil
	}
	s.sseManager.Emit(sse.NewCatalogUpdatedEvent(domain.NeededCount(ledger, catalog)))
	return nil
}

// persistLedger saves the snapshot and notifies clients with the fresh
// "items to get" total. Caller holds the mutex.
func (s *InventoryService) persistLedger(ctx context.Context, ledger *domain.Ledger) error {
	if err := s.store.SaveLedger(ctx, ledger); err != nil {
		return err
	}

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		s.logger.Warn("failed to load catalog for event", "error", err)
		return nil
	}
	s.sseManager.Emit(sse.NewLedgerUpdatedEvent(domain.NeededCount(ledger, catalog)))
	return nil
}

// buildSectionView assembles the display listing for one section. When
// omitEmpty is set, categories with no items after filtering disappear from
// the view.
func buildSectionView(sec *domain.SectionData, ledger *domain.Ledger, query string, omitEmpty bool) SectionView {
	view := SectionView{Query: query}
	if sec == nil {
		return view
	}
	view.Section = sec.Name

	needle := strings.ToUpper(strings.TrimSpace(query))
	for _, cat := range sec.Categories {
		catView := CategoryView{Name: cat.Name, ItemCount: len(cat.Items)}
		for i, item := range cat.Items {
			if needle != "" && !strings.Contains(item.Name, needle) {
				continue
			}
			var entry *domain.LedgerEntry
			if e, ok := ledger.Entries[item.Name]; ok {
				entry = &e
			}
			need := domain.DeriveNeed(entry, item.Par)

			iv := ItemView{
				Name:          item.Name,
				Index:         i,
				Par:           item.Par,
				Barcode:       item.Barcode,
				Status:        domain.StatusNone,
				OrderQuantity: need.OrderQuantity,
				Needed:        need.Needed,
			}
			if entry != nil {
				iv.CurrentCount = entry.CurrentCount
				iv.Status = entry.Status
			}
			catView.Items = append(catView.Items, iv)
		}
		if omitEmpty && len(catView.Items) == 0 {
			continue
		}
		sort.Slice(catView.Items, func(i, j int) bool {
			return catView.Items[i].Name < catView.Items[j].Name
		})
		view.Categories = append(view.Categories, catView)
	}
	return view
}

// parsePar converts raw par input to a level. Invalid or non-finite input
// clears the par rather than erroring, matching how the count field treats
// garbage.
func parsePar(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
