package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prepstock/prepstock-server/internal/config"
	"github.com/prepstock/prepstock-server/internal/domain"
	domainerrors "github.com/prepstock/prepstock-server/internal/errors"
	"github.com/prepstock/prepstock-server/internal/id"
	"github.com/prepstock/prepstock-server/internal/normalize"
	"github.com/prepstock/prepstock-server/internal/scan"
	"github.com/prepstock/prepstock-server/internal/sse"
	"github.com/prepstock/prepstock-server/internal/store"
)

// ScanService drives the scan pipeline: resolve a decoded barcode, bind
// unknown codes to items, and commit an action that lands in the log and,
// depending on the action, the ledger.
type ScanService struct {
	mu         sync.Mutex
	store      *store.Store
	gate       *scan.Gate
	inventory  *InventoryService
	sseManager *sse.Manager
	scanner    config.ScannerConfig
	logger     *slog.Logger
	now        func() time.Time
}

// NewScanService creates a new scan service.
func NewScanService(store *store.Store, gate *scan.Gate, inventory *InventoryService, sseManager *sse.Manager, scanner config.ScannerConfig, logger *slog.Logger) *ScanService {
	return &ScanService{
		store:      store,
		gate:       gate,
		inventory:  inventory,
		sseManager: sseManager,
		scanner:    scanner,
		logger:     logger,
		now:        time.Now,
	}
}

// Resolve handles a decoded barcode. The gate accepts the first decode of a
// flow and rejects the rest; a known code resolves to its binding, an
// unknown one asks the client to bind it.
func (s *ScanService) Resolve(ctx context.Context, codeRaw string) (*ResolveResult, error) {
	code := normalize.Barcode(codeRaw)
	if code == "" {
		return nil, domainerrors.Validation("barcode is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.store.BarcodeRegistry(ctx)
	if err != nil {
		return nil, err
	}

	binding, known := registry.Lookup(code)

	session, err := s.gate.Accept(code, known)
	if err != nil {
		return nil, err
	}

	result := &ResolveResult{
		Token: session.Token,
		State: session.State,
		Known: known,
	}
	if known {
		result.Binding = &binding
	}

	s.logger.Debug("barcode resolved",
		"barcode", code,
		"known", known,
	)
	return result, nil
}

// Bind registers an unknown barcode against a new item and inserts the item
// into the catalog. The registry keeps whatever binding a code got first;
// rebinding is not a thing.
func (s *ScanService) Bind(ctx context.Context, token, nameRaw, sectionRaw, categoryRaw string) (*ResolveResult, error) {
	name := normalize.ItemName(nameRaw)
	if name == "" {
		return nil, domainerrors.Validation("item name is required")
	}
	section, err := domain.ParseSection(sectionRaw)
	if err != nil {
		return nil, domainerrors.Validation(err.Error())
	}
	category := normalize.Category(categoryRaw)
	if category == "" {
		return nil, domainerrors.Validation("category is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.gate.Current()
	if current == nil || current.Token != token {
		return nil, domainerrors.Conflict("no matching scan session")
	}
	// Reject before touching the registry or catalog; a failed bind must not
	// leave either mutated.
	if current.State != scan.StateAwaitingBinding {
		return nil, domainerrors.Conflictf("scan session is %s, expected %s", current.State, scan.StateAwaitingBinding)
	}
	code := current.Barcode

	registry, err := s.store.BarcodeRegistry(ctx)
	if err != nil {
		return nil, err
	}

	if registry.Bind(code, name, section, category, s.now()) {
		if err := s.store.SaveBarcodeRegistry(ctx, registry); err != nil {
			return nil, err
		}
	}

	if err := s.inventory.insertScannedItem(ctx, name, code, section, category); err != nil {
		return nil, err
	}

	session, err := s.gate.Bound(token)
	if err != nil {
		return nil, err
	}

	binding, _ := registry.Lookup(code)
	s.logger.Info("barcode bound",
		"barcode", code,
		"name", name,
		"section", section,
		"category", category,
	)
	return &ResolveResult{
		Token:   session.Token,
		State:   session.State,
		Known:   true,
		Binding: &binding,
	}, nil
}

// Commit finishes the flow: the action is logged and its ledger side effect
// applied. Received stock resolves the item's need, a count overwrites the
// ledger count, and plain usage is log-only.
func (s *ScanService) Commit(ctx context.Context, token, actionRaw string, quantity int) (*domain.ScanLogEntry, error) {
	action, ok := domain.ParseScanAction(actionRaw)
	if !ok {
		return nil, domainerrors.Validationf("unknown action %q", actionRaw)
	}
	if quantity < 1 {
		return nil, domainerrors.Validation("quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.gate.Current()
	if current == nil || current.Token != token {
		return nil, domainerrors.Conflict("no matching scan session")
	}
	code := current.Barcode

	registry, err := s.store.BarcodeRegistry(ctx)
	if err != nil {
		return nil, err
	}
	binding, known := registry.Lookup(code)
	if !known {
		return nil, domainerrors.Conflictf("barcode %q is not bound", code)
	}

	entry := domain.ScanLogEntry{
		ID:        id.MustGenerate("scan"),
		Barcode:   code,
		ItemName:  binding.ItemName,
		Quantity:  quantity,
		Timestamp: s.now(),
		Action:    action,
	}

	log, err := s.store.ScanLog(ctx)
	if err != nil {
		return nil, err
	}
	log.Prepend(entry)
	if err := s.store.SaveScanLog(ctx, log); err != nil {
		return nil, err
	}

	if err := s.inventory.recordScanOutcome(ctx, binding.ItemName, action, quantity); err != nil {
		return nil, err
	}

	if err := s.gate.Complete(token); err != nil {
		return nil, err
	}

	s.sseManager.Emit(sse.NewScanLoggedEvent(entry))
	s.logger.Info("scan committed",
		"barcode", code,
		"item", binding.ItemName,
		"action", action,
		"quantity", quantity,
	)
	return &entry, nil
}

// Cancel aborts the active flow so the scanner can accept a fresh decode.
func (s *ScanService) Cancel(ctx context.Context, token string) error {
	return s.gate.Cancel(token)
}

// History returns the scan log grouped by local calendar date, most recent
// first.
func (s *ScanService) History(ctx context.Context) (*HistoryView, error) {
	log, err := s.store.ScanLog(ctx)
	if err != nil {
		return nil, err
	}
	return &HistoryView{
		Days:  log.GroupedByDay(),
		Total: log.Len(),
	}, nil
}

// ClearHistory wipes the whole scan log.
func (s *ScanService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.store.ScanLog(ctx)
	if err != nil {
		return err
	}
	log.Clear()
	if err := s.store.SaveScanLog(ctx, log); err != nil {
		return err
	}

	s.sseManager.Emit(sse.NewScanHistoryClearedEvent())
	s.logger.Info("scan history cleared")
	return nil
}

// Settings returns the scanner defaults the browser client should use.
func (s *ScanService) Settings() ScannerSettings {
	return ScannerSettings{
		CameraFacing: s.scanner.CameraFacing,
		FrameRate:    s.scanner.FrameRate,
		BoxWidth:     s.scanner.BoxWidth,
		BoxHeight:    s.scanner.BoxHeight,
	}
}
