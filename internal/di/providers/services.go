package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/prepstock/prepstock-server/internal/config"
	"github.com/prepstock/prepstock-server/internal/logger"
	"github.com/prepstock/prepstock-server/internal/scan"
	"github.com/prepstock/prepstock-server/internal/service"
)

// ProvideInventoryService provides the inventory service and warms the search
// index from the persisted catalog.
func ProvideInventoryService(i do.Injector) (*service.InventoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc := service.NewInventoryService(storeHandle.Store, indexHandle.ItemIndex, sseHandle.Manager, log.Logger)

	if err := svc.WarmIndex(context.Background()); err != nil {
		return nil, err
	}

	docCount, _ := indexHandle.DocumentCount()
	log.Info("Catalog indexed", "documents", docCount)

	return svc, nil
}

// ProvideScanGate provides the single-session scan gate.
func ProvideScanGate(i do.Injector) (*scan.Gate, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return scan.NewGate(log.Logger), nil
}

// ProvideScanService provides the barcode scan service.
func ProvideScanService(i do.Injector) (*service.ScanService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	gate := do.MustInvoke[*scan.Gate](i)
	inventory := do.MustInvoke[*service.InventoryService](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewScanService(storeHandle.Store, gate, inventory, sseHandle.Manager, cfg.Scanner, log.Logger), nil
}
