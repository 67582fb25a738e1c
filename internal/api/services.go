package api

import (
	"github.com/prepstock/prepstock-server/internal/service"
)

// Services groups the business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Inventory *service.InventoryService
	Scan      *service.ScanService
}
