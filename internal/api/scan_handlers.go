package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/prepstock/prepstock-server/internal/domain"
	"github.com/prepstock/prepstock-server/internal/service"
)

func (s *Server) registerScanRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "scanResolve",
		Method:      http.MethodPost,
		Path:        "/api/v1/scan/resolve",
		Summary:     "Resolve a scanned barcode",
		Description: "Accepts the first decode of a scan flow. Known codes resolve to their bound item; unknown codes require binding. Further decodes while a flow is live are rejected.",
		Tags:        []string{"Scan"},
	}, s.handleScanResolve)

	huma.Register(s.api, huma.Operation{
		OperationID: "scanBind",
		Method:      http.MethodPost,
		Path:        "/api/v1/scan/bind",
		Summary:     "Bind an unknown barcode to a new item",
		Tags:        []string{"Scan"},
	}, s.handleScanBind)

	huma.Register(s.api, huma.Operation{
		OperationID: "scanCommit",
		Method:      http.MethodPost,
		Path:        "/api/v1/scan/commit",
		Summary:     "Commit a scan action",
		Description: "Logs the action and applies its ledger side effect: received resolves the need, counted overwrites the count, used is log-only.",
		Tags:        []string{"Scan"},
	}, s.handleScanCommit)

	huma.Register(s.api, huma.Operation{
		OperationID: "scanCancel",
		Method:      http.MethodPost,
		Path:        "/api/v1/scan/cancel",
		Summary:     "Cancel the active scan flow",
		Tags:        []string{"Scan"},
	}, s.handleScanCancel)

	huma.Register(s.api, huma.Operation{
		OperationID: "scanHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/scan/history",
		Summary:     "Scan history grouped by day",
		Tags:        []string{"Scan"},
	}, s.handleScanHistory)

	huma.Register(s.api, huma.Operation{
		OperationID: "scanHistoryClear",
		Method:      http.MethodDelete,
		Path:        "/api/v1/scan/history",
		Summary:     "Clear the scan history",
		Tags:        []string{"Scan"},
	}, s.handleScanHistoryClear)

	huma.Register(s.api, huma.Operation{
		OperationID: "scanConfig",
		Method:      http.MethodGet,
		Path:        "/api/v1/scan/config",
		Summary:     "Scanner client defaults",
		Tags:        []string{"Scan"},
	}, s.handleScanConfig)
}

// === DTOs ===

// ScanResolveInput carries a decoded barcode.
type ScanResolveInput struct {
	Body struct {
		Barcode string `json:"barcode" validate:"required,max=64" doc:"Decoded barcode value"`
	}
}

// ScanResolveOutput wraps the resolve result for Huma.
type ScanResolveOutput struct {
	Body service.ResolveResult
}

// ScanBindInput names the item for an unknown barcode.
type ScanBindInput struct {
	Body struct {
		Token    string `json:"token" validate:"required" doc:"Scan session token from resolve"`
		Name     string `json:"name" validate:"required,max=120" doc:"New item name"`
		Section  string `json:"section" validate:"required" doc:"Target section"`
		Category string `json:"category" validate:"required,max=120" doc:"Target category, created if absent"`
	}
}

// ScanCommitInput selects the action for a resolved scan.
type ScanCommitInput struct {
	Body struct {
		Token    string `json:"token" validate:"required" doc:"Scan session token"`
		Action   string `json:"action" validate:"required,oneof=received used counted" doc:"Stock movement"`
		Quantity int    `json:"quantity" validate:"required,gte=1" doc:"Units moved"`
	}
}

// ScanCommitOutput wraps the created log entry.
type ScanCommitOutput struct {
	Body domain.ScanLogEntry
}

// ScanCancelInput aborts the active flow.
type ScanCancelInput struct {
	Body struct {
		Token string `json:"token" validate:"required" doc:"Scan session token"`
	}
}

// ScanCancelOutput reports the cancel.
type ScanCancelOutput struct {
	Body struct {
		Cancelled bool `json:"cancelled"`
	}
}

// ScanHistoryOutput wraps the grouped history.
type ScanHistoryOutput struct {
	Body service.HistoryView
}

// ScanHistoryClearOutput reports the clear.
type ScanHistoryClearOutput struct {
	Body struct {
		Cleared bool `json:"cleared"`
	}
}

// ScanConfigOutput wraps the scanner client defaults.
type ScanConfigOutput struct {
	Body service.ScannerSettings
}

// === Handlers ===

func (s *Server) handleScanResolve(ctx context.Context, input *ScanResolveInput) (*ScanResolveOutput, error) {
	if err := s.validator.Validate(&input.Body); err != nil {
		return nil, err
	}

	result, err := s.services.Scan.Resolve(ctx, input.Body.Barcode)
	if err != nil {
		return nil, err
	}
	return &ScanResolveOutput{Body: *result}, nil
}

func (s *Server) handleScanBind(ctx context.Context, input *ScanBindInput) (*ScanResolveOutput, error) {
	if err := s.validator.Validate(&input.Body); err != nil {
		return nil, err
	}

	result, err := s.services.Scan.Bind(ctx, input.Body.Token, input.Body.Name, input.Body.Section, input.Body.Category)
	if err != nil {
		return nil, err
	}
	return &ScanResolveOutput{Body: *result}, nil
}

func (s *Server) handleScanCommit(ctx context.Context, input *ScanCommitInput) (*ScanCommitOutput, error) {
	if err := s.validator.Validate(&input.Body); err != nil {
		return nil, err
	}

	entry, err := s.services.Scan.Commit(ctx, input.Body.Token, input.Body.Action, input.Body.Quantity)
	if err != nil {
		return nil, err
	}
	return &ScanCommitOutput{Body: *entry}, nil
}

func (s *Server) handleScanCancel(ctx context.Context, input *ScanCancelInput) (*ScanCancelOutput, error) {
	if err := s.validator.Validate(&input.Body); err != nil {
		return nil, err
	}

	if err := s.services.Scan.Cancel(ctx, input.Body.Token); err != nil {
		return nil, err
	}

	out := &ScanCancelOutput{}
	out.Body.Cancelled = true
	return out, nil
}

func (s *Server) handleScanHistory(ctx context.Context, _ *struct{}) (*ScanHistoryOutput, error) {
	history, err := s.services.Scan.History(ctx)
	if err != nil {
		return nil, err
	}
	return &ScanHistoryOutput{Body: *history}, nil
}

func (s *Server) handleScanHistoryClear(ctx context.Context, _ *struct{}) (*ScanHistoryClearOutput, error) {
	if err := s.services.Scan.ClearHistory(ctx); err != nil {
		return nil, err
	}

	out := &ScanHistoryClearOutput{}
	out.Body.Cleared = true
	return out, nil
}

func (s *Server) handleScanConfig(_ context.Context, _ *struct{}) (*ScanConfigOutput, error) {
	return &ScanConfigOutput{Body: s.services.Scan.Settings()}, nil
}
