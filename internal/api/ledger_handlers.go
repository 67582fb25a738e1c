package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prepstock/prepstock-server/internal/http/response"
)

// SetCountRequest records a raw count input. The value is intentionally
// unvalidated beyond length; garbage input is stored as typed and simply
// derives no shortfall.
type SetCountRequest struct {
	Count string `json:"count" validate:"max=20"`
}

// SetStatusRequest records an explicit need decision.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=needed not-needed none"`
}

// handleGetLedger returns all session entries with derived needs.
func (s *Server) handleGetLedger(w http.ResponseWriter, r *http.Request) {
	view, err := s.services.Inventory.Ledger(r.Context())
	if err != nil {
		s.logger.Error("Failed to load ledger", "error", err)
		response.InternalError(w, "Failed to load ledger", s.logger)
		return
	}
	response.Success(w, view, s.logger)
}

// handleSetCount records a count against an item name.
func (s *Server) handleSetCount(w http.ResponseWriter, r *http.Request) {
	var req SetCountRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.services.Inventory.SetCount(r.Context(), chi.URLParam(r, "name"), req.Count); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"updated": true,
	}, s.logger)
}

// handleSetStatus records a need decision against an item name.
func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.services.Inventory.SetStatus(r.Context(), chi.URLParam(r, "name"), req.Status); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"updated": true,
	}, s.logger)
}

// handleResetLedger clears all counts and statuses for a fresh session.
func (s *Server) handleResetLedger(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Inventory.ResetCounts(r.Context()); err != nil {
		s.logger.Error("Failed to reset ledger", "error", err)
		response.InternalError(w, "Failed to reset ledger", s.logger)
		return
	}
	response.NoContent(w)
}
