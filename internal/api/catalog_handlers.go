package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/prepstock/prepstock-server/internal/http/response"
)

// === DTOs ===

// AddItemRequest creates a permanent catalog item in an existing category.
type AddItemRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Par      string `json:"par" validate:"omitempty,max=20"`
	Section  string `json:"section" validate:"required"`
	Category string `json:"category" validate:"required,max=120"`
}

// AddTemporaryItemRequest creates an ad-hoc item pending promotion.
type AddTemporaryItemRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// PromoteItemRequest moves a temporary item into the permanent catalog.
type PromoteItemRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Section  string `json:"section" validate:"required"`
	Category string `json:"category" validate:"required,max=120"`
}

// UpdateParRequest sets or clears an item's target level.
type UpdateParRequest struct {
	Par string `json:"par" validate:"omitempty,max=20"`
}

// decodeBody parses and validates a JSON request body.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.UnmarshalRead(r.Body, dst); err != nil {
		response.BadRequest(w, "Invalid JSON body", s.logger)
		return false
	}
	if err := s.validator.Validate(dst); err != nil {
		response.HandleError(w, err, s.logger)
		return false
	}
	return true
}

// indexParam parses the positional index path parameter.
func indexParam(r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// === Handlers ===

// handleGetCatalog returns the full catalog merged with session state.
func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	view, err := s.services.Inventory.Catalog(r.Context())
	if err != nil {
		s.logger.Error("Failed to load catalog", "error", err)
		response.InternalError(w, "Failed to load catalog", s.logger)
		return
	}
	response.Success(w, view, s.logger)
}

// handleGetSection returns one section's listing, optionally filtered by the
// q query parameter.
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	query := r.URL.Query().Get("q")

	view, err := s.services.Inventory.Section(r.Context(), section, query)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, view, s.logger)
}

// handleAddItem creates a permanent item.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	changed, err := s.services.Inventory.AddPermanentItem(r.Context(), req.Name, req.Par, req.Section, req.Category)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, map[string]any{
		"changed": changed,
	}, s.logger)
}

// handleAddTemporaryItem creates a temporary item and reports the section
// the client should switch to.
func (s *Server) handleAddTemporaryItem(w http.ResponseWriter, r *http.Request) {
	var req AddTemporaryItemRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	section, changed, err := s.services.Inventory.AddTemporaryItem(r.Context(), req.Name)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, map[string]any{
		"activeSection": section,
		"changed":       changed,
	}, s.logger)
}

// handlePromoteItem moves a temporary item into the permanent catalog.
func (s *Server) handlePromoteItem(w http.ResponseWriter, r *http.Request) {
	var req PromoteItemRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.services.Inventory.PromoteItem(r.Context(), req.Name, req.Section, req.Category); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"promoted": true,
	}, s.logger)
}

// handleRemoveItem deletes an item by position.
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(r)
	if !ok {
		response.BadRequest(w, "Invalid item index", s.logger)
		return
	}

	err := s.services.Inventory.RemoveItem(r.Context(), chi.URLParam(r, "section"), chi.URLParam(r, "category"), index)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// handleUpdatePar sets or clears an item's par level.
func (s *Server) handleUpdatePar(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(r)
	if !ok {
		response.BadRequest(w, "Invalid item index", s.logger)
		return
	}

	var req UpdateParRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	err := s.services.Inventory.UpdatePar(r.Context(), chi.URLParam(r, "section"), chi.URLParam(r, "category"), index, req.Par)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"updated": true,
	}, s.logger)
}
