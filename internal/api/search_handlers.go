package api

import (
	"net/http"
	"strconv"

	"github.com/prepstock/prepstock-server/internal/http/response"
	"github.com/prepstock/prepstock-server/internal/search"
)

// handleSearch runs a full-text item search. An empty q with a section
// filter lists the whole section; a bare request matches everything up to
// the limit.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := search.DefaultSearchParams()
	params.Query = r.URL.Query().Get("q")
	params.Section = r.URL.Query().Get("section")
	params.Category = r.URL.Query().Get("category")

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 100 {
			response.BadRequest(w, "limit must be between 1 and 100", s.logger)
			return
		}
		params.Limit = limit
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			response.BadRequest(w, "offset must be non-negative", s.logger)
			return
		}
		params.Offset = offset
	}

	result, err := s.services.Inventory.Search(r.Context(), params)
	if err != nil {
		s.logger.Error("Search failed", "error", err, "query", params.Query)
		response.InternalError(w, "Search failed", s.logger)
		return
	}

	response.Success(w, result, s.logger)
}
