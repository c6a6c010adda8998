package server

import (
	"encoding/json"
	"net/http"
)

// SuggestSummaryRequest asks for summary drafts for a job title.
type SuggestSummaryRequest struct {
	JobTitle string `json:"jobTitle"`
}

// handleSuggestSummary drafts one summary per experience level for the
// given job title.
func (s *Server) handleSuggestSummary(w http.ResponseWriter, r *http.Request) {
	if s.summarizer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Summary suggestions are not configured")
		return
	}

	var req SuggestSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.JobTitle == "" {
		s.errorResponse(w, http.StatusBadRequest, "jobTitle is required")
		return
	}

	suggestions, err := s.summarizer.SuggestSummaries(r.Context(), req.JobTitle)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate suggestions: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, suggestions)
}
