package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// handleCreateResume creates a new resume shell: a title, an owner email
// and a public resumeId, with every section empty.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	doc := types.NewResumeDocument(req.ResumeTitle, req.Email)
	if req.ResumeID != "" {
		doc.ResumeID = req.ResumeID
	}

	rec, err := s.gw.CreateResume(r.Context(), doc)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, rec)
}

// handleListResumes lists resumes owned by the email given as a query
// parameter.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		s.errorResponse(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	records, err := s.gw.ListResumesByOwnerEmail(r.Context(), email)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if records == nil {
		records = []types.ResumeRecord{}
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleGetResume fetches a resume by its internal storage id.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return
	}

	rec, err := s.gw.FetchResumeByInternalID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleGetResumeByResumeID fetches a resume by its public identifier.
func (s *Server) handleGetResumeByResumeID(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchByResumeID(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleUpdateResume merges one section save into the stored resume.
// Unknown fields are rejected so a misspelled section name cannot be
// silently dropped.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	resumeID := r.PathValue("resumeId")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateResumePatch(body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch types.ResumePatch
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if patch.IsEmpty() {
		s.errorResponse(w, http.StatusBadRequest, "Update payload carries no fields")
		return
	}

	rec, err := s.gw.UpdateResumeSlice(r.Context(), resumeID, patch)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteResume removes a resume by its internal id.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return
	}

	if err := s.gw.DeleteResume(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePreview renders the stored resume as the preview HTML document.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchByResumeID(w, r)
	if !ok {
		return
	}

	html, err := preview.RenderHTML(rec.ResumeDocument)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// handleExportPDF renders the stored resume to PDF via the preview HTML.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if s.pdfRenderer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "PDF export is not configured")
		return
	}

	rec, ok := s.fetchByResumeID(w, r)
	if !ok {
		return
	}

	html, err := preview.RenderHTML(rec.ResumeDocument)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview")
		return
	}

	pdf, err := s.pdfRenderer.RenderPDF(r.Context(), html)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// fetchByResumeID loads the resume named by the resumeId path value,
// writing the error response itself when the load fails.
func (s *Server) fetchByResumeID(w http.ResponseWriter, r *http.Request) (*types.ResumeRecord, bool) {
	resumeID := r.PathValue("resumeId")

	rec, err := s.gw.FetchResumeByPublicID(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return nil, false
	}
	return rec, true
}
