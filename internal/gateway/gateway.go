// Package gateway defines the remote resume gateway: the boundary the
// editing core calls to persist section slices and fetch resumes.
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Gateway is the external service boundary for persisting and fetching
// resumes. Fetch methods return (nil, nil) when no resume matches, so
// callers can distinguish not-found from transport failure.
type Gateway interface {
	// CreateResume stores a new resume. The caller supplies the
	// client-generated public resumeId on the document.
	CreateResume(ctx context.Context, doc types.ResumeDocument) (*types.ResumeRecord, error)

	// ListResumesByOwnerEmail returns every resume owned by the email.
	ListResumesByOwnerEmail(ctx context.Context, email string) ([]types.ResumeRecord, error)

	// FetchResumeByPublicID returns the resume keyed by its public
	// identifier, or nil when no match exists.
	FetchResumeByPublicID(ctx context.Context, resumeID string) (*types.ResumeRecord, error)

	// FetchResumeByInternalID returns the resume keyed by its internal
	// storage identifier, or nil when no match exists.
	FetchResumeByInternalID(ctx context.Context, id uuid.UUID) (*types.ResumeRecord, error)

	// UpdateResumeSlice merges exactly the patch's field set into the
	// stored resume identified by resumeID and returns the updated
	// record. Concurrent calls for different field sets never overwrite
	// each other; within one field set last writer wins.
	UpdateResumeSlice(ctx context.Context, resumeID string, patch types.ResumePatch) (*types.ResumeRecord, error)

	// DeleteResume removes the resume with the given internal id.
	DeleteResume(ctx context.Context, id uuid.UUID) error
}

// Error is the single failure shape gateway calls surface: an HTTP-like
// status code plus a human-readable message. The editing core treats
// every failure uniformly and never branches on the status code.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway error (%d): %s", e.StatusCode, e.Message)
}

// NotFound builds a not-found gateway error.
func NotFound(resumeID string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Message: "no resume found for resumeId: " + resumeID}
}

// BadRequest builds a validation-style gateway error.
func BadRequest(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

// Internal wraps an unexpected failure as a gateway error.
func Internal(err error) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: err.Error()}
}
