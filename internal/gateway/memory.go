package gateway

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Memory is an in-memory Gateway used by tests and the CLI demo mode.
// It applies the same per-field-set merge and publish-on-write semantics
// as the Postgres-backed implementation.
type Memory struct {
	mu      sync.Mutex
	records map[uuid.UUID]*types.ResumeRecord
	users   map[string]*types.User
}

// NewMemory returns an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[uuid.UUID]*types.ResumeRecord),
		users:   make(map[string]*types.User),
	}
}

// CreateResume stores a new resume record.
func (m *Memory) CreateResume(_ context.Context, doc types.ResumeDocument) (*types.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc.Normalize()
	now := time.Now()
	rec := &types.ResumeRecord{
		ID:             uuid.New(),
		ResumeDocument: doc.Clone(),
		CreatedAt:      now,
		UpdatedAt:      now,
		PublishedAt:    &now,
	}
	m.records[rec.ID] = rec
	out := *rec
	out.ResumeDocument = rec.ResumeDocument.Clone()
	return &out, nil
}

// ListResumesByOwnerEmail returns records whose email matches.
func (m *Memory) ListResumesByOwnerEmail(_ context.Context, email string) ([]types.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []types.ResumeRecord
	for _, rec := range m.records {
		if rec.Email == email {
			cp := *rec
			cp.ResumeDocument = rec.ResumeDocument.Clone()
			out = append(out, cp)
		}
	}
	return out, nil
}

// FetchResumeByPublicID returns the record keyed by resumeId, or nil.
func (m *Memory) FetchResumeByPublicID(_ context.Context, resumeID string) (*types.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.records {
		if rec.ResumeID == resumeID {
			cp := *rec
			cp.ResumeDocument = rec.ResumeDocument.Clone()
			return &cp, nil
		}
	}
	return nil, nil
}

// FetchResumeByInternalID returns the record keyed by internal id, or nil.
func (m *Memory) FetchResumeByInternalID(_ context.Context, id uuid.UUID) (*types.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.ResumeDocument = rec.ResumeDocument.Clone()
	return &cp, nil
}

// UpdateResumeSlice merges the patch's field set into the stored resume.
func (m *Memory) UpdateResumeSlice(_ context.Context, resumeID string, patch types.ResumePatch) (*types.ResumeRecord, error) {
	if patch.IsEmpty() {
		return nil, BadRequest("no fields to update")
	}
	if err := patch.ValidateProjects(); err != nil {
		return nil, BadRequest(err.Error())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.records {
		if rec.ResumeID != resumeID {
			continue
		}
		patch.Apply(&rec.ResumeDocument)
		now := time.Now()
		rec.UpdatedAt = now
		rec.PublishedAt = &now
		cp := *rec
		cp.ResumeDocument = rec.ResumeDocument.Clone()
		return &cp, nil
	}
	return nil, NotFound(resumeID)
}

// DeleteResume removes the record with the given internal id.
func (m *Memory) DeleteResume(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &Error{StatusCode: http.StatusNotFound, Message: "no resume found for id: " + id.String()}
	}
	delete(m.records, id)
	return nil
}

// CreateUser stores a new account keyed by email.
func (m *Memory) CreateUser(_ context.Context, name, email, passwordHash string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[email]; ok {
		return nil, BadRequest("email already registered: " + email)
	}
	now := time.Now()
	u := &types.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[email] = u
	cp := *u
	return &cp, nil
}

// GetUserByEmail returns the account with the given email, or nil.
func (m *Memory) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
