package editor

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// PersonalForm is the personal-details slice as the editor holds it.
// Absent values are always empty strings so the form stays controlled.
type PersonalForm struct {
	CandidateName string
	JobTitle      string
	Address       string
	Phone         string
	Email         string
	Linkedin      string
	Github        string
}

// PersonalEditor edits the scalar personal-details fields.
type PersonalEditor struct {
	base
	form PersonalForm
}

// NewPersonalEditor builds the personal-details editor bound to the store
// and gateway for one resume.
func NewPersonalEditor(st *store.Store, gw gateway.Gateway, resumeID string, notify Notifier) *PersonalEditor {
	e := &PersonalEditor{base: newBase("personal", st, gw, resumeID, notify)}
	e.Sync()
	return e
}

// Form returns the editor's local form state.
func (e *PersonalEditor) Form() PersonalForm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// Sync re-derives the local form from the store's document.
func (e *PersonalEditor) Sync() {
	doc := e.store.Resume()
	form := PersonalForm{
		CandidateName: doc.CandidateName,
		JobTitle:      doc.JobTitle,
		Address:       doc.Address,
		Phone:         doc.Phone,
		Email:         doc.Email,
		Linkedin:      doc.Linkedin,
		Github:        doc.Github,
	}

	e.mu.Lock()
	e.form = form
	e.mu.Unlock()
}

// SetField updates one named personal field and writes the whole form
// through to the store for the live preview.
func (e *PersonalEditor) SetField(name, value string) error {
	e.mu.Lock()
	switch name {
	case "candidateName":
		e.form.CandidateName = value
	case "jobTitle":
		e.form.JobTitle = value
	case "address":
		e.form.Address = value
	case "phone":
		e.form.Phone = value
	case "email":
		e.form.Email = value
	case "linkedin":
		e.form.Linkedin = value
	case "github":
		e.form.Github = value
	default:
		e.mu.Unlock()
		return fmt.Errorf("unknown personal field %q", name)
	}
	form := e.form
	e.mu.Unlock()

	e.writeThrough(form)
	return nil
}

func (e *PersonalEditor) writeThrough(form PersonalForm) {
	doc := e.store.Resume()
	applyPersonal(&doc, form)
	e.store.SetResume(doc)
}

func applyPersonal(doc *types.ResumeDocument, f PersonalForm) {
	doc.CandidateName = f.CandidateName
	doc.JobTitle = f.JobTitle
	doc.Address = f.Address
	doc.Phone = f.Phone
	doc.Email = f.Email
	doc.Linkedin = f.Linkedin
	doc.Github = f.Github
}

// Save persists exactly the seven personal fields.
func (e *PersonalEditor) Save(ctx context.Context) error {
	saved := e.Form()
	patch := types.ResumePatch{
		CandidateName: &saved.CandidateName,
		JobTitle:      &saved.JobTitle,
		Address:       &saved.Address,
		Phone:         &saved.Phone,
		Email:         &saved.Email,
		Linkedin:      &saved.Linkedin,
		Github:        &saved.Github,
	}
	return e.saveSlice(ctx, patch, func(doc *types.ResumeDocument) {
		applyPersonal(doc, saved)
	}, "Details updated", "Failed to update details")
}
