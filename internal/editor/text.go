package editor

import (
	"context"

	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// textEditor is the shared machinery behind the summary and skills
// editors: a single free-text slice with write-through and a scoped save.
type textEditor struct {
	base
	text string

	read    func(doc types.ResumeDocument) string
	write   func(doc *types.ResumeDocument, v string)
	patch   func(v string) types.ResumePatch
	okMsg   string
	failMsg string
}

// Text returns the editor's local form state.
func (e *textEditor) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// SetText updates the local text and writes through to the store so the
// preview reflects the edit immediately.
func (e *textEditor) SetText(v string) {
	e.mu.Lock()
	e.text = v
	e.mu.Unlock()

	doc := e.store.Resume()
	e.write(&doc, v)
	e.store.SetResume(doc)
}

// Sync re-derives the local text from the store's document; an absent
// value resets to the empty string so the field stays controlled.
func (e *textEditor) Sync() {
	v := e.read(e.store.Resume())
	e.mu.Lock()
	e.text = v
	e.mu.Unlock()
}

// Save persists only this editor's field.
func (e *textEditor) Save(ctx context.Context) error {
	saved := e.Text()
	return e.saveSlice(ctx, e.patch(saved), func(doc *types.ResumeDocument) {
		e.write(doc, saved)
	}, e.okMsg, e.failMsg)
}

// SummaryEditor edits the professional summary. The text may carry simple
// markup from the rich-text control; it is passed through opaquely.
type SummaryEditor struct {
	textEditor
}

// NewSummaryEditor builds the summary editor bound to the store and
// gateway for one resume.
func NewSummaryEditor(st *store.Store, gw gateway.Gateway, resumeID string, notify Notifier) *SummaryEditor {
	e := &SummaryEditor{textEditor{
		base:  newBase("summary", st, gw, resumeID, notify),
		read:  func(doc types.ResumeDocument) string { return doc.Summary },
		write: func(doc *types.ResumeDocument, v string) { doc.Summary = v },
		patch: func(v string) types.ResumePatch {
			return types.ResumePatch{Summary: &v}
		},
		okMsg:   "Details updated",
		failMsg: "Failed to update details",
	}}
	e.Sync()
	return e
}

// SkillsEditor edits the freeform skills text.
type SkillsEditor struct {
	textEditor
}

// NewSkillsEditor builds the skills editor bound to the store and gateway
// for one resume.
func NewSkillsEditor(st *store.Store, gw gateway.Gateway, resumeID string, notify Notifier) *SkillsEditor {
	e := &SkillsEditor{textEditor{
		base:  newBase("skills", st, gw, resumeID, notify),
		read:  func(doc types.ResumeDocument) string { return doc.Skills },
		write: func(doc *types.ResumeDocument, v string) { doc.Skills = v },
		patch: func(v string) types.ResumePatch {
			return types.ResumePatch{Skills: &v}
		},
		okMsg:   "Skills updated!",
		failMsg: "Failed to update skills",
	}}
	e.Sync()
	return e
}
