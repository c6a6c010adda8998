// Package editor implements the six section editors and the step
// sequencer that orders them into a wizard. Each editor owns one slice of
// the resume: edits write through to the shared store immediately for the
// live preview, while persistence is an explicit per-section save against
// the remote resume gateway.
package editor

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrSaveInFlight is returned when a save is requested while a previous
// save for the same editor has not completed.
var ErrSaveInFlight = errors.New("save already in flight for this section")

// ErrNoResumeID is returned when a save is requested before the document
// has a public identifier; the original surfaces this as an error toast.
var ErrNoResumeID = errors.New("resume not found for update")

// Notifier surfaces save outcomes to the user. Every completed save
// attempt produces exactly one Success or one Error call.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

// Success logs a success notification.
func (LogNotifier) Success(msg string) { log.Printf("[notify] %s", msg) }

// Error logs an error notification.
func (LogNotifier) Error(msg string) { log.Printf("[notify] ERROR: %s", msg) }

// SectionEditor is the contract every section editor fulfills: the
// sequencer binds steps to it and the session resyncs it on store change.
type SectionEditor interface {
	// Section returns the slice name the editor owns.
	Section() string
	// Sync re-derives local form state from the store's document.
	Sync()
	// Save persists the editor's slice to the remote resume gateway.
	Save(ctx context.Context) error
}

// base carries the shared wiring of every section editor: the store it
// writes through to, the gateway it saves to, the public identifier, and
// the single-save-in-flight guard. mu also guards the concrete editor's
// local form state: a confirmed save resyncs every editor through the
// store subscription, so Sync may run on another goroutine than the
// form's own edits. mu is never held across a store call.
type base struct {
	section  string
	store    *store.Store
	gw       gateway.Gateway
	resumeID string
	notify   Notifier

	mu     sync.Mutex
	saving bool

	goToPreviousStep func()
	goToNextStep     func()
}

func newBase(section string, st *store.Store, gw gateway.Gateway, resumeID string, notify Notifier) base {
	if notify == nil {
		notify = LogNotifier{}
	}
	return base{section: section, store: st, gw: gw, resumeID: resumeID, notify: notify}
}

// Section returns the slice name the editor owns.
func (b *base) Section() string { return b.section }

// Saving reports whether a save for this editor is in flight.
func (b *base) Saving() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saving
}

// SetNavigation installs the step-navigation callbacks. A nil callback
// means the corresponding control is absent for this editor.
func (b *base) SetNavigation(previous, next func()) {
	b.goToPreviousStep = previous
	b.goToNextStep = next
}

// GoToPreviousStep moves the wizard back one step; a no-op when the
// editor has no back control. Navigation never saves implicitly.
func (b *base) GoToPreviousStep() {
	if b.goToPreviousStep != nil {
		b.goToPreviousStep()
	}
}

// GoToNextStep moves the wizard forward one step; a no-op when the
// editor has no next control.
func (b *base) GoToNextStep() {
	if b.goToNextStep != nil {
		b.goToNextStep()
	}
}

func (b *base) beginSave() error {
	if b.resumeID == "" {
		b.notify.Error("Resume not found for update.")
		return ErrNoResumeID
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.saving {
		return ErrSaveInFlight
	}
	b.saving = true
	return nil
}

func (b *base) endSave() {
	b.mu.Lock()
	b.saving = false
	b.mu.Unlock()
}

// saveSlice runs the shared save protocol: push the patch (scoped to this
// editor's field set only), and on success write the exact saved slice
// back into the store so preview and store match what is now durably
// persisted. On failure the in-memory store is left untouched; the user
// keeps their edits and may retry.
func (b *base) saveSlice(ctx context.Context, patch types.ResumePatch, confirm func(doc *types.ResumeDocument), okMsg, failMsg string) error {
	if err := b.beginSave(); err != nil {
		return err
	}
	defer b.endSave()

	if _, err := b.gw.UpdateResumeSlice(ctx, b.resumeID, patch); err != nil {
		b.notify.Error(failMsg)
		return err
	}

	doc := b.store.Resume()
	confirm(&doc)
	b.store.SetResume(doc)
	b.notify.Success(okMsg)
	return nil
}
