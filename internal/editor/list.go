package editor

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// listEditor is the shared machinery behind the education, experience and
// projects editors: one ordered list of entries, per-index field edits,
// append-blank add, remove-last-only remove, and a field-set-scoped save.
// The concrete editors parameterize it with their slice accessors.
type listEditor[T any] struct {
	base
	entries []T

	read     func(doc types.ResumeDocument) []T
	write    func(doc *types.ResumeDocument, entries []T)
	patch    func(entries []T) types.ResumePatch
	blank    func() T
	validate func(entries []T) error
	setField func(entry *T, name, value string) error
	setDate  func(entry *T, name string, d *types.Date) error

	okMsg   string
	failMsg string
}

// Entries returns a copy of the editor's local form state.
func (e *listEditor[T]) Entries() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copyEntries()
}

// copyEntries must be called with mu held.
func (e *listEditor[T]) copyEntries() []T {
	out := make([]T, len(e.entries))
	copy(out, e.entries)
	return out
}

// Sync re-derives the local list from the store's document. An absent or
// empty slice resets to exactly one blank entry, so the form always has
// something to edit.
func (e *listEditor[T]) Sync() {
	slice := e.read(e.store.Resume())

	e.mu.Lock()
	defer e.mu.Unlock()
	if len(slice) == 0 {
		e.entries = []T{e.blank()}
		return
	}
	e.entries = make([]T, len(slice))
	copy(e.entries, slice)
}

// SetEntryField updates one named field of the entry at index, leaving
// sibling entries untouched, and writes the whole list through to the
// store for the live preview.
func (e *listEditor[T]) SetEntryField(index int, name, value string) error {
	e.mu.Lock()
	if index < 0 || index >= len(e.entries) {
		e.mu.Unlock()
		return fmt.Errorf("no %s entry at index %d", e.section, index)
	}
	if err := e.setField(&e.entries[index], name, value); err != nil {
		e.mu.Unlock()
		return err
	}
	entries := e.copyEntries()
	e.mu.Unlock()

	e.writeThrough(entries)
	return nil
}

// SetEntryDate updates one date field of the entry at index. Editors
// without date fields reject the call.
func (e *listEditor[T]) SetEntryDate(index int, name string, d *types.Date) error {
	if e.setDate == nil {
		return fmt.Errorf("%s entries have no date fields", e.section)
	}
	e.mu.Lock()
	if index < 0 || index >= len(e.entries) {
		e.mu.Unlock()
		return fmt.Errorf("no %s entry at index %d", e.section, index)
	}
	if err := e.setDate(&e.entries[index], name, d); err != nil {
		e.mu.Unlock()
		return err
	}
	entries := e.copyEntries()
	e.mu.Unlock()

	e.writeThrough(entries)
	return nil
}

// AddEntry appends exactly one blank entry and propagates to the store.
func (e *listEditor[T]) AddEntry() {
	e.mu.Lock()
	e.entries = append(e.entries, e.blank())
	entries := e.copyEntries()
	e.mu.Unlock()

	e.writeThrough(entries)
}

// RemoveLastEntry removes the last entry and propagates to the store.
// It is refused when exactly one entry remains: the form never edits an
// empty list.
func (e *listEditor[T]) RemoveLastEntry() bool {
	e.mu.Lock()
	if len(e.entries) <= 1 {
		e.mu.Unlock()
		return false
	}
	e.entries = e.entries[:len(e.entries)-1]
	entries := e.copyEntries()
	e.mu.Unlock()

	e.writeThrough(entries)
	return true
}

// Save validates the list where the section requires it, then persists
// only this editor's field set. Validation failures are surfaced to the
// caller before any request is issued.
func (e *listEditor[T]) Save(ctx context.Context) error {
	saved := e.Entries()
	if e.validate != nil {
		if err := e.validate(saved); err != nil {
			return err
		}
	}
	return e.saveSlice(ctx, e.patch(saved), func(doc *types.ResumeDocument) {
		e.write(doc, saved)
	}, e.okMsg, e.failMsg)
}

// writeThrough replaces the document's slice with the given list. Local
// state drives the form; the store update drives the live preview. mu is
// not held here: the store notification resyncs this editor and its
// siblings on the calling goroutine.
func (e *listEditor[T]) writeThrough(entries []T) {
	doc := e.store.Resume()
	e.write(&doc, entries)
	e.store.SetResume(doc)
}
