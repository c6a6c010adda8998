// Package store holds the single in-memory source of truth for one
// resume editing session: the document being edited plus the selected
// theme color, with change notification for live-preview subscribers.
package store

import (
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

// Store holds exactly one ResumeDocument and the current theme color.
// All mutations are whole-document replacements: callers read the current
// value, alter the fields they own, and write the whole copy back. There
// is no partial-patch API at this layer.
type Store struct {
	mu     sync.Mutex
	doc    types.ResumeDocument
	theme  types.ThemeColor
	subs   map[int]func()
	nextID int
}

// New constructs a store seeded from initial. A nil initial falls back to
// a fixed empty default; the theme color is normalized either way.
func New(initial *types.ResumeDocument) *Store {
	s := &Store{subs: make(map[int]func())}
	s.seed(initial)
	return s
}

func (s *Store) seed(initial *types.ResumeDocument) {
	if initial == nil {
		s.doc = emptyDocument()
	} else {
		s.doc = initial.Clone()
		s.doc.Normalize()
	}
	// Loaded documents may carry any string as a theme; the store only
	// ever holds palette values.
	if !s.doc.ThemeColor.IsPaletteColor() {
		s.doc.ThemeColor = types.DefaultThemeColor
	}
	s.theme = s.doc.ThemeColor
}

func emptyDocument() types.ResumeDocument {
	return types.ResumeDocument{
		Education:  []types.EducationEntry{},
		Experience: []types.ExperienceEntry{},
		Projects:   []types.ProjectEntry{},
		ThemeColor: types.DefaultThemeColor,
	}
}

// Resume returns a copy of the current document.
func (s *Store) Resume() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// SetResume replaces the whole document and notifies subscribers.
func (s *Store) SetResume(doc types.ResumeDocument) {
	s.mu.Lock()
	s.doc = doc.Clone()
	s.doc.ThemeColor = s.theme
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// ThemeColor returns the current theme color.
func (s *Store) ThemeColor() types.ThemeColor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetThemeColor switches the theme. Values outside the fixed palette are
// ignored, keeping the palette invariant intact.
func (s *Store) SetThemeColor(c types.ThemeColor) {
	if !c.IsPaletteColor() {
		return
	}
	s.mu.Lock()
	s.theme = c
	s.doc.ThemeColor = c
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// Reseed replaces both the document and the theme color from a freshly
// loaded value, discarding any in-flight edits. It is used when an async
// fetch completes after the session already started rendering.
func (s *Store) Reseed(initial *types.ResumeDocument) {
	s.mu.Lock()
	s.seed(initial)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// Subscribe registers fn to run after every mutation, in mutation order.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs must be called with the lock held. Subscribers run outside
// the lock so they can read the store back without deadlocking.
func (s *Store) snapshotSubs() []func() {
	out := make([]func(), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
