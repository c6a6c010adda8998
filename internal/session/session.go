// Package session owns the in-memory editing state for one resume: the
// store, the six section editors ordered by the step sequencer, and the
// live preview. A session is created when the edit view opens and
// discarded when it closes.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/store"
)

// ErrResumeNotFound is returned when no resume matches the public
// identifier; the caller renders a not-found state and does not retry.
var ErrResumeNotFound = fmt.Errorf("resume not found")

// Session ties together the store, editors, sequencer and preview for one
// resume identified by its public resumeId.
type Session struct {
	gw       gateway.Gateway
	resumeID string

	store     *store.Store
	sequencer *editor.Sequencer
	live      *preview.Live

	// fetchSeq guards against stale fetches: a fetch result is committed
	// only if no newer fetch started while it was in flight.
	fetchSeq atomic.Int64

	closeOnce   sync.Once
	unsubscribe func()
}

// Open fetches the resume by its public identifier, seeds the store from
// the result and builds the editing surface around it.
func Open(ctx context.Context, gw gateway.Gateway, resumeID string, notify editor.Notifier) (*Session, error) {
	rec, err := gw.FetchResumeByPublicID(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume %s: %w", resumeID, err)
	}
	if rec == nil {
		return nil, ErrResumeNotFound
	}

	doc := rec.ResumeDocument
	st := store.New(&doc)
	s := &Session{
		gw:       gw,
		resumeID: resumeID,
		store:    st,
	}
	s.sequencer = editor.NewSequencer(st, gw, resumeID, notify)

	// Editors re-derive their form state on every store change, so a
	// reseed or a sibling's confirmed save reaches all of them.
	editors := s.sequencer.Editors()
	s.unsubscribe = st.Subscribe(func() {
		for _, e := range editors {
			e.Sync()
		}
	})

	s.live = preview.NewLive(st)
	return s, nil
}

// Store returns the session's resume state store.
func (s *Session) Store() *store.Store { return s.store }

// Sequencer returns the step sequencer over the six section editors.
func (s *Session) Sequencer() *editor.Sequencer { return s.sequencer }

// Preview returns the live preview renderer.
func (s *Session) Preview() *preview.Live { return s.live }

// ResumeID returns the public identifier the session was opened with.
func (s *Session) ResumeID() string { return s.resumeID }

// Reload re-fetches the resume and reseeds the store, discarding
// in-flight edits. If another Reload starts while this one's fetch is
// outstanding, the older result is discarded so a stale response never
// overwrites fresher state.
func (s *Session) Reload(ctx context.Context) error {
	seq := s.fetchSeq.Add(1)

	rec, err := s.gw.FetchResumeByPublicID(ctx, s.resumeID)
	if err != nil {
		return fmt.Errorf("failed to reload resume %s: %w", s.resumeID, err)
	}
	if rec == nil {
		return ErrResumeNotFound
	}

	if s.fetchSeq.Load() != seq {
		return nil
	}
	doc := rec.ResumeDocument
	s.store.Reseed(&doc)
	return nil
}

// SaveAll saves every section concurrently. Each save is an independent
// request scoped to its own field set, so the saves cannot corrupt each
// other; there is no ordering guarantee between them.
func (s *Session) SaveAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, e := range s.sequencer.Editors() {
		g.Go(func() error {
			return e.Save(ctx)
		})
	}
	return g.Wait()
}

// Close tears the session down; the in-memory document's lifetime ends
// here.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		s.live.Close()
	})
}
