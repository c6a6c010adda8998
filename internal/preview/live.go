package preview

import (
	"log"
	"sync"

	"github.com/jonathan/resume-builder/internal/store"
)

// Live keeps a rendered preview in lockstep with the store: it subscribes
// to store changes and re-renders on every mutation, so the preview
// always reflects the most recent edit before the next one is processed.
type Live struct {
	store *store.Store

	mu   sync.Mutex
	html string

	unsubscribe func()
}

// NewLive renders the current document and subscribes to the store.
func NewLive(st *store.Store) *Live {
	l := &Live{store: st}
	l.render()
	l.unsubscribe = st.Subscribe(l.render)
	return l
}

func (l *Live) render() {
	html, err := RenderHTML(l.store.Resume())
	if err != nil {
		// Rendering is deterministic; a failure here means a broken
		// template, so keep the previous output and log it.
		log.Printf("preview render failed: %v", err)
		return
	}
	l.mu.Lock()
	l.html = html
	l.mu.Unlock()
}

// HTML returns the latest rendered preview.
func (l *Live) HTML() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.html
}

// Close detaches the renderer from the store.
func (l *Live) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}
