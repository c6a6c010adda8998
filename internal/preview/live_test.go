package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestLiveFollowsStore(t *testing.T) {
	doc := types.NewResumeDocument("T", "owner@example.com")
	st := store.New(&doc)

	live := NewLive(st)
	defer live.Close()

	require.NotContains(t, live.HTML(), "data-section=\"summary\"")

	updated := st.Resume()
	updated.Summary = "Engineer who ships."
	st.SetResume(updated)

	assert.Contains(t, live.HTML(), "Engineer who ships.")

	st.SetThemeColor("#10b981")
	assert.Contains(t, live.HTML(), "#10b981")
}

func TestLiveCloseDetaches(t *testing.T) {
	st := store.New(nil)
	live := NewLive(st)

	before := live.HTML()
	live.Close()

	doc := st.Resume()
	doc.Summary = "after close"
	st.SetResume(doc)

	assert.Equal(t, before, live.HTML())
}
