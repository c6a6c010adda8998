package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestNewSeedsDefaults(t *testing.T) {
	s := New(nil)

	doc := s.Resume()
	assert.NotNil(t, doc.Education)
	assert.Empty(t, doc.Education)
	assert.Equal(t, types.DefaultThemeColor, doc.ThemeColor)
	assert.Equal(t, types.DefaultThemeColor, s.ThemeColor())
}

func TestResumeReturnsCopy(t *testing.T) {
	initial := types.NewResumeDocument("T", "owner@example.com")
	initial.Education = []types.EducationEntry{{UniversityName: "MIT"}}
	s := New(&initial)

	doc := s.Resume()
	doc.Education[0].UniversityName = "Stanford"

	assert.Equal(t, "MIT", s.Resume().Education[0].UniversityName)
}

func TestSetResumeNotifiesSubscribers(t *testing.T) {
	s := New(nil)

	var calls int
	unsubscribe := s.Subscribe(func() { calls++ })

	doc := s.Resume()
	doc.Summary = "updated"
	s.SetResume(doc)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "updated", s.Resume().Summary)

	unsubscribe()
	s.SetResume(doc)
	assert.Equal(t, 1, calls)
}

func TestSubscriberCanReadStoreBack(t *testing.T) {
	s := New(nil)

	var seen string
	s.Subscribe(func() { seen = s.Resume().Summary })

	doc := s.Resume()
	doc.Summary = "visible to subscriber"
	s.SetResume(doc)

	assert.Equal(t, "visible to subscriber", seen)
}

func TestSetThemeColorPaletteGate(t *testing.T) {
	s := New(nil)

	var calls int
	s.Subscribe(func() { calls++ })

	s.SetThemeColor("#ef4444")
	assert.Equal(t, types.ThemeColor("#ef4444"), s.ThemeColor())
	assert.Equal(t, types.ThemeColor("#ef4444"), s.Resume().ThemeColor)
	assert.Equal(t, 1, calls)

	// Off-palette values are ignored entirely.
	s.SetThemeColor("#ffffff")
	assert.Equal(t, types.ThemeColor("#ef4444"), s.ThemeColor())
	assert.Equal(t, 1, calls)
}

func TestSetResumePreservesSelectedTheme(t *testing.T) {
	s := New(nil)
	s.SetThemeColor("#10b981")

	// A document write-back carrying a stale theme does not undo the
	// selection; the theme is owned separately.
	doc := s.Resume()
	doc.ThemeColor = types.DefaultThemeColor
	doc.Summary = "edited"
	s.SetResume(doc)

	assert.Equal(t, types.ThemeColor("#10b981"), s.Resume().ThemeColor)
}

func TestSeedGatesOffPaletteTheme(t *testing.T) {
	initial := types.NewResumeDocument("T", "owner@example.com")
	initial.ThemeColor = "#123456"
	s := New(&initial)

	// A loaded document carrying a non-palette color falls back to the
	// default; the store never holds an off-palette value.
	assert.Equal(t, types.DefaultThemeColor, s.ThemeColor())
	assert.Equal(t, types.DefaultThemeColor, s.Resume().ThemeColor)

	fresh := types.NewResumeDocument("T", "owner@example.com")
	fresh.ThemeColor = "not-a-color"
	s.Reseed(&fresh)
	assert.Equal(t, types.DefaultThemeColor, s.ThemeColor())
}

func TestReseedReplacesEverything(t *testing.T) {
	initial := types.NewResumeDocument("T", "owner@example.com")
	s := New(&initial)

	doc := s.Resume()
	doc.Summary = "in-flight edit"
	s.SetResume(doc)

	fresh := types.NewResumeDocument("T", "owner@example.com")
	fresh.Summary = "stored summary"
	fresh.ThemeColor = "#8b5cf6"

	var notified bool
	s.Subscribe(func() { notified = true })
	s.Reseed(&fresh)

	require.True(t, notified)
	assert.Equal(t, "stored summary", s.Resume().Summary)
	assert.Equal(t, types.ThemeColor("#8b5cf6"), s.ThemeColor())
}

func TestSubscribersRunInRegistrationOrder(t *testing.T) {
	s := New(nil)

	var order []int
	s.Subscribe(func() { order = append(order, 1) })
	s.Subscribe(func() { order = append(order, 2) })
	s.Subscribe(func() { order = append(order, 3) })

	s.SetResume(s.Resume())
	assert.Equal(t, []int{1, 2, 3}, order)
}
