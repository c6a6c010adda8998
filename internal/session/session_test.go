package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/types"
)

type silentNotifier struct{}

func (silentNotifier) Success(string) {}
func (silentNotifier) Error(string)   {}

func seedResume(t *testing.T, gw gateway.Gateway) *types.ResumeRecord {
	t.Helper()
	doc := types.NewResumeDocument("Frontend Engineer Resume", "owner@example.com")
	doc.Summary = "stored summary"
	rec, err := gw.CreateResume(context.Background(), doc)
	require.NoError(t, err)
	return rec
}

func TestOpenSeedsStoreFromGateway(t *testing.T) {
	gw := gateway.NewMemory()
	rec := seedResume(t, gw)

	s, err := Open(context.Background(), gw, rec.ResumeID, silentNotifier{})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, rec.ResumeID, s.ResumeID())
	assert.Equal(t, "stored summary", s.Store().Resume().Summary)
	assert.Contains(t, s.Preview().HTML(), "stored summary")
	assert.Len(t, s.Sequencer().Steps(), 6)
}

func TestOpenNotFound(t *testing.T) {
	gw := gateway.NewMemory()

	_, err := Open(context.Background(), gw, "nonexistent", silentNotifier{})
	assert.ErrorIs(t, err, ErrResumeNotFound)
}

func TestEditorsResyncOnReseed(t *testing.T) {
	gw := gateway.NewMemory()
	rec := seedResume(t, gw)

	s, err := Open(context.Background(), gw, rec.ResumeID, silentNotifier{})
	require.NoError(t, err)
	defer s.Close()

	// Edit locally, then persist a different value out of band and reload.
	summary := s.Sequencer().Editors()[1].(*editor.SummaryEditor)
	summary.SetText("in-flight edit")

	newSummary := "persisted elsewhere"
	_, err = gw.UpdateResumeSlice(context.Background(), rec.ResumeID, types.ResumePatch{Summary: &newSummary})
	require.NoError(t, err)

	require.NoError(t, s.Reload(context.Background()))
	assert.Equal(t, "persisted elsewhere", s.Store().Resume().Summary)
	assert.Equal(t, "persisted elsewhere", summary.Text())
	assert.Contains(t, s.Preview().HTML(), "persisted elsewhere")
}

func TestReloadNotFound(t *testing.T) {
	gw := gateway.NewMemory()
	rec := seedResume(t, gw)

	s, err := Open(context.Background(), gw, rec.ResumeID, silentNotifier{})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, gw.DeleteResume(context.Background(), rec.ID))
	assert.ErrorIs(t, s.Reload(context.Background()), ErrResumeNotFound)
}

// blockingGateway lets the test hold fetches open to interleave them.
type blockingGateway struct {
	*gateway.Memory
	fetches chan chan *types.ResumeRecord
}

func (g *blockingGateway) FetchResumeByPublicID(ctx context.Context, resumeID string) (*types.ResumeRecord, error) {
	reply := make(chan *types.ResumeRecord)
	g.fetches <- reply
	return <-reply, nil
}

func TestReloadDiscardsStaleFetch(t *testing.T) {
	mem := gateway.NewMemory()
	rec := seedResume(t, mem)
	gw := &blockingGateway{Memory: mem, fetches: make(chan chan *types.ResumeRecord)}

	// Open: answer the initial fetch with the stored record.
	type openResult struct {
		s   *Session
		err error
	}
	opened := make(chan openResult, 1)
	go func() {
		s, err := Open(context.Background(), gw, rec.ResumeID, silentNotifier{})
		opened <- openResult{s, err}
	}()
	(<-gw.fetches) <- cloneWithSummary(rec, "initial")
	res := <-opened
	require.NoError(t, res.err)
	s := res.s
	defer s.Close()

	// Start two overlapping reloads; the older fetch resolves last.
	firstDone := make(chan error, 1)
	go func() { firstDone <- s.Reload(context.Background()) }()
	firstReply := <-gw.fetches

	secondDone := make(chan error, 1)
	go func() { secondDone <- s.Reload(context.Background()) }()
	secondReply := <-gw.fetches

	secondReply <- cloneWithSummary(rec, "fresh")
	require.NoError(t, <-secondDone)
	require.Equal(t, "fresh", s.Store().Resume().Summary)

	firstReply <- cloneWithSummary(rec, "stale")
	require.NoError(t, <-firstDone)

	// The stale result did not overwrite the fresher one.
	assert.Equal(t, "fresh", s.Store().Resume().Summary)
}

func cloneWithSummary(rec *types.ResumeRecord, summary string) *types.ResumeRecord {
	cp := *rec
	cp.ResumeDocument = rec.ResumeDocument.Clone()
	cp.Summary = summary
	return &cp
}

func TestSaveAllPersistsEverySection(t *testing.T) {
	gw := gateway.NewMemory()
	rec := seedResume(t, gw)

	s, err := Open(context.Background(), gw, rec.ResumeID, silentNotifier{})
	require.NoError(t, err)
	defer s.Close()

	editors := s.Sequencer().Editors()
	personal := editors[0].(*editor.PersonalEditor)
	require.NoError(t, personal.SetField("candidateName", "James Carter"))
	skills := editors[5].(*editor.SkillsEditor)
	skills.SetText("Go, TypeScript")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.SaveAll(ctx))

	stored, err := gw.FetchResumeByPublicID(ctx, rec.ResumeID)
	require.NoError(t, err)
	assert.Equal(t, "James Carter", stored.CandidateName)
	assert.Equal(t, "Go, TypeScript", stored.Skills)
	assert.Equal(t, "stored summary", stored.Summary)
}

func TestSaveAllRepeatedKeepsEditorsConsistent(t *testing.T) {
	gw := gateway.NewMemory()
	doc := types.NewResumeDocument("Frontend Engineer Resume", "owner@example.com")
	doc.CandidateName = "James Carter"
	doc.Summary = "Engineer who ships."
	doc.Skills = "Go, TypeScript"
	doc.Education = []types.EducationEntry{{UniversityName: "Western Illinois University", Degree: "Master"}}
	doc.Experience = []types.ExperienceEntry{{Title: "Frontend Engineer", CompanyName: "Amazon"}}
	doc.Projects = []types.ProjectEntry{{ProjectName: "Portfolio", CompletionDate: "June 2024", Description: "Personal site"}}
	rec, err := gw.CreateResume(context.Background(), doc)
	require.NoError(t, err)

	s, err := Open(context.Background(), gw, rec.ResumeID, silentNotifier{})
	require.NoError(t, err)
	defer s.Close()

	// Every confirmed save resyncs all six editors through the store
	// subscription, on whichever goroutine confirmed first. Repeating the
	// concurrent saves over a fully populated document exercises that
	// cross-editor path; run with -race.
	for i := 0; i < 50; i++ {
		require.NoError(t, s.SaveAll(context.Background()))
	}

	stored, err := gw.FetchResumeByPublicID(context.Background(), rec.ResumeID)
	require.NoError(t, err)
	assert.Equal(t, "James Carter", stored.CandidateName)
	assert.Equal(t, "Engineer who ships.", stored.Summary)
	require.Len(t, stored.Education, 1)
	assert.Equal(t, "Western Illinois University", stored.Education[0].UniversityName)

	summary := s.Sequencer().Editors()[1].(*editor.SummaryEditor)
	assert.Equal(t, "Engineer who ships.", summary.Text())
	skills := s.Sequencer().Editors()[5].(*editor.SkillsEditor)
	assert.Equal(t, "Go, TypeScript", skills.Text())
}

func TestSaveAllSurfacesValidationFailure(t *testing.T) {
	gw := gateway.NewMemory()
	rec := seedResume(t, gw)

	s, err := Open(context.Background(), gw, rec.ResumeID, silentNotifier{})
	require.NoError(t, err)
	defer s.Close()

	projects := s.Sequencer().Editors()[4].(*editor.ProjectsEditor)
	require.NoError(t, projects.SetEntryField(0, "projectName", "Portfolio"))

	assert.Error(t, s.SaveAll(context.Background()))
}

func TestCloseIsIdempotent(t *testing.T) {
	gw := gateway.NewMemory()
	rec := seedResume(t, gw)

	s, err := Open(context.Background(), gw, rec.ResumeID, silentNotifier{})
	require.NoError(t, err)

	s.Close()
	s.Close()
}
