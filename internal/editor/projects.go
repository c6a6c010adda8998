package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// ProjectsEditor edits the ordered projects list. The storage schema
// requires name, date and description on every entry, so Save validates
// the whole list before issuing a request that would only be rejected.
type ProjectsEditor struct {
	listEditor[types.ProjectEntry]
}

// NewProjectsEditor builds the projects editor bound to the store and
// gateway for one resume.
func NewProjectsEditor(st *store.Store, gw gateway.Gateway, resumeID string, notify Notifier) *ProjectsEditor {
	e := &ProjectsEditor{listEditor[types.ProjectEntry]{
		base: newBase("projects", st, gw, resumeID, notify),
		read: func(doc types.ResumeDocument) []types.ProjectEntry { return doc.Projects },
		write: func(doc *types.ResumeDocument, entries []types.ProjectEntry) {
			doc.Projects = entries
		},
		patch: func(entries []types.ProjectEntry) types.ResumePatch {
			return types.ResumePatch{Projects: &entries}
		},
		blank: func() types.ProjectEntry { return types.ProjectEntry{} },
		validate: func(entries []types.ProjectEntry) error {
			for i := range entries {
				if err := entries[i].Validate(); err != nil {
					return fmt.Errorf("project %d: %w", i+1, err)
				}
			}
			return nil
		},
		setField: func(entry *types.ProjectEntry, name, value string) error {
			switch name {
			case "projectName":
				entry.ProjectName = value
			case "completionDate":
				entry.CompletionDate = value
			case "description":
				entry.Description = value
			default:
				return fmt.Errorf("unknown project field %q", name)
			}
			return nil
		},
		okMsg:   "Projects updated!",
		failMsg: "Failed to update projects",
	}}
	e.Sync()
	return e
}
