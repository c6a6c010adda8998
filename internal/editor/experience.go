package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// ExperienceEditor edits the ordered experience list. The workSummery
// field carries rich text from the editing control and is passed through
// opaquely.
type ExperienceEditor struct {
	listEditor[types.ExperienceEntry]
}

// NewExperienceEditor builds the experience editor bound to the store and
// gateway for one resume.
func NewExperienceEditor(st *store.Store, gw gateway.Gateway, resumeID string, notify Notifier) *ExperienceEditor {
	e := &ExperienceEditor{listEditor[types.ExperienceEntry]{
		base: newBase("experience", st, gw, resumeID, notify),
		read: func(doc types.ResumeDocument) []types.ExperienceEntry { return doc.Experience },
		write: func(doc *types.ResumeDocument, entries []types.ExperienceEntry) {
			doc.Experience = entries
		},
		patch: func(entries []types.ExperienceEntry) types.ResumePatch {
			return types.ResumePatch{Experience: &entries}
		},
		blank: func() types.ExperienceEntry { return types.ExperienceEntry{} },
		setField: func(entry *types.ExperienceEntry, name, value string) error {
			switch name {
			case "title":
				entry.Title = value
			case "companyName":
				entry.CompanyName = value
			case "city":
				entry.City = value
			case "state":
				entry.State = value
			case "workSummery":
				entry.WorkSummery = value
			default:
				return fmt.Errorf("unknown experience field %q", name)
			}
			return nil
		},
		setDate: func(entry *types.ExperienceEntry, name string, d *types.Date) error {
			switch name {
			case "startDate":
				entry.StartDate = d
			case "endDate":
				entry.EndDate = d
			default:
				return fmt.Errorf("unknown experience date field %q", name)
			}
			return nil
		},
		okMsg:   "Details updated!",
		failMsg: "Server Error, Please try again!",
	}}
	e.Sync()
	return e
}
