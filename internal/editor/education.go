package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// EducationEditor edits the ordered education list.
type EducationEditor struct {
	listEditor[types.EducationEntry]
}

// NewEducationEditor builds the education editor bound to the store and
// gateway for one resume.
func NewEducationEditor(st *store.Store, gw gateway.Gateway, resumeID string, notify Notifier) *EducationEditor {
	e := &EducationEditor{listEditor[types.EducationEntry]{
		base: newBase("education", st, gw, resumeID, notify),
		read: func(doc types.ResumeDocument) []types.EducationEntry { return doc.Education },
		write: func(doc *types.ResumeDocument, entries []types.EducationEntry) {
			doc.Education = entries
		},
		patch: func(entries []types.EducationEntry) types.ResumePatch {
			return types.ResumePatch{Education: &entries}
		},
		blank: func() types.EducationEntry { return types.EducationEntry{} },
		setField: func(entry *types.EducationEntry, name, value string) error {
			switch name {
			case "universityName":
				entry.UniversityName = value
			case "degree":
				entry.Degree = value
			case "major":
				entry.Major = value
			case "description":
				entry.Description = value
			default:
				return fmt.Errorf("unknown education field %q", name)
			}
			return nil
		},
		setDate: func(entry *types.EducationEntry, name string, d *types.Date) error {
			switch name {
			case "startDate":
				entry.StartDate = d
			case "endDate":
				entry.EndDate = d
			default:
				return fmt.Errorf("unknown education date field %q", name)
			}
			return nil
		},
		okMsg:   "Education updated!",
		failMsg: "Server Error, Please try again!",
	}}
	e.Sync()
	return e
}
