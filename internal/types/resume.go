// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ResumeDocument is the aggregate edited in one editing session. resumeId
// is the client-generated public identifier, assigned once at creation and
// never mutated; it is distinct from the internal storage id carried by
// ResumeRecord.
type ResumeDocument struct {
	ResumeID    string `json:"resumeId"`
	ResumeTitle string `json:"resumeTitle,omitempty"`

	CandidateName string `json:"candidateName"`
	JobTitle      string `json:"jobTitle"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Linkedin      string `json:"linkedin"`
	Github        string `json:"github"`

	Summary string `json:"summary"`

	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`

	Skills string `json:"skills"`

	ThemeColor ThemeColor `json:"themeColor"`
}

// EducationEntry is one row of the education section.
type EducationEntry struct {
	UniversityName string `json:"universityName"`
	Degree         string `json:"degree"`
	Major          string `json:"major"`
	StartDate      *Date  `json:"startDate"`
	EndDate        *Date  `json:"endDate"`
	Description    string `json:"description"`
}

// ExperienceEntry is one row of the experience section. WorkSummery keeps
// the stored field name, which carries rich text from the editing control.
type ExperienceEntry struct {
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	City        string `json:"city"`
	State       string `json:"state"`
	StartDate   *Date  `json:"startDate"`
	EndDate     *Date  `json:"endDate"`
	WorkSummery string `json:"workSummery"`
}

// ProjectEntry is one row of the projects section. The backend schema
// requires all three fields, so editors validate before persisting.
type ProjectEntry struct {
	ProjectName    string `json:"projectName" validate:"required"`
	CompletionDate string `json:"completionDate" validate:"required"`
	Description    string `json:"description" validate:"required"`
}

// Validate checks the required-field constraints on a project entry.
func (p *ProjectEntry) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ResumeRecord is a stored resume: the document plus storage metadata.
// PublishedAt reflects the backend's publish-on-write behavior: every
// create or update is immediately visible to readers.
type ResumeRecord struct {
	ID          uuid.UUID `json:"id"`
	ResumeDocument
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// NewResumeDocument returns an empty document with a fresh public
// identifier and the default theme color.
func NewResumeDocument(title, ownerEmail string) ResumeDocument {
	return ResumeDocument{
		ResumeID:    uuid.NewString(),
		ResumeTitle: title,
		Email:       ownerEmail,
		Education:   []EducationEntry{},
		Experience:  []ExperienceEntry{},
		Projects:    []ProjectEntry{},
		ThemeColor:  DefaultThemeColor,
	}
}

// Clone returns a deep copy of the document. The store hands out clones
// so callers can follow the read-copy-alter-write discipline without
// aliasing the store's own slices.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	if d.Education != nil {
		out.Education = make([]EducationEntry, len(d.Education))
		copy(out.Education, d.Education)
	}
	if d.Experience != nil {
		out.Experience = make([]ExperienceEntry, len(d.Experience))
		copy(out.Experience, d.Experience)
	}
	if d.Projects != nil {
		out.Projects = make([]ProjectEntry, len(d.Projects))
		copy(out.Projects, d.Projects)
	}
	return out
}

// Normalize applies the load-boundary invariants: the theme color becomes
// a valid bare palette string and list sections are never nil.
func (d *ResumeDocument) Normalize() {
	d.ThemeColor = d.ThemeColor.Normalize()
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	if d.Experience == nil {
		d.Experience = []ExperienceEntry{}
	}
	if d.Projects == nil {
		d.Projects = []ProjectEntry{}
	}
}
