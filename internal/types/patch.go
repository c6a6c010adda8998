package types

// ResumePatch is a partial update to a stored resume. Only non-nil fields
// belong to the patch's field set; the gateway must merge exactly that
// set and leave every other field untouched, so concurrent saves of
// different sections cannot clobber each other.
type ResumePatch struct {
	ResumeTitle   *string `json:"resumeTitle,omitempty"`
	CandidateName *string `json:"candidateName,omitempty"`
	JobTitle      *string `json:"jobTitle,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Linkedin      *string `json:"linkedin,omitempty"`
	Github        *string `json:"github,omitempty"`

	Summary *string `json:"summary,omitempty"`

	Education  *[]EducationEntry  `json:"education,omitempty"`
	Experience *[]ExperienceEntry `json:"experience,omitempty"`
	Projects   *[]ProjectEntry    `json:"projects,omitempty"`

	Skills *string `json:"skills,omitempty"`

	ThemeColor *ThemeColor `json:"themeColor,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *ResumePatch) IsEmpty() bool {
	return p.ResumeTitle == nil && p.CandidateName == nil && p.JobTitle == nil &&
		p.Address == nil && p.Phone == nil && p.Email == nil &&
		p.Linkedin == nil && p.Github == nil && p.Summary == nil &&
		p.Education == nil && p.Experience == nil && p.Projects == nil &&
		p.Skills == nil && p.ThemeColor == nil
}

// Apply merges the patch's field set into doc.
func (p *ResumePatch) Apply(doc *ResumeDocument) {
	if p.ResumeTitle != nil {
		doc.ResumeTitle = *p.ResumeTitle
	}
	if p.CandidateName != nil {
		doc.CandidateName = *p.CandidateName
	}
	if p.JobTitle != nil {
		doc.JobTitle = *p.JobTitle
	}
	if p.Address != nil {
		doc.Address = *p.Address
	}
	if p.Phone != nil {
		doc.Phone = *p.Phone
	}
	if p.Email != nil {
		doc.Email = *p.Email
	}
	if p.Linkedin != nil {
		doc.Linkedin = *p.Linkedin
	}
	if p.Github != nil {
		doc.Github = *p.Github
	}
	if p.Summary != nil {
		doc.Summary = *p.Summary
	}
	if p.Education != nil {
		doc.Education = *p.Education
	}
	if p.Experience != nil {
		doc.Experience = *p.Experience
	}
	if p.Projects != nil {
		doc.Projects = *p.Projects
	}
	if p.Skills != nil {
		doc.Skills = *p.Skills
	}
	if p.ThemeColor != nil {
		doc.ThemeColor = p.ThemeColor.Normalize()
	}
}

// ValidateProjects enforces the required-field constraints on any project
// entries carried by the patch, mirroring the storage schema so a write
// that is certain to be rejected never reaches the backend.
func (p *ResumePatch) ValidateProjects() error {
	if p.Projects == nil {
		return nil
	}
	for i := range *p.Projects {
		if err := (*p.Projects)[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
