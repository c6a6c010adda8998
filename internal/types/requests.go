package types

import "github.com/go-playground/validator/v10"

// CreateResumeRequest represents the request to create a new resume.
// ResumeID is the client-generated public identifier; when omitted the
// server generates one on the caller's behalf.
type CreateResumeRequest struct {
	ResumeTitle string `json:"resumeTitle" validate:"required,min=1"`
	Email       string `json:"email" validate:"required,email"`
	ResumeID    string `json:"resumeId,omitempty"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
