package types

import (
	"github.com/go-playground/validator/v10"
)

// ExtractRequest is the payload for POST /extract.
type ExtractRequest struct {
	Texts []string `json:"texts" validate:"required,min=1,dive,max=100000"`
	TopK  int      `json:"top_k,omitempty" validate:"omitempty,min=1,max=100"`
	Save  bool     `json:"save,omitempty"`
}

// NormalizeRequest is the payload for POST /skills/normalize.
type NormalizeRequest struct {
	Terms []string `json:"terms" validate:"required,min=1,dive,max=200"`
}

// ProfileSkillsRequest is the payload for POST /skills/profile.
type ProfileSkillsRequest struct {
	Resume *Resume `json:"resume" validate:"required"`
}

// JobSkillsRequest is the payload for POST /skills/job.
type JobSkillsRequest struct {
	Job *JobPosting `json:"job" validate:"required"`
}

// GapRequest is the payload for POST /gap. ProfileSkills and JobSkills
// may be supplied directly; when absent they are derived from Resume
// and Job respectively.
type GapRequest struct {
	ProfileSkills []string    `json:"profile_skills,omitempty"`
	JobSkills     []string    `json:"job_skills,omitempty"`
	Resume        *Resume     `json:"resume,omitempty"`
	Job           *JobPosting `json:"job,omitempty"`
	Save          bool        `json:"save,omitempty"`
}

var validate = validator.New()

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the NormalizeRequest using the validator.
func (r *NormalizeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ProfileSkillsRequest using the validator.
func (r *ProfileSkillsRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the JobSkillsRequest using the validator.
func (r *JobSkillsRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the GapRequest using the validator.
func (r *GapRequest) Validate() error {
	return validate.Struct(r)
}
