package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateRequest asks the engine to produce a resume for a job description
// using a stored template.
type GenerateRequest struct {
	TemplateID     string `json:"template_id" validate:"required,uuid4"`
	JobDescription string `json:"job_description" validate:"required,min=10"`
}

// RefineRequest is one chat turn against a generated resume.
type RefineRequest struct {
	ResumeID string     `json:"resume_id" validate:"required,uuid4"`
	Message  string     `json:"message" validate:"required,min=1"`
	History  []ChatTurn `json:"history"`
}

// RefineResponse is the outcome of one refinement turn. UpdatedDocument is
// empty unless ValidationPassed and the document actually changed.
type RefineResponse struct {
	Reply            string   `json:"reply"`
	UpdatedDocument  string   `json:"updated_document,omitempty"`
	ValidationPassed bool     `json:"validation_passed"`
	ValidationErrors []string `json:"validation_errors"`
	Version          int      `json:"version"`
}

// CreateSkillRequest adds a skill to the candidate's ledger.
type CreateSkillRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Category    string `json:"category,omitempty" validate:"max=100"`
	Proficiency int    `json:"proficiency" validate:"omitempty,min=1,max=5"`
}

// CreateProjectRequest adds a project to the candidate's ledger.
type CreateProjectRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=255"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies,omitempty"`
	Impact       string   `json:"impact,omitempty"`
	Domain       string   `json:"domain,omitempty" validate:"max=100"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
	StartDate    string   `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string   `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateExperienceRequest adds a work experience to the candidate's ledger.
type CreateExperienceRequest struct {
	Company      string   `json:"company" validate:"required,min=1,max=255"`
	Role         string   `json:"role" validate:"required,min=1,max=255"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies,omitempty"`
	Location     string   `json:"location,omitempty" validate:"max=255"`
	IsCurrent    bool     `json:"is_current"`
	StartDate    string   `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string   `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateAchievementRequest adds an achievement to the candidate's ledger.
type CreateAchievementRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateTemplateRequest stores a placeholder-bearing template.
type CreateTemplateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RefineRequest using the validator.
func (r *RefineRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateSkillRequest using the validator.
func (r *CreateSkillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateExperienceRequest using the validator.
func (r *CreateExperienceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateAchievementRequest using the validator.
func (r *CreateAchievementRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateTemplateRequest using the validator.
func (r *CreateTemplateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
