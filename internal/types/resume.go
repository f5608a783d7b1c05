package types

import (
	"time"

	"github.com/google/uuid"
)

// ResumeTemplate is a placeholder-bearing LaTeX document owned by the
// external template store. The engine treats it as read-only input.
type ResumeTemplate struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GeneratedResume is a persisted resume document produced by the engine.
// Version starts at 1 on generation and increments on each accepted
// refinement. Records are never partially written.
type GeneratedResume struct {
	ID                   uuid.UUID            `json:"id"`
	TemplateID           *uuid.UUID           `json:"template_id,omitempty"`
	JobDescription       string               `json:"job_description"`
	DocumentOutput       string               `json:"document_output"`
	RenderedArtifactPath string               `json:"rendered_artifact_path,omitempty"`
	MatchScore           float64              `json:"match_score"`
	MatchedSkills        []string             `json:"matched_skills"`
	MissingSkills        []string             `json:"missing_skills"`
	Analysis             *MatchScoreBreakdown `json:"analysis,omitempty"`
	Version              int                  `json:"version"`
	CreatedAt            time.Time            `json:"created_at"`
}

// Chat roles for refinement turns
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message in a resume's refinement history.
// History is an ordered, append-only sequence scoped to one resume.
type ChatTurn struct {
	Role    string `json:"role"` // RoleUser or RoleAssistant
	Content string `json:"content"`
}

// ValidationResult classifies one candidate document. It is transient and
// attached to the generation or refinement attempt that produced it.
type ValidationResult struct {
	Passed bool     `json:"passed"`
	Errors []string `json:"errors"`
}
