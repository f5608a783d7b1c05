package types

import "github.com/google/uuid"

// ProjectRanking holds the relevance evidence for a single ledger project
type ProjectRanking struct {
	ProjectID            uuid.UUID `json:"project_id"`
	Title                string    `json:"title"`
	RelevanceScore       float64   `json:"relevance_score"` // 0.0-1.0
	MatchingTechnologies []string  `json:"matching_technologies"`
}

// MatchScoreBreakdown is the itemized fit analysis for a job description
// against the candidate's ledger. Sub-scores and the total are in [0,100].
type MatchScoreBreakdown struct {
	RequiredSkillMatch     float64          `json:"required_skill_match"`
	ProjectRelevance       float64          `json:"project_relevance"`
	KeywordAlignment       float64          `json:"keyword_alignment"`
	TotalScore             float64          `json:"total_score"`
	MatchedSkills          []string         `json:"matched_skills"`
	MissingSkills          []string         `json:"missing_skills"`
	RankedProjects         []ProjectRanking `json:"ranked_projects"`
	ImprovementSuggestions []string         `json:"improvement_suggestions"`

	// NoRequirements flags that the job description yielded no extractable
	// skill keywords, in which case RequiredSkillMatch is trivially 100 and
	// callers should surface the caveat rather than report a perfect fit.
	NoRequirements bool `json:"no_requirements,omitempty"`
}
