package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-engine/internal/types"
)

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintBreakdown(&types.MatchScoreBreakdown{
		TotalScore:         72.5,
		RequiredSkillMatch: 66.7,
		ProjectRelevance:   80.0,
		KeywordAlignment:   70.0,
		MatchedSkills:      []string{"Python", "SQL"},
		MissingSkills:      []string{"Kubernetes"},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH SCORE BREAKDOWN")
	assert.Contains(t, out, "72.5")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Kubernetes")
	assert.NotContains(t, out, "no skill requirements")
}

func TestPrintBreakdown_NoRequirements(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintBreakdown(&types.MatchScoreBreakdown{
		TotalScore:     100,
		NoRequirements: true,
	})
	assert.Contains(t, buf.String(), "no skill requirements")
}

func TestPrintBreakdown_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBreakdown(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankedProjects(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRankedProjects([]types.ProjectRanking{
		{Title: "Search Service", RelevanceScore: 0.83, MatchingTechnologies: []string{"Python", "Elasticsearch"}},
		{Title: "Billing API", RelevanceScore: 0.41},
	})

	out := buf.String()
	assert.Contains(t, out, "RANKED PROJECTS")
	assert.Contains(t, out, "#1  Search Service")
	assert.Contains(t, out, "Elasticsearch")
	assert.Contains(t, out, "#2  Billing API")
}

func TestPrintSuggestions_EmptySkipped(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions(nil)
	assert.Empty(t, buf.String())

	NewPrinter(&buf).PrintSuggestions([]string{"Add Kubernetes experience"})
	assert.Contains(t, buf.String(), "Add Kubernetes experience")
}
