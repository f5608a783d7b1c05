package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_PartialOverlap(t *testing.T) {
	ledger := []string{"Python", "SQL"}
	jd := "We are hiring an engineer familiar with Python, Go, Kubernetes."

	result := Match(ledger, jd)

	assert.Equal(t, []string{"Python"}, result.MatchedSkills)
	assert.ElementsMatch(t, []string{"Go", "Kubernetes"}, result.MissingSkills)
	assert.InDelta(t, 33.3, result.RequiredSkillMatch, 0.1)
	assert.False(t, result.NoRequirements)
}

func TestMatch_DisjointSets(t *testing.T) {
	ledger := []string{"Python", "Docker", "PostgreSQL"}
	jd := "Looking for Python, Docker, Kubernetes, Terraform and AWS experience."

	result := Match(ledger, jd)

	seen := make(map[string]bool)
	for _, s := range result.MatchedSkills {
		seen[s] = true
	}
	for _, s := range result.MissingSkills {
		assert.False(t, seen[s], "skill %q appears in both matched and missing", s)
	}
	assert.GreaterOrEqual(t, result.RequiredSkillMatch, 0.0)
	assert.LessOrEqual(t, result.RequiredSkillMatch, 100.0)
}

func TestMatch_SynonymFolding(t *testing.T) {
	ledger := []string{"Kubernetes", "JavaScript"}
	jd := "Must have k8s and JS experience."

	result := Match(ledger, jd)

	assert.ElementsMatch(t, []string{"Kubernetes", "JavaScript"}, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, 100.0, result.RequiredSkillMatch)
}

func TestMatch_SynonymNotDoubleCounted(t *testing.T) {
	ledger := []string{"Kubernetes"}
	jd := "Experience with Kubernetes (k8s) clusters."

	result := Match(ledger, jd)

	assert.Equal(t, []string{"Kubernetes"}, result.MatchedSkills)
	assert.Equal(t, 100.0, result.RequiredSkillMatch)
}

func TestMatch_NoExtractableKeywords(t *testing.T) {
	ledger := []string{"Python"}
	jd := "A friendly workplace seeking motivated people who enjoy collaboration."

	result := Match(ledger, jd)

	assert.True(t, result.NoRequirements)
	assert.Equal(t, 100.0, result.RequiredSkillMatch)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestMatch_EmptyLedger(t *testing.T) {
	result := Match(nil, "Requires Python and Go for backend services.")

	assert.Empty(t, result.MatchedSkills)
	assert.ElementsMatch(t, []string{"Python", "Go"}, result.MissingSkills)
	assert.Equal(t, 0.0, result.RequiredSkillMatch)
}

func TestMatch_LedgerSkillOutsideVocabulary(t *testing.T) {
	ledger := []string{"Apache Beam"}
	jd := "Streaming pipelines built on Apache Beam and Kafka."

	result := Match(ledger, jd)

	assert.Contains(t, result.MatchedSkills, "Apache Beam")
	assert.Contains(t, result.MissingSkills, "Kafka")
}

func TestMatch_MultiWordVocabulary(t *testing.T) {
	ledger := []string{"Machine Learning"}
	result := Match(ledger, "Role focused on machine learning model deployment.")

	assert.Contains(t, result.MatchedSkills, "Machine Learning")
}

func TestMatch_Deterministic(t *testing.T) {
	ledger := []string{"Python", "Go", "Redis"}
	jd := "Python, Go, Redis, Kafka, Terraform, machine learning, deep learning."

	first := Match(ledger, jd)
	for i := 0; i < 10; i++ {
		again := Match(ledger, jd)
		require.Equal(t, first, again)
	}
}
