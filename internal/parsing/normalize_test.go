package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "reactjs", Fold("React.js"))
	assert.Equal(t, "machine learning", Fold("machine-learning"))
	assert.Equal(t, "ci cd", Fold(" CI_CD "))
	assert.Equal(t, "", Fold("   "))
}

func TestSkillsMatch_Exact(t *testing.T) {
	assert.True(t, SkillsMatch("Python", "python"))
	assert.True(t, SkillsMatch("PostgreSQL", "postgresql"))
	assert.False(t, SkillsMatch("Python", "Java"))
}

func TestSkillsMatch_Containment(t *testing.T) {
	assert.True(t, SkillsMatch("react", "React.js"))
	assert.True(t, SkillsMatch("React.js", "react"))
	assert.True(t, SkillsMatch("amazon web services", "web services"))
}

func TestSkillsMatch_Synonyms(t *testing.T) {
	assert.True(t, SkillsMatch("k8s", "Kubernetes"))
	assert.True(t, SkillsMatch("Kubernetes", "k8s"))
	assert.True(t, SkillsMatch("golang", "Go"))
	assert.True(t, SkillsMatch("ML", "Machine Learning"))
}

func TestSkillsMatch_Empty(t *testing.T) {
	assert.False(t, SkillsMatch("", "Go"))
	assert.False(t, SkillsMatch("Go", ""))
}

func TestMatchesAny(t *testing.T) {
	ledger := []string{"Python", "SQL"}
	assert.True(t, MatchesAny("python", ledger))
	assert.False(t, MatchesAny("kubernetes", ledger))
}

func TestTokenize_PreservesSkillCharacters(t *testing.T) {
	tokens := Tokenize("Expert in C++, C# and CI/CD pipelines")
	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "ci/cd")
	assert.Contains(t, tokens, "pipelines")
}

func TestTokenSet_FiltersStopwords(t *testing.T) {
	set := TokenSet("We are looking for a strong Python developer")
	assert.True(t, set["python"])
	assert.True(t, set["developer"])
	assert.False(t, set["strong"])
	assert.False(t, set["for"])
}

func TestCountTerm(t *testing.T) {
	text := "Python required. Python preferred. Also some Go."
	assert.Equal(t, 2, CountTerm(text, "Python"))
	assert.Equal(t, 1, CountTerm(text, "go"))
	assert.Equal(t, 0, CountTerm(text, "Rust"))
}

func TestCountTerm_MultiWord(t *testing.T) {
	text := "Experience with machine learning and machine learning ops"
	assert.Equal(t, 2, CountTerm(text, "machine learning"))
}
