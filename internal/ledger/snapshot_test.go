package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-engine/internal/types"
)

type fakeStore struct {
	skills       []types.Skill
	projects     []types.Project
	experiences  []types.Experience
	achievements []types.Achievement
}

func (f *fakeStore) ListSkills(ctx context.Context) ([]types.Skill, error) {
	return f.skills, nil
}

func (f *fakeStore) ListProjects(ctx context.Context) ([]types.Project, error) {
	return f.projects, nil
}

func (f *fakeStore) ListExperiences(ctx context.Context) ([]types.Experience, error) {
	return f.experiences, nil
}

func (f *fakeStore) ListAchievements(ctx context.Context) ([]types.Achievement, error) {
	return f.achievements, nil
}

func sampleSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	store := &fakeStore{
		skills: []types.Skill{
			{Name: "Python", Category: "language", Proficiency: 4},
			{Name: "SQL", Category: "language", Proficiency: 3},
		},
		projects: []types.Project{
			{Title: "Search Service", Description: "Full-text search platform", Technologies: []string{"Python", "Elasticsearch"}},
		},
		experiences: []types.Experience{
			{Company: "Acme Corp", Role: "Software Engineer", Description: "Backend work", Technologies: []string{"Python"}},
		},
		achievements: []types.Achievement{
			{Title: "Top performer award"},
		},
	}

	snapshot, err := NewAccessor(store).Snapshot(context.Background())
	require.NoError(t, err)
	return snapshot
}

func TestSnapshot_SkillNames(t *testing.T) {
	snapshot := sampleSnapshot(t)
	assert.Equal(t, []string{"Python", "SQL"}, snapshot.SkillNames())
}

func TestSnapshot_AuthorizedTerms(t *testing.T) {
	terms := sampleSnapshot(t).AuthorizedTerms()

	assert.Contains(t, terms, "Python")
	assert.Contains(t, terms, "Search Service")
	assert.Contains(t, terms, "Elasticsearch")
	assert.Contains(t, terms, "Acme Corp")
	assert.Contains(t, terms, "Software Engineer")
	assert.Contains(t, terms, "Top performer award")
}

func TestSnapshot_IsEmpty(t *testing.T) {
	assert.True(t, (&Snapshot{}).IsEmpty())
	assert.False(t, sampleSnapshot(t).IsEmpty())
}

func TestSnapshot_Text(t *testing.T) {
	text := sampleSnapshot(t).Text()

	assert.Contains(t, text, "Full-text search platform")
	assert.Contains(t, text, "Backend work")
	assert.Contains(t, text, "Elasticsearch")
}
