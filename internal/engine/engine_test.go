package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-engine/internal/generation"
	"github.com/jonathan/resume-engine/internal/ingestion"
	"github.com/jonathan/resume-engine/internal/ledger"
	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/types"
)

type fakeLedgerStore struct {
	skills      []types.Skill
	projects    []types.Project
	experiences []types.Experience
}

func (f *fakeLedgerStore) ListSkills(ctx context.Context) ([]types.Skill, error) {
	return f.skills, nil
}

func (f *fakeLedgerStore) ListProjects(ctx context.Context) ([]types.Project, error) {
	return f.projects, nil
}

func (f *fakeLedgerStore) ListExperiences(ctx context.Context) ([]types.Experience, error) {
	return f.experiences, nil
}

func (f *fakeLedgerStore) ListAchievements(ctx context.Context) ([]types.Achievement, error) {
	return nil, nil
}

type fakeStore struct {
	templates map[uuid.UUID]types.ResumeTemplate
	resumes   map[uuid.UUID]types.GeneratedResume
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		templates: map[uuid.UUID]types.ResumeTemplate{},
		resumes:   map[uuid.UUID]types.GeneratedResume{},
	}
}

var errTemplateNotFound = errors.New("template not found")

func (f *fakeStore) GetTemplate(ctx context.Context, id uuid.UUID) (*types.ResumeTemplate, error) {
	tmpl, ok := f.templates[id]
	if !ok {
		return nil, errTemplateNotFound
	}
	return &tmpl, nil
}

func (f *fakeStore) CreateResume(ctx context.Context, resume *types.GeneratedResume) (*types.GeneratedResume, error) {
	resume.ID = uuid.New()
	resume.Version = 1
	f.resumes[resume.ID] = *resume
	return resume, nil
}

func (f *fakeStore) GetResume(ctx context.Context, id uuid.UUID) (*types.GeneratedResume, error) {
	resume, ok := f.resumes[id]
	if !ok {
		return nil, errors.New("resume not found")
	}
	return &resume, nil
}

const testTemplate = `\documentclass{article}
\begin{document}
%%SUMMARY%%
\section{Skills}
%%SKILLS%%
\section{Experience}
%%EXPERIENCE%%
\section{Projects}
%%PROJECTS%%
\end{document}`

func testEngine(t *testing.T, store *fakeStore) *Engine {
	t.Helper()

	accessor := ledger.NewAccessor(&fakeLedgerStore{
		skills: []types.Skill{
			{ID: uuid.New(), Name: "Python", Proficiency: 4},
			{ID: uuid.New(), Name: "SQL", Proficiency: 3},
		},
		projects: []types.Project{
			{ID: uuid.New(), Title: "Search Service", Description: "Full-text search over Python services", Technologies: []string{"Python", "Elasticsearch"}},
		},
		experiences: []types.Experience{
			{ID: uuid.New(), Company: "Acme Corp", Role: "Software Engineer", Description: "Built data pipelines with Python and SQL", Technologies: []string{"Python", "SQL"}},
		},
	})

	eng, err := New(store, accessor, generation.New(nil), Options{})
	require.NoError(t, err)
	return eng
}

func TestScore_RequiredSkillMatchScenario(t *testing.T) {
	eng := testEngine(t, newFakeStore())

	breakdown, err := eng.Score(context.Background(),
		"We are hiring engineers who know Python, Go, Kubernetes.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python"}, breakdown.MatchedSkills)
	assert.ElementsMatch(t, []string{"Go", "Kubernetes"}, breakdown.MissingSkills)
	assert.InDelta(t, 33.3, breakdown.RequiredSkillMatch, 0.1)
	assert.False(t, breakdown.NoRequirements)
}

func TestScore_MatchedAndMissingDisjoint(t *testing.T) {
	eng := testEngine(t, newFakeStore())

	breakdown, err := eng.Score(context.Background(),
		"Looking for Python, SQL, Terraform and Elasticsearch experience.")
	require.NoError(t, err)

	for _, matched := range breakdown.MatchedSkills {
		assert.NotContains(t, breakdown.MissingSkills, matched)
	}
	assert.GreaterOrEqual(t, breakdown.TotalScore, 0.0)
	assert.LessOrEqual(t, breakdown.TotalScore, 100.0)
}

func TestScore_Deterministic(t *testing.T) {
	eng := testEngine(t, newFakeStore())
	jd := "Backend role: Python, SQL, Docker, distributed systems."

	first, err := eng.Score(context.Background(), jd)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := eng.Score(context.Background(), jd)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScore_MalformedJD(t *testing.T) {
	eng := testEngine(t, newFakeStore())

	_, err := eng.Score(context.Background(), "   ")
	require.Error(t, err)

	var malformed *ingestion.MalformedJDError
	assert.ErrorAs(t, err, &malformed)
}

func TestGenerate_PersistsAtVersionOne(t *testing.T) {
	store := newFakeStore()
	templateID := uuid.New()
	store.templates[templateID] = types.ResumeTemplate{ID: templateID, Name: "default", Content: testTemplate}

	eng := testEngine(t, store)

	result, err := eng.Generate(context.Background(), types.GenerateRequest{
		TemplateID:     templateID.String(),
		JobDescription: "Backend engineer role needing Python and SQL expertise.",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Resume)
	assert.Equal(t, 1, result.Resume.Version)
	assert.True(t, result.Validation.Passed)
	assert.NotEmpty(t, result.Resume.DocumentOutput)
	assert.NotContains(t, result.Resume.DocumentOutput, "%%")
	assert.Equal(t, result.Breakdown.TotalScore, result.Resume.MatchScore)
	require.NotNil(t, result.Resume.Analysis)

	stored, err := store.GetResume(context.Background(), result.Resume.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Resume.DocumentOutput, stored.DocumentOutput)
}

func TestGenerate_InvalidTemplateID(t *testing.T) {
	eng := testEngine(t, newFakeStore())

	_, err := eng.Generate(context.Background(), types.GenerateRequest{
		TemplateID:     "not-a-uuid",
		JobDescription: "A perfectly reasonable job description.",
	})
	require.Error(t, err)

	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestGenerate_TemplateNotFound(t *testing.T) {
	eng := testEngine(t, newFakeStore())

	_, err := eng.Generate(context.Background(), types.GenerateRequest{
		TemplateID:     uuid.New().String(),
		JobDescription: "A perfectly reasonable job description.",
	})
	assert.ErrorIs(t, err, errTemplateNotFound)
}

func TestGenerate_UnknownPlaceholder(t *testing.T) {
	store := newFakeStore()
	templateID := uuid.New()
	store.templates[templateID] = types.ResumeTemplate{
		ID: templateID, Name: "bad", Content: `\begin{document}%%HOBBIES%%\end{document}`,
	}

	eng := testEngine(t, store)

	_, err := eng.Generate(context.Background(), types.GenerateRequest{
		TemplateID:     templateID.String(),
		JobDescription: "A perfectly reasonable job description.",
	})
	require.Error(t, err)

	var unknown *rendering.UnknownPlaceholderError
	assert.ErrorAs(t, err, &unknown)
}

func TestGenerate_EmptyLedgerFails(t *testing.T) {
	store := newFakeStore()
	templateID := uuid.New()
	store.templates[templateID] = types.ResumeTemplate{ID: templateID, Name: "default", Content: testTemplate}

	accessor := ledger.NewAccessor(&fakeLedgerStore{})
	eng, err := New(store, accessor, generation.New(nil), Options{})
	require.NoError(t, err)

	_, err = eng.Generate(context.Background(), types.GenerateRequest{
		TemplateID:     templateID.String(),
		JobDescription: "A perfectly reasonable job description.",
	})
	require.Error(t, err)

	var emptyErr *generation.EmptySectionError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Empty(t, store.resumes)
}

func TestAnalysis_ReturnsStoredBreakdown(t *testing.T) {
	store := newFakeStore()
	templateID := uuid.New()
	store.templates[templateID] = types.ResumeTemplate{ID: templateID, Name: "default", Content: testTemplate}

	eng := testEngine(t, store)

	result, err := eng.Generate(context.Background(), types.GenerateRequest{
		TemplateID:     templateID.String(),
		JobDescription: "Backend engineer role needing Python and SQL expertise.",
	})
	require.NoError(t, err)

	analysis, err := eng.Analysis(context.Background(), result.Resume.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Breakdown, analysis)
}
