package refinement

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-engine/internal/ledger"
	"github.com/jonathan/resume-engine/internal/llm"
	"github.com/jonathan/resume-engine/internal/types"
)

type fakeLedgerStore struct{}

func (fakeLedgerStore) ListSkills(ctx context.Context) ([]types.Skill, error) {
	return []types.Skill{{Name: "Python"}, {Name: "SQL"}}, nil
}

func (fakeLedgerStore) ListProjects(ctx context.Context) ([]types.Project, error) {
	return []types.Project{{Title: "Search Service", Technologies: []string{"Python"}}}, nil
}

func (fakeLedgerStore) ListExperiences(ctx context.Context) ([]types.Experience, error) {
	return []types.Experience{{Company: "Acme Corp", Role: "Software Engineer"}}, nil
}

func (fakeLedgerStore) ListAchievements(ctx context.Context) ([]types.Achievement, error) {
	return nil, nil
}

type fakeResumeStore struct {
	mu      sync.Mutex
	resume  types.GeneratedResume
	turns   []types.ChatTurn
	updates int
}

func (f *fakeResumeStore) GetResume(ctx context.Context, id uuid.UUID) (*types.GeneratedResume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := f.resume
	return &copied, nil
}

func (f *fakeResumeStore) UpdateResumeDocument(ctx context.Context, id uuid.UUID, document string, expectedVersion int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resume.Version != expectedVersion {
		return 0, fmt.Errorf("version conflict: have %d, expected %d", f.resume.Version, expectedVersion)
	}
	f.resume.DocumentOutput = document
	f.resume.Version++
	f.updates++
	return f.resume.Version, nil
}

func (f *fakeResumeStore) AppendChatTurns(ctx context.Context, resumeID uuid.UUID, turns []types.ChatTurn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.turns = append(f.turns, turns...)
	return nil
}

type scriptedLLM struct {
	response string
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.response, nil
}

func (s *scriptedLLM) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.response, nil
}

func (s *scriptedLLM) GetModel(tier llm.ModelTier) string { return "scripted" }

func (s *scriptedLLM) Close() error { return nil }

func newTestLoop(store *fakeResumeStore, response string) *Loop {
	return NewLoop(store, ledger.NewAccessor(fakeLedgerStore{}), &scriptedLLM{response: response})
}

func baseResume() types.GeneratedResume {
	return types.GeneratedResume{
		ID:             uuid.New(),
		DocumentOutput: "\\begin{document}\nSkills: Python, SQL\n\\end{document}",
		Version:        1,
	}
}

func TestRefine_AcceptedAmendmentIncrementsVersion(t *testing.T) {
	store := &fakeResumeStore{resume: baseResume()}
	updated := `\begin{document}
Skills: Python, SQL
Sharpened wording throughout.
\end{document}`
	loop := newTestLoop(store, fmt.Sprintf(
		`{"reply": "Tightened the summary.", "updated_document": %q, "changes_made": true}`, updated))

	resp, err := loop.Refine(context.Background(), types.RefineRequest{
		ResumeID: store.resume.ID.String(),
		Message:  "Make the summary tighter",
	})
	require.NoError(t, err)

	assert.True(t, resp.ValidationPassed)
	assert.Equal(t, 2, resp.Version)
	assert.Equal(t, updated, resp.UpdatedDocument)
	assert.Equal(t, 2, store.resume.Version)
	assert.Equal(t, updated, store.resume.DocumentOutput)
}

func TestRefine_RejectedAmendmentLeavesDocumentUnchanged(t *testing.T) {
	store := &fakeResumeStore{resume: baseResume()}
	original := store.resume.DocumentOutput

	// The amendment smuggles in a fabricated company.
	fabricated := `\begin{document}
Skills: Python, SQL
\item Software Engineer, \textbf{Globex Dynamics}
\end{document}`
	loop := newTestLoop(store, fmt.Sprintf(
		`{"reply": "Added your role at Globex Dynamics.", "updated_document": %q, "changes_made": true}`, fabricated))

	resp, err := loop.Refine(context.Background(), types.RefineRequest{
		ResumeID: store.resume.ID.String(),
		Message:  "Add my time at Globex Dynamics",
	})
	require.NoError(t, err)

	assert.False(t, resp.ValidationPassed)
	assert.NotEmpty(t, resp.ValidationErrors)
	assert.Empty(t, resp.UpdatedDocument)
	assert.Equal(t, 1, resp.Version)
	assert.Equal(t, 1, store.resume.Version)
	assert.Equal(t, original, store.resume.DocumentOutput)
	assert.Zero(t, store.updates)
	assert.Contains(t, resp.Reply, "rejected")
}

func TestRefine_PlainTextReplyMakesNoChange(t *testing.T) {
	store := &fakeResumeStore{resume: baseResume()}
	loop := newTestLoop(store, "Your resume already emphasizes Python well; no changes needed.")

	resp, err := loop.Refine(context.Background(), types.RefineRequest{
		ResumeID: store.resume.ID.String(),
		Message:  "Should I emphasize Python more?",
	})
	require.NoError(t, err)

	assert.True(t, resp.ValidationPassed)
	assert.Empty(t, resp.UpdatedDocument)
	assert.Equal(t, 1, resp.Version)
	assert.Contains(t, resp.Reply, "no changes needed")
}

func TestRefine_NoChangesFlag(t *testing.T) {
	store := &fakeResumeStore{resume: baseResume()}
	loop := newTestLoop(store, `{"reply": "Nothing to improve.", "updated_document": null, "changes_made": false}`)

	resp, err := loop.Refine(context.Background(), types.RefineRequest{
		ResumeID: store.resume.ID.String(),
		Message:  "Anything else?",
	})
	require.NoError(t, err)

	assert.True(t, resp.ValidationPassed)
	assert.Equal(t, 1, resp.Version)
	assert.Equal(t, "Nothing to improve.", resp.Reply)
}

func TestRefine_AppendsBothTurns(t *testing.T) {
	store := &fakeResumeStore{resume: baseResume()}
	loop := newTestLoop(store, `{"reply": "Done.", "updated_document": null, "changes_made": false}`)

	_, err := loop.Refine(context.Background(), types.RefineRequest{
		ResumeID: store.resume.ID.String(),
		Message:  "Review please",
	})
	require.NoError(t, err)

	require.Len(t, store.turns, 2)
	assert.Equal(t, types.RoleUser, store.turns[0].Role)
	assert.Equal(t, "Review please", store.turns[0].Content)
	assert.Equal(t, types.RoleAssistant, store.turns[1].Role)
}

func TestRefine_InvalidResumeID(t *testing.T) {
	loop := newTestLoop(&fakeResumeStore{resume: baseResume()}, "{}")

	_, err := loop.Refine(context.Background(), types.RefineRequest{
		ResumeID: "not-a-uuid",
		Message:  "hello",
	})
	assert.Error(t, err)
}

func TestKeyedMutex_SerializesPerKey(t *testing.T) {
	locks := newKeyedMutex()
	id := uuid.New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(id)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	locks.mu.Lock()
	assert.Empty(t, locks.locks)
	locks.mu.Unlock()
}
