package refinement

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-engine/internal/ledger"
	"github.com/jonathan/resume-engine/internal/llm"
	"github.com/jonathan/resume-engine/internal/prompts"
	"github.com/jonathan/resume-engine/internal/schemas"
	"github.com/jonathan/resume-engine/internal/types"
	"github.com/jonathan/resume-engine/internal/validation"
)

const (
	// historyWindow bounds how many prior turns are replayed to the LLM.
	historyWindow = 10
	// documentContextLimit bounds how much of the current document goes
	// into the prompt.
	documentContextLimit = 3000
)

// Store is the persistence surface the loop needs.
type Store interface {
	GetResume(ctx context.Context, id uuid.UUID) (*types.GeneratedResume, error)
	// UpdateResumeDocument replaces the document if the stored version
	// still equals expectedVersion, returning the new version.
	UpdateResumeDocument(ctx context.Context, id uuid.UUID, document string, expectedVersion int) (int, error)
	AppendChatTurns(ctx context.Context, resumeID uuid.UUID, turns []types.ChatTurn) error
}

// UpstreamError reports that the LLM provider failed for a refinement turn.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("refinement provider call failed: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// amendment is the parsed LLM reply.
type amendment struct {
	Reply           string  `json:"reply"`
	UpdatedDocument *string `json:"updated_document"`
	ChangesMade     bool    `json:"changes_made"`
}

// Loop drives refinement turns. All state lives in the store; the loop only
// serializes access per resume.
type Loop struct {
	store    Store
	accessor *ledger.Accessor
	client   llm.Client
	locks    *keyedMutex
	retry    llm.RetryPolicy
}

// NewLoop creates a refinement loop.
func NewLoop(store Store, accessor *ledger.Accessor, client llm.Client) *Loop {
	return &Loop{
		store:    store,
		accessor: accessor,
		client:   client,
		locks:    newKeyedMutex(),
		retry:    llm.DefaultRetryPolicy(),
	}
}

// Refine processes one user instruction against a resume. An amendment is
// accepted only when it passes the validation gate; a rejected amendment
// leaves the stored document and version untouched and surfaces the errors.
func (l *Loop) Refine(ctx context.Context, req types.RefineRequest) (*types.RefineResponse, error) {
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return nil, fmt.Errorf("invalid resume id %q: %w", req.ResumeID, err)
	}

	unlock := l.locks.Lock(resumeID)
	defer unlock()

	resume, err := l.store.GetResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	snapshot, err := l.accessor.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := l.askLLM(ctx, req, resume, snapshot)
	if err != nil {
		return nil, &UpstreamError{Cause: err}
	}

	resp := l.applyAmendment(ctx, resumeID, resume, snapshot, raw)

	turns := []types.ChatTurn{
		{Role: types.RoleUser, Content: req.Message},
		{Role: types.RoleAssistant, Content: resp.Reply},
	}
	if err := l.store.AppendChatTurns(ctx, resumeID, turns); err != nil {
		return nil, err
	}
	return resp, nil
}

func (l *Loop) askLLM(ctx context.Context, req types.RefineRequest, resume *types.GeneratedResume, snapshot *ledger.Snapshot) (string, error) {
	template, err := prompts.Get("refinement.json", "amendment-system")
	if err != nil {
		return "", err
	}

	document := resume.DocumentOutput
	if len(document) > documentContextLimit {
		document = document[:documentContextLimit]
	}

	prompt := prompts.Format(template, map[string]string{
		"AuthorizedSkills": strings.Join(snapshot.SkillNames(), ", "),
		"CurrentDocument":  document,
		"History":          formatHistory(req.History),
		"Message":          req.Message,
	})

	var raw string
	err = llm.WithRetry(ctx, l.retry, func(ctx context.Context) error {
		text, genErr := l.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
		if genErr != nil {
			return genErr
		}
		raw = text
		return nil
	})
	return raw, err
}

// applyAmendment parses and gates the LLM reply. A reply that is not valid
// amendment JSON is treated as a plain conversational answer with no
// document change.
func (l *Loop) applyAmendment(ctx context.Context, resumeID uuid.UUID, resume *types.GeneratedResume, snapshot *ledger.Snapshot, raw string) *types.RefineResponse {
	cleaned := llm.CleanJSONBlock(raw)

	var amd amendment
	if schemas.ValidateAmendmentReply(cleaned) != nil || json.Unmarshal([]byte(cleaned), &amd) != nil {
		return &types.RefineResponse{
			Reply:            raw,
			ValidationPassed: true,
			Version:          resume.Version,
		}
	}

	if !amd.ChangesMade || amd.UpdatedDocument == nil {
		return &types.RefineResponse{
			Reply:            amd.Reply,
			ValidationPassed: true,
			Version:          resume.Version,
		}
	}

	updated := *amd.UpdatedDocument
	result := validation.Validate(updated, snapshot.AuthorizedTerms())
	if !result.Passed {
		reply := amd.Reply + "\n\nWARNING: the changes were rejected because they failed validation: " +
			strings.Join(result.Errors, "; ") + ". The resume was not updated."
		return &types.RefineResponse{
			Reply:            reply,
			ValidationPassed: false,
			ValidationErrors: result.Errors,
			Version:          resume.Version,
		}
	}

	newVersion, err := l.store.UpdateResumeDocument(ctx, resumeID, updated, resume.Version)
	if err != nil {
		return &types.RefineResponse{
			Reply:            amd.Reply + "\n\nWARNING: the changes could not be saved: " + err.Error(),
			ValidationPassed: false,
			ValidationErrors: []string{err.Error()},
			Version:          resume.Version,
		}
	}

	return &types.RefineResponse{
		Reply:            amd.Reply,
		UpdatedDocument:  updated,
		ValidationPassed: true,
		Version:          newVersion,
	}
}

func formatHistory(history []types.ChatTurn) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	var sb strings.Builder
	for _, turn := range history {
		sb.WriteString(turn.Role)
		sb.WriteString(": ")
		sb.WriteString(turn.Content)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}
