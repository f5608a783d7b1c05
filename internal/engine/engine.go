package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-engine/internal/generation"
	"github.com/jonathan/resume-engine/internal/ingestion"
	"github.com/jonathan/resume-engine/internal/ledger"
	"github.com/jonathan/resume-engine/internal/matching"
	"github.com/jonathan/resume-engine/internal/ranking"
	"github.com/jonathan/resume-engine/internal/scoring"
	"github.com/jonathan/resume-engine/internal/types"
	"github.com/jonathan/resume-engine/internal/validation"
)

// DefaultMaxAttempts bounds how many times generation is retried when the
// validator rejects a candidate.
const DefaultMaxAttempts = 3

// Store is the persistence surface the engine needs.
type Store interface {
	GetTemplate(ctx context.Context, id uuid.UUID) (*types.ResumeTemplate, error)
	CreateResume(ctx context.Context, resume *types.GeneratedResume) (*types.GeneratedResume, error)
	GetResume(ctx context.Context, id uuid.UUID) (*types.GeneratedResume, error)
}

// Options tune the engine. Zero values fall back to defaults.
type Options struct {
	Weights     scoring.Weights
	RankLimit   int
	MaxAttempts int
}

// Engine runs the read path (analysis) and the write path (generation).
type Engine struct {
	store       Store
	accessor    *ledger.Accessor
	generator   *generation.Generator
	weights     scoring.Weights
	rankLimit   int
	maxAttempts int
}

// New creates an engine. The generator may be built around a nil LLM client
// for fully deterministic operation.
func New(store Store, accessor *ledger.Accessor, generator *generation.Generator, opts Options) (*Engine, error) {
	weights := opts.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	rankLimit := opts.RankLimit
	if rankLimit <= 0 {
		rankLimit = ranking.DefaultLimit
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Engine{
		store:       store,
		accessor:    accessor,
		generator:   generator,
		weights:     weights,
		rankLimit:   rankLimit,
		maxAttempts: maxAttempts,
	}, nil
}

// Score runs the read path: match, rank and aggregate without generating
// anything.
func (e *Engine) Score(ctx context.Context, jobDescription string) (*types.MatchScoreBreakdown, error) {
	jd, err := ingestion.NormalizeJobDescription(jobDescription)
	if err != nil {
		return nil, err
	}

	snapshot, err := e.accessor.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := e.analyze(ctx, jd, snapshot)
	return breakdown, nil
}

// Result is the outcome of one generation request. Resume is set only when
// the candidate passed validation and was persisted; a failed candidate is
// returned alongside its errors instead of being silently discarded.
type Result struct {
	Resume     *types.GeneratedResume
	Document   string
	Validation types.ValidationResult
	Breakdown  *types.MatchScoreBreakdown
}

// Generate runs the write path: normalize the JD, score it against the
// ledger, fill the template from verified facts, gate the candidate through
// the validator and persist it at version 1.
func (e *Engine) Generate(ctx context.Context, req types.GenerateRequest) (*Result, error) {
	templateID, err := uuid.Parse(req.TemplateID)
	if err != nil {
		return nil, &InputError{Reason: fmt.Sprintf("invalid template id %q", req.TemplateID)}
	}

	jd, err := ingestion.NormalizeJobDescription(req.JobDescription)
	if err != nil {
		return nil, err
	}

	template, err := e.store.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	snapshot, err := e.accessor.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := e.analyze(ctx, jd, snapshot)

	genReq := generation.Request{
		JobDescription: jd,
		Template:       *template,
		Snapshot:       snapshot,
		MatchedSkills:  breakdown.MatchedSkills,
		RankedProjects: breakdown.RankedProjects,
	}

	authorized := snapshot.AuthorizedTerms()

	var document string
	var result types.ValidationResult
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		document, err = e.generator.Generate(ctx, genReq)
		if err != nil {
			return nil, err
		}

		result = validation.Validate(document, authorized)
		if result.Passed {
			break
		}
	}

	if !result.Passed {
		return &Result{
			Document:   document,
			Validation: result,
			Breakdown:  breakdown,
		}, &GenerationError{Attempts: e.maxAttempts, Candidate: document, Errors: result.Errors}
	}

	resume := &types.GeneratedResume{
		TemplateID:     &templateID,
		JobDescription: jd,
		DocumentOutput: document,
		MatchScore:     breakdown.TotalScore,
		MatchedSkills:  breakdown.MatchedSkills,
		MissingSkills:  breakdown.MissingSkills,
		Analysis:       breakdown,
	}
	persisted, err := e.store.CreateResume(ctx, resume)
	if err != nil {
		return nil, err
	}

	return &Result{
		Resume:     persisted,
		Document:   document,
		Validation: result,
		Breakdown:  breakdown,
	}, nil
}

// Analysis returns the score breakdown stored with a generated resume.
func (e *Engine) Analysis(ctx context.Context, resumeID uuid.UUID) (*types.MatchScoreBreakdown, error) {
	resume, err := e.store.GetResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume.Analysis != nil {
		return resume.Analysis, nil
	}

	// Older records carry no stored breakdown; recompute from the current
	// ledger.
	snapshot, err := e.accessor.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return e.analyze(ctx, resume.JobDescription, snapshot), nil
}

// analyze runs the matcher and ranker concurrently, then aggregates.
func (e *Engine) analyze(ctx context.Context, jd string, snapshot *ledger.Snapshot) *types.MatchScoreBreakdown {
	var (
		matchResult matching.Result
		ranked      []types.ProjectRanking
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		matchResult = matching.Match(snapshot.SkillNames(), jd)
		return nil
	})
	g.Go(func() error {
		ranked = ranking.Rank(snapshot.Projects, jd, e.rankLimit)
		return nil
	})
	_ = g.Wait() // both branches are pure computation

	projectRelevance := ranking.AggregateRelevance(ranked)
	keywordAlignment := scoring.KeywordAlignment(jd, snapshot.Text())
	total := e.weights.Total(matchResult.RequiredSkillMatch, projectRelevance, keywordAlignment)

	return &types.MatchScoreBreakdown{
		RequiredSkillMatch:     matchResult.RequiredSkillMatch,
		ProjectRelevance:       projectRelevance,
		KeywordAlignment:       keywordAlignment,
		TotalScore:             total,
		MatchedSkills:          matchResult.MatchedSkills,
		MissingSkills:          matchResult.MissingSkills,
		RankedProjects:         ranked,
		ImprovementSuggestions: scoring.Suggestions(matchResult.MissingSkills, jd, total),
		NoRequirements:         matchResult.NoRequirements,
	}
}
