package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-engine/internal/ledger"
	"github.com/jonathan/resume-engine/internal/llm"
	"github.com/jonathan/resume-engine/internal/prompts"
	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/types"
)

// EmptySectionError reports a template placeholder with no ledger data to
// fill it. Generation refuses to pad missing facts with invented content.
type EmptySectionError struct {
	Section string
}

func (e *EmptySectionError) Error() string {
	return fmt.Sprintf("template requires a %s section but the ledger has no data for it", e.Section)
}

// Request carries everything one generation pass needs. MatchedSkills and
// RankedProjects come from the matcher and ranker; the generator itself
// never selects facts.
type Request struct {
	JobDescription string
	Template       types.ResumeTemplate
	Snapshot       *ledger.Snapshot
	MatchedSkills  []string
	RankedProjects []types.ProjectRanking
}

// Generator fills templates from verified facts.
type Generator struct {
	client llm.Client
	retry  llm.RetryPolicy
}

// New creates a generator backed by the given LLM client. A nil client
// disables LLM summaries; the deterministic fallback is used instead.
func New(client llm.Client) *Generator {
	return &Generator{client: client, retry: llm.DefaultRetryPolicy()}
}

// Generate fills the template's placeholders and returns the candidate
// document. Unknown placeholders and placeholders without backing ledger
// data are input errors; the caller validates the result before accepting.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	markers, err := rendering.Placeholders(req.Template.Content)
	if err != nil {
		return "", err
	}

	sections := make(map[rendering.Placeholder]string, len(markers))
	for _, marker := range markers {
		section, err := g.buildSection(ctx, marker, req)
		if err != nil {
			return "", err
		}
		sections[marker] = section
	}

	return rendering.Fill(req.Template.Content, sections)
}

func (g *Generator) buildSection(ctx context.Context, marker rendering.Placeholder, req Request) (string, error) {
	switch marker {
	case rendering.PlaceholderSummary:
		if req.Snapshot.IsEmpty() {
			return "", &EmptySectionError{Section: "summary"}
		}
		return g.summary(ctx, req), nil

	case rendering.PlaceholderSkills:
		skills := req.MatchedSkills
		if len(skills) == 0 {
			skills = req.Snapshot.SkillNames()
		}
		if len(skills) == 0 {
			return "", &EmptySectionError{Section: "skills"}
		}
		return skillsSection(skills), nil

	case rendering.PlaceholderExperience:
		if len(req.Snapshot.Experiences) == 0 {
			return "", &EmptySectionError{Section: "experience"}
		}
		return experienceSection(req.Snapshot.Experiences), nil

	case rendering.PlaceholderProjects:
		if len(req.Snapshot.Projects) == 0 {
			return "", &EmptySectionError{Section: "projects"}
		}
		return projectsSection(req.RankedProjects, req.Snapshot.Projects), nil

	default:
		return "", &rendering.UnknownPlaceholderError{Name: string(marker)}
	}
}

// summary asks the LLM for a short professional summary grounded in the
// verified facts, falling back to a deterministic one on any failure.
func (g *Generator) summary(ctx context.Context, req Request) string {
	if g.client == nil {
		return fallbackSummary(req.MatchedSkills, req.Snapshot.Experiences)
	}

	template, err := prompts.Get("generation.json", "professional-summary")
	if err != nil {
		return fallbackSummary(req.MatchedSkills, req.Snapshot.Experiences)
	}

	prompt := prompts.Format(template, map[string]string{
		"JobDescription": req.JobDescription,
		"MatchedSkills":  strings.Join(req.MatchedSkills, ", "),
		"TopProjects":    projectFacts(req.RankedProjects, req.Snapshot.Projects),
		"Experiences":    experienceFacts(req.Snapshot.Experiences),
	})

	var summary string
	err = llm.WithRetry(ctx, g.retry, func(ctx context.Context) error {
		text, genErr := g.client.GenerateContent(ctx, prompt, llm.TierLite)
		if genErr != nil {
			return genErr
		}
		summary = strings.TrimSpace(text)
		return nil
	})
	if err != nil || summary == "" {
		return fallbackSummary(req.MatchedSkills, req.Snapshot.Experiences)
	}
	return rendering.EscapeLaTeX(summary)
}

// projectFacts flattens the ranked projects into prompt context.
func projectFacts(ranked []types.ProjectRanking, projects []types.Project) string {
	byID := make(map[string]types.Project, len(projects))
	for _, p := range projects {
		byID[p.ID.String()] = p
	}

	var sb strings.Builder
	for i, r := range ranked {
		p, ok := byID[r.ProjectID.String()]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%d. %s: %s", i+1, p.Title, p.Description)
		if len(p.Technologies) > 0 {
			fmt.Fprintf(&sb, " (Technologies: %s)", strings.Join(p.Technologies, ", "))
		}
		if p.Impact != "" {
			fmt.Fprintf(&sb, " Impact: %s", p.Impact)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// experienceFacts flattens work history into prompt context.
func experienceFacts(experiences []types.Experience) string {
	var sb strings.Builder
	for _, exp := range experiences {
		fmt.Fprintf(&sb, "- %s at %s: %s", exp.Role, exp.Company, exp.Description)
		if len(exp.Technologies) > 0 {
			fmt.Fprintf(&sb, " (Technologies: %s)", strings.Join(exp.Technologies, ", "))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}
