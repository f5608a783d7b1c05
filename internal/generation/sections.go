// Package generation fills resume templates using only facts from the
// ledger snapshot and the matcher/ranker evidence. Section bodies are built
// deterministically; only the summary paragraph involves the LLM, and it is
// fenced by the same fact constraints.
package generation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/types"
)

// skillsSection renders the matched skills as an itemized list.
func skillsSection(skills []string) string {
	var sb strings.Builder
	sb.WriteString("\\begin{itemize}\n")
	for _, skill := range skills {
		fmt.Fprintf(&sb, "\\item %s\n", rendering.EscapeLaTeX(skill))
	}
	sb.WriteString("\\end{itemize}")
	return sb.String()
}

// experienceSection renders work history. Descriptions go on their own
// lines below the item header.
func experienceSection(experiences []types.Experience) string {
	var sb strings.Builder
	sb.WriteString("\\begin{itemize}\n")
	for _, exp := range experiences {
		fmt.Fprintf(&sb, "\\item \\textbf{%s}, %s \\hfill %s\n",
			rendering.EscapeLaTeX(exp.Role),
			rendering.EscapeLaTeX(exp.Company),
			dateRange(exp.StartDate, exp.EndDate, exp.IsCurrent))
		if exp.Description != "" {
			sb.WriteString(rendering.EscapeLaTeX(exp.Description))
			sb.WriteString("\n")
		}
		if len(exp.Technologies) > 0 {
			fmt.Fprintf(&sb, "\\emph{%s}\n", rendering.EscapeLaTeX(strings.Join(exp.Technologies, ", ")))
		}
	}
	sb.WriteString("\\end{itemize}")
	return sb.String()
}

// projectsSection renders the ranked projects in rank order, falling back
// to ledger order when no ranking is available.
func projectsSection(ranked []types.ProjectRanking, projects []types.Project) string {
	byID := make(map[string]types.Project, len(projects))
	for _, p := range projects {
		byID[p.ID.String()] = p
	}

	ordered := make([]types.Project, 0, len(ranked))
	for _, r := range ranked {
		if p, ok := byID[r.ProjectID.String()]; ok {
			ordered = append(ordered, p)
		}
	}
	if len(ordered) == 0 {
		ordered = projects
	}

	var sb strings.Builder
	sb.WriteString("\\begin{itemize}\n")
	for _, p := range ordered {
		fmt.Fprintf(&sb, "\\item \\textbf{%s}\n", rendering.EscapeLaTeX(p.Title))
		if p.Description != "" {
			sb.WriteString(rendering.EscapeLaTeX(p.Description))
			sb.WriteString("\n")
		}
		if p.Impact != "" {
			sb.WriteString(rendering.EscapeLaTeX(p.Impact))
			sb.WriteString("\n")
		}
		if len(p.Technologies) > 0 {
			fmt.Fprintf(&sb, "\\emph{%s}\n", rendering.EscapeLaTeX(strings.Join(p.Technologies, ", ")))
		}
	}
	sb.WriteString("\\end{itemize}")
	return sb.String()
}

// fallbackSummary builds a summary from ledger facts alone, used when the
// LLM is unavailable or returns nothing usable.
func fallbackSummary(matchedSkills []string, experiences []types.Experience) string {
	role := "Professional"
	if len(experiences) > 0 {
		role = experiences[0].Role
	}

	if len(matchedSkills) == 0 {
		return rendering.EscapeLaTeX(role + " with a verified track record across the listed projects and roles.")
	}

	shown := matchedSkills
	if len(shown) > 5 {
		shown = shown[:5]
	}
	return rendering.EscapeLaTeX(fmt.Sprintf("%s with hands-on experience in %s.", role, strings.Join(shown, ", ")))
}

func dateRange(start, end *time.Time, current bool) string {
	const layout = "Jan 2006"

	from := ""
	if start != nil {
		from = start.Format(layout)
	}
	to := "Present"
	if !current && end != nil {
		to = end.Format(layout)
	}
	if from == "" {
		return to
	}
	return from + " -- " + to
}
