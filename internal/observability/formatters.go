// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBreakdown outputs a human-readable summary of a score breakdown.
func (p *Printer) PrintBreakdown(breakdown *types.MatchScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total score:        %.1f\n", breakdown.TotalScore))
	sb.WriteString(fmt.Sprintf("Skill match:        %.1f\n", breakdown.RequiredSkillMatch))
	sb.WriteString(fmt.Sprintf("Project relevance:  %.1f\n", breakdown.ProjectRelevance))
	sb.WriteString(fmt.Sprintf("Keyword alignment:  %.1f\n", breakdown.KeywordAlignment))
	if breakdown.NoRequirements {
		sb.WriteString("\nNote: no skill requirements found in the job description\n")
	}

	if len(breakdown.MatchedSkills) > 0 {
		sb.WriteString("\nMatched skills:\n")
		writeList(&sb, breakdown.MatchedSkills)
	}
	if len(breakdown.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		writeList(&sb, breakdown.MissingSkills)
	}

	p.printBox("MATCH SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedProjects outputs the ranked projects with scores and matched
// technologies.
func (p *Printer) PrintRankedProjects(ranked []types.ProjectRanking) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Projects ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		project := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, project.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", project.RelevanceScore))
		if len(project.MatchingTechnologies) > 0 {
			techs := strings.Join(project.MatchingTechnologies, ", ")
			if len(techs) > 40 {
				techs = techs[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Tech:  %s\n", techs))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the improvement suggestions, if any.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for _, suggestion := range suggestions {
		sb.WriteString(fmt.Sprintf("• %s\n", suggestion))
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
