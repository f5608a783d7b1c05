// Package ranking orders ledger projects by relevance to a job description.
// Relevance is bag-of-tokens overlap between the JD and a project's
// technologies, description and domain, normalized by the JD's token count.
// Like matching, ranking is deterministic and does no I/O.
package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-engine/internal/parsing"
	"github.com/jonathan/resume-engine/internal/types"
)

// DefaultLimit is the number of ranked projects returned when the caller
// does not configure one.
const DefaultLimit = 5

// Rank scores every project against the job description and returns the top
// limit projects in descending relevance order. Ties are broken by recency:
// ongoing projects first, then by most recent end date.
func Rank(projects []types.Project, jobDescription string, limit int) []types.ProjectRanking {
	if limit <= 0 {
		limit = DefaultLimit
	}

	jdTokens := parsing.TokenSet(jobDescription)
	foldedJD := parsing.Fold(jobDescription)

	type scored struct {
		ranking types.ProjectRanking
		project types.Project
	}

	entries := make([]scored, 0, len(projects))
	for _, project := range projects {
		entries = append(entries, scored{
			ranking: types.ProjectRanking{
				ProjectID:            project.ID,
				Title:                project.Title,
				RelevanceScore:       relevance(project, jdTokens),
				MatchingTechnologies: matchingTechnologies(project, jdTokens, foldedJD),
			},
			project: project,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ranking.RelevanceScore != entries[j].ranking.RelevanceScore {
			return entries[i].ranking.RelevanceScore > entries[j].ranking.RelevanceScore
		}
		return moreRecent(entries[i].project, entries[j].project)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	ranked := make([]types.ProjectRanking, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, e.ranking)
	}
	return ranked
}

// AggregateRelevance reduces the ranked window to the single project
// sub-score used in the fit breakdown: the mean relevance of the returned
// top-N projects, scaled to [0,100]. (The alternative — top-1 only — was
// rejected as too sensitive to a single lucky overlap.)
func AggregateRelevance(ranked []types.ProjectRanking) float64 {
	if len(ranked) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range ranked {
		sum += r.RelevanceScore
	}
	return 100 * sum / float64(len(ranked))
}

// relevance computes token overlap between the JD and the project's
// technologies, description and domain, normalized by JD token count.
func relevance(project types.Project, jdTokens map[string]bool) float64 {
	if len(jdTokens) == 0 {
		return 0
	}

	var sb strings.Builder
	sb.WriteString(project.Description)
	sb.WriteString(" ")
	sb.WriteString(project.Domain)
	for _, tech := range project.Technologies {
		sb.WriteString(" ")
		sb.WriteString(tech)
	}

	overlap := 0
	for tok := range parsing.TokenSet(sb.String()) {
		if jdTokens[tok] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(jdTokens))
}

// matchingTechnologies returns the project technologies that the JD
// mentions, in the project's own order.
func matchingTechnologies(project types.Project, jdTokens map[string]bool, foldedJD string) []string {
	matched := make([]string, 0, len(project.Technologies))
	for _, tech := range project.Technologies {
		folded := parsing.Fold(tech)
		if folded == "" {
			continue
		}
		if strings.Contains(folded, " ") {
			if strings.Contains(foldedJD, folded) {
				matched = append(matched, tech)
			}
		} else if jdTokens[folded] || jdTokens[parsing.Canonical(tech)] {
			matched = append(matched, tech)
		}
	}
	return matched
}

// moreRecent reports whether project a should outrank b on a relevance tie.
// Ongoing projects (no end date) come first, then later end dates.
func moreRecent(a, b types.Project) bool {
	switch {
	case a.EndDate == nil && b.EndDate == nil:
		return false // stable sort keeps input order
	case a.EndDate == nil:
		return true
	case b.EndDate == nil:
		return false
	default:
		return a.EndDate.After(*b.EndDate)
	}
}
