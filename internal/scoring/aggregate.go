// Package scoring combines the matcher and ranker sub-scores into the
// single fit score reported to clients, and derives rule-based improvement
// suggestions from already-computed evidence. No suggestion ever references
// a skill that was not found missing by the matcher.
package scoring

import (
	"fmt"

	"github.com/jonathan/resume-engine/internal/parsing"
)

// Default thresholds for suggestion rules.
const (
	LowFitThreshold     = 40.0 // below this, suggest targeting closer roles
	StrongFitThreshold  = 70.0 // at or above, highlight project experience
	MentionThreshold    = 2    // JD mentions before a missing skill is called out
	maxSkillSuggestions = 5
)

// Weights holds the contribution of each sub-score to the total. They must
// be non-negative and sum to 1.
type Weights struct {
	SkillMatch       float64
	ProjectRelevance float64
	KeywordAlignment float64
}

// DefaultWeights mirrors the scoring formula the engine has always used:
// skills dominate, projects second, raw keyword overlap last.
func DefaultWeights() Weights {
	return Weights{SkillMatch: 0.5, ProjectRelevance: 0.3, KeywordAlignment: 0.2}
}

// Validate checks the weight invariants.
func (w Weights) Validate() error {
	if w.SkillMatch < 0 || w.ProjectRelevance < 0 || w.KeywordAlignment < 0 {
		return fmt.Errorf("scoring weights must be non-negative: %+v", w)
	}
	sum := w.SkillMatch + w.ProjectRelevance + w.KeywordAlignment
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("scoring weights must sum to 1, got %.3f", sum)
	}
	return nil
}

// Total computes the weighted aggregate of the three sub-scores, each in
// [0,100], clamped to [0,100].
func (w Weights) Total(skillMatch, projectRelevance, keywordAlignment float64) float64 {
	total := w.SkillMatch*skillMatch + w.ProjectRelevance*projectRelevance + w.KeywordAlignment*keywordAlignment
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// KeywordAlignment measures how much of the JD's full vocabulary (not just
// recognized skills) is covered by the ledger's text. Both sides are
// stopword-filtered token sets.
func KeywordAlignment(jobDescription string, ledgerText string) float64 {
	jdTokens := parsing.TokenSet(jobDescription)
	if len(jdTokens) == 0 {
		return 0
	}
	ledgerTokens := parsing.TokenSet(ledgerText)

	covered := 0
	for tok := range jdTokens {
		if ledgerTokens[tok] {
			covered++
		}
	}
	return 100 * float64(covered) / float64(len(jdTokens))
}

// Suggestions derives improvement suggestions from the computed evidence:
// one per missing skill the JD mentions at least MentionThreshold times,
// one generic suggestion when the total score is low, and one encouraging
// note when the fit is strong.
func Suggestions(missingSkills []string, jobDescription string, totalScore float64) []string {
	suggestions := make([]string, 0, len(missingSkills)+1)

	emphasized := 0
	for _, skill := range missingSkills {
		if emphasized >= maxSkillSuggestions {
			break
		}
		if n := parsing.CountTerm(jobDescription, skill); n >= MentionThreshold {
			suggestions = append(suggestions, fmt.Sprintf(
				"The job description mentions %s %d times but it is not in your profile; consider adding it if you have real experience.",
				skill, n))
			emphasized++
		}
	}

	switch {
	case totalScore < LowFitThreshold:
		suggestions = append(suggestions,
			"Your overall fit for this role is low. Consider targeting roles more aligned with your current skills.")
	case totalScore >= StrongFitThreshold:
		suggestions = append(suggestions,
			"Strong match. Focus on highlighting your most relevant project experience.")
	}

	return suggestions
}
