// Package matching scores the overlap between a job description's skill
// requirements and the candidate's verified skill ledger. Matching is
// deterministic, side-effect-free and does no I/O: skill keywords are
// extracted by tokenizing the JD against a known-skill vocabulary (plus the
// ledger's own skill names) with synonym folding.
package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-engine/internal/parsing"
)

// Result holds the outcome of matching a job description against ledger
// skills. MatchedSkills and MissingSkills are always disjoint.
type Result struct {
	MatchedSkills      []string
	MissingSkills      []string
	RequiredSkillMatch float64 // 0-100

	// NoRequirements is set when the JD yields no extractable skill
	// keywords. RequiredSkillMatch is then trivially 100; callers must
	// surface the caveat instead of reporting a perfect score.
	NoRequirements bool
}

// keyword is one extracted JD skill requirement.
type keyword struct {
	display   string
	canonical string
}

// Match extracts skill keywords from the job description and partitions them
// into matched (present in the ledger by name or synonym) and missing.
func Match(ledgerSkills []string, jobDescription string) Result {
	keywords := extractKeywords(jobDescription, ledgerSkills)
	if len(keywords) == 0 {
		return Result{
			MatchedSkills:      []string{},
			MissingSkills:      []string{},
			RequiredSkillMatch: 100,
			NoRequirements:     true,
		}
	}

	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if name, ok := ledgerName(kw, ledgerSkills); ok {
			matched = append(matched, name)
		} else {
			missing = append(missing, kw.display)
		}
	}

	pct := 100 * float64(len(matched)) / float64(len(keywords))
	return Result{
		MatchedSkills:      matched,
		MissingSkills:      missing,
		RequiredSkillMatch: pct,
	}
}

// extractKeywords returns the JD's skill keywords in order of appearance,
// deduplicated by canonical form. The recognized vocabulary is the built-in
// skill list unioned with the ledger's own skill names.
func extractKeywords(jobDescription string, ledgerSkills []string) []keyword {
	foldedJD := parsing.Fold(jobDescription)
	tokens := parsing.Tokenize(jobDescription)
	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = true
	}

	seen := make(map[string]bool)
	var keywords []keyword

	add := func(term, display string) {
		canon := parsing.Canonical(term)
		if seen[canon] {
			return
		}
		seen[canon] = true
		keywords = append(keywords, keyword{display: display, canonical: canon})
	}

	// Single-token vocabulary terms, in JD order.
	for _, tok := range tokens {
		if display, ok := vocabulary[tok]; ok {
			add(tok, display)
		}
	}

	// Multi-word vocabulary terms, sorted for determinism.
	multi := make([]string, 0)
	for term := range vocabulary {
		if strings.Contains(term, " ") {
			multi = append(multi, term)
		}
	}
	sort.Strings(multi)
	for _, term := range multi {
		if strings.Contains(foldedJD, term) {
			add(term, vocabulary[term])
		}
	}

	// Ledger skills mentioned by the JD but absent from the built-in
	// vocabulary still count as requirements.
	for _, skill := range ledgerSkills {
		folded := parsing.Fold(skill)
		if folded == "" {
			continue
		}
		if strings.Contains(folded, " ") {
			if strings.Contains(foldedJD, folded) {
				add(skill, skill)
			}
		} else if tokenSet[folded] {
			add(skill, skill)
		}
	}

	return keywords
}

// ledgerName resolves an extracted keyword to the ledger skill it matches,
// returning the ledger's own spelling for reporting.
func ledgerName(kw keyword, ledgerSkills []string) (string, bool) {
	for _, skill := range ledgerSkills {
		if parsing.SkillsMatch(kw.display, skill) || parsing.Canonical(skill) == kw.canonical {
			return skill, true
		}
	}
	return "", false
}
