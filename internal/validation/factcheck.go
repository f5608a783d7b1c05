// Package validation gates candidate documents: a fact check that traces
// every extracted entity back to the ledger, and a structural check on the
// markup. The validator only classifies; acceptance is the caller's call.
package validation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-engine/internal/parsing"
)

var (
	commandWithArg = regexp.MustCompile(`\\[a-zA-Z]+\{([^}]*)\}`)
	bareCommand    = regexp.MustCompile(`\\[a-zA-Z]+`)
	markupChars    = regexp.MustCompile(`[{}\\%$&~^]`)

	// Listing headers like "Skills: Python, Java" or "Technologies - ...".
	skillSectionPattern = regexp.MustCompile(`(?i)(?:skills?|technologies?|tools?|frameworks?|languages?|platforms?)\s*[:\-|]\s*([^\n]+)`)
	itemPattern         = regexp.MustCompile(`(?m)\\?item\s+(.+)$`)
	boldPattern         = regexp.MustCompile(`\\textbf\{([^}]+)\}`)

	listDelims     = regexp.MustCompile(`[,;|/]`)
	itemListDelims = regexp.MustCompile(`[,;|]`)
)

// stripMarkup removes LaTeX commands while keeping their text content.
func stripMarkup(content string) string {
	clean := commandWithArg.ReplaceAllString(content, "$1")
	clean = bareCommand.ReplaceAllString(clean, " ")
	return markupChars.ReplaceAllString(clean, " ")
}

// extractEntities pulls candidate skill and entity mentions out of a
// document. Three strategies cover the formats generated content uses:
// labeled skill listings, itemized lists, and bold terms.
func extractEntities(content string) map[string]bool {
	extracted := make(map[string]bool)
	clean := stripMarkup(content)

	for _, m := range skillSectionPattern.FindAllStringSubmatch(clean, -1) {
		for _, item := range listDelims.Split(m[1], -1) {
			item = strings.TrimSpace(item)
			if len(item) > 1 && len(item) < 50 {
				extracted[parsing.Fold(item)] = true
			}
		}
	}

	for _, m := range itemPattern.FindAllStringSubmatch(content, -1) {
		line := commandWithArg.ReplaceAllString(m[1], "$1")
		line = strings.NewReplacer("{", "", "}", "", `\`, "").Replace(line)
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= 50 {
			continue
		}
		for _, part := range itemListDelims.Split(line, -1) {
			part = strings.TrimSpace(part)
			if len(part) > 1 {
				extracted[parsing.Fold(part)] = true
			}
		}
	}

	for _, m := range boldPattern.FindAllStringSubmatch(content, -1) {
		extracted[parsing.Fold(m[1])] = true
	}

	return extracted
}

// FactCheck returns the entities in content that do not trace back to any
// authorized term. Authorized terms are the ledger's skills, project titles,
// companies, roles and technologies. An empty result means every claim in
// the document is backed by the ledger.
func FactCheck(content string, authorizedTerms []string) []string {
	authorized := make(map[string]bool, len(authorizedTerms))
	for _, term := range authorizedTerms {
		if f := parsing.Fold(term); f != "" {
			authorized[f] = true
		}
	}

	var violations []string
	for entity := range extractEntities(content) {
		if parsing.IsStopword(entity) {
			continue
		}
		if len(entity) < 2 || len(entity) > 60 {
			continue
		}
		if isAuthorized(entity, authorized) {
			continue
		}
		violations = append(violations, entity)
	}

	sort.Strings(violations)
	return violations
}

func isAuthorized(entity string, authorized map[string]bool) bool {
	if authorized[entity] {
		return true
	}

	// Containment lets "reactjs" trace to "react". Short entities need an
	// exact hit so "and" never traces to "android".
	for term := range authorized {
		if len(entity) > 3 && (strings.Contains(entity, term) || strings.Contains(term, entity)) {
			return true
		}
	}

	// A multi-word phrase traces when any of its content words is itself
	// authorized; such phrases are usually descriptive fragments around a
	// real ledger term.
	if strings.Contains(entity, " ") {
		for _, word := range strings.Fields(entity) {
			if parsing.IsStopword(word) {
				continue
			}
			if authorized[word] {
				return true
			}
		}
	}
	return false
}
