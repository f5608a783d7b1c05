package validation

import (
	"fmt"

	"github.com/jonathan/resume-engine/internal/types"
)

// Validate runs the fact check and the structural check on a candidate
// document. It never mutates anything; the caller decides whether a failed
// result discards the candidate.
func Validate(content string, authorizedTerms []string) types.ValidationResult {
	var errors []string

	for _, entity := range FactCheck(content, authorizedTerms) {
		errors = append(errors, fmt.Sprintf("unauthorized entity %q is not backed by the career ledger", entity))
	}
	errors = append(errors, CheckStructure(content)...)

	return types.ValidationResult{
		Passed: len(errors) == 0,
		Errors: errors,
	}
}
