// Package engine wires the matcher, ranker, aggregator, generator and
// validator into the two top-level operations: scoring analysis and
// validated resume generation.
package engine

import "fmt"

// InputError reports a request the engine cannot act on.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

// GenerationError reports that no candidate document passed the validation
// gate within the attempt limit. The last candidate and its errors are
// carried so the caller can surface them without persisting anything.
type GenerationError struct {
	Attempts  int
	Candidate string
	Errors    []string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed validation after %d attempts (%d errors)", e.Attempts, len(e.Errors))
}
