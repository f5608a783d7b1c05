package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var unresolvedPlaceholderPattern = regexp.MustCompile(`%%[A-Z_]+%%`)

// CheckStructure verifies markup well-formedness: balanced brace grouping,
// no unresolved placeholder tokens, and nothing trailing the document end.
func CheckStructure(content string) []string {
	var errors []string

	if depth := braceBalance(content); depth != 0 {
		errors = append(errors, fmt.Sprintf("unbalanced braces (depth %+d at end of document)", depth))
	}

	if tokens := unresolvedPlaceholderPattern.FindAllString(content, -1); len(tokens) > 0 {
		seen := map[string]bool{}
		for _, tok := range tokens {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			errors = append(errors, fmt.Sprintf("unresolved placeholder %s", tok))
		}
	}

	const endMarker = `\end{document}`
	if idx := strings.Index(content, endMarker); idx >= 0 {
		if trailing := strings.TrimSpace(content[idx+len(endMarker):]); trailing != "" {
			errors = append(errors, "content after \\end{document}")
		}
	}

	return errors
}

// braceBalance returns the net brace depth, ignoring escaped braces.
func braceBalance(content string) int {
	depth := 0
	escaped := false
	for i := 0; i < len(content); i++ {
		c := content[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}
