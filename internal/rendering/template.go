package rendering

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is a section marker a template may carry. Markers use the
// %%NAME%% form so they survive LaTeX tooling untouched.
type Placeholder string

const (
	PlaceholderSummary    Placeholder = "SUMMARY"
	PlaceholderSkills     Placeholder = "SKILLS"
	PlaceholderExperience Placeholder = "EXPERIENCE"
	PlaceholderProjects   Placeholder = "PROJECTS"
)

// recognized is the closed set of placeholder names a template may use.
var recognized = map[Placeholder]bool{
	PlaceholderSummary:    true,
	PlaceholderSkills:     true,
	PlaceholderExperience: true,
	PlaceholderProjects:   true,
}

var placeholderPattern = regexp.MustCompile(`%%([A-Z_]+)%%`)

// UnknownPlaceholderError reports a template marker outside the recognized
// vocabulary.
type UnknownPlaceholderError struct {
	Name string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown template placeholder %%%%%s%%%%", e.Name)
}

// UnresolvedPlaceholderError reports a marker that survived filling, which
// would leave raw %%NAME%% text in the rendered document.
type UnresolvedPlaceholderError struct {
	Name string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("placeholder %%%%%s%%%% was not filled", e.Name)
}

// Placeholders returns the markers present in content, in order of first
// appearance without duplicates. An unrecognized marker is an error so the
// caller can reject the template before generation starts.
func Placeholders(content string) ([]Placeholder, error) {
	var found []Placeholder
	seen := map[Placeholder]bool{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		p := Placeholder(m[1])
		if !recognized[p] {
			return nil, &UnknownPlaceholderError{Name: m[1]}
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		found = append(found, p)
	}
	return found, nil
}

// Fill substitutes each placeholder in content with its rendered section.
// Every marker in the template must have a section; a leftover marker fails
// rather than shipping a document with visible %%NAME%% text. Anything after
// \end{document} is dropped so trailing model output can never corrupt the
// artifact.
func Fill(content string, sections map[Placeholder]string) (string, error) {
	markers, err := Placeholders(content)
	if err != nil {
		return "", err
	}

	filled := content
	for _, p := range markers {
		section, ok := sections[p]
		if !ok {
			return "", &UnresolvedPlaceholderError{Name: string(p)}
		}
		filled = strings.ReplaceAll(filled, "%%"+string(p)+"%%", section)
	}

	if m := placeholderPattern.FindStringSubmatch(filled); m != nil {
		return "", &UnresolvedPlaceholderError{Name: m[1]}
	}

	const endMarker = `\end{document}`
	if idx := strings.Index(filled, endMarker); idx >= 0 {
		filled = filled[:idx+len(endMarker)] + "\n"
	}
	return filled, nil
}
