// Package parsing provides skill-name normalization, synonym folding and
// tokenization shared by the matching, ranking and validation packages.
package parsing

import "strings"

// synonyms maps abbreviated skill names to their long forms. Both directions
// are considered equivalent during matching.
var synonyms = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"py":       "python",
	"golang":   "go",
	"node":     "nodejs",
	"react":    "reactjs",
	"vue":      "vuejs",
	"angular":  "angularjs",
	"postgres": "postgresql",
	"mongo":    "mongodb",
	"k8s":      "kubernetes",
	"tf":       "terraform",
	"aws":      "amazon web services",
	"gcp":      "google cloud platform",
	"ml":       "machine learning",
	"dl":       "deep learning",
	"ai":       "artificial intelligence",
	"ci/cd":    "cicd",
	"ci cd":    "cicd",
}

// Fold normalizes a skill name for comparison: lowercase, trimmed, with
// hyphens and underscores treated as spaces and dots and commas removed
// (so "React.js" folds to "reactjs" territory via substring matching).
func Fold(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}

// Canonical returns the folded form of a skill with abbreviations expanded,
// so "k8s" and "Kubernetes" share one canonical key.
func Canonical(skill string) string {
	f := Fold(skill)
	if full, ok := synonyms[f]; ok {
		return full
	}
	return f
}

// SkillsMatch reports whether two skill names refer to the same skill.
// It accepts exact folded matches, containment either way (so "react"
// matches "react js"), and known abbreviation pairs.
func SkillsMatch(a, b string) bool {
	fa, fb := Fold(a), Fold(b)
	if fa == "" || fb == "" {
		return false
	}
	if fa == fb {
		return true
	}
	// Containment catches variants like "react" vs "react js". Very short
	// names are excluded so "go" never matches inside "django".
	if len(fa) >= 3 && len(fb) >= 3 && (strings.Contains(fa, fb) || strings.Contains(fb, fa)) {
		return true
	}
	if full, ok := synonyms[fa]; ok && full == fb {
		return true
	}
	if full, ok := synonyms[fb]; ok && full == fa {
		return true
	}
	return false
}

// MatchesAny reports whether skill matches any entry of the given set.
func MatchesAny(skill string, set []string) bool {
	for _, candidate := range set {
		if SkillsMatch(skill, candidate) {
			return true
		}
	}
	return false
}
