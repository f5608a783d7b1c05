// Package ingestion prepares raw job description input for the engine.
// Job descriptions arrive as free-form text or pasted HTML; both are reduced
// to clean plain text before any matching or generation runs.
package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MinJobDescriptionLength is the shortest plain-text JD the engine accepts.
const MinJobDescriptionLength = 10

// MalformedJDError indicates the job description could not be reduced to
// usable plain text. It is rejected before any generation attempt.
type MalformedJDError struct {
	Reason string
}

func (e *MalformedJDError) Error() string {
	return fmt.Sprintf("malformed job description: %s", e.Reason)
}

var htmlTagPattern = regexp.MustCompile(`(?i)<\s*(html|body|div|p|ul|li|br|h[1-6])[\s>/]`)

// NormalizeJobDescription converts raw JD input into clean plain text.
// HTML input is stripped to its visible text; whitespace is collapsed.
// Returns a MalformedJDError when the result is empty or too short.
func NormalizeJobDescription(raw string) (string, error) {
	text := raw
	if looksLikeHTML(raw) {
		extracted, err := extractText(raw)
		if err != nil {
			return "", &MalformedJDError{Reason: fmt.Sprintf("failed to parse HTML: %v", err)}
		}
		text = extracted
	}

	text = collapseWhitespace(text)
	if text == "" {
		return "", &MalformedJDError{Reason: "empty after normalization"}
	}
	if len(text) < MinJobDescriptionLength {
		return "", &MalformedJDError{Reason: fmt.Sprintf("too short (%d characters)", len(text))}
	}
	return text, nil
}

// looksLikeHTML reports whether raw input appears to be pasted HTML rather
// than plain text with stray angle brackets.
func looksLikeHTML(raw string) bool {
	return htmlTagPattern.MatchString(raw)
}

// extractText pulls the visible text out of an HTML job posting.
func extractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	// Scripts and styles carry no posting content
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
		sb.WriteString("\n")
	})
	if sb.Len() == 0 {
		// Fragments without a <body> still parse; fall back to the document text
		return doc.Text(), nil
	}
	return sb.String(), nil
}

// collapseWhitespace normalizes line endings and squeezes runs of blank
// space so token counting is stable across input sources.
func collapseWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
