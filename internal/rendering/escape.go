// Package rendering fills placeholder-bearing LaTeX templates and escapes
// ledger text for safe insertion into the target markup.
package rendering

import "strings"

// latexEscaper rewrites LaTeX special characters. Backslash must map to
// \textbackslash{} rather than \\ to avoid producing a line break.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes special LaTeX characters in ledger text so the
// rendered document stays structurally valid regardless of input.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexEscaper.Replace(text)
}

var latexUnescaper = strings.NewReplacer(
	`\textbackslash{}`, `\`,
	`\{`, `{`,
	`\}`, `}`,
	`\$`, `$`,
	`\&`, `&`,
	`\%`, `%`,
	`\#`, `#`,
	`\_`, `_`,
	`\textasciicircum{}`, `^`,
	`\textasciitilde{}`, `~`,
)

// UnescapeLaTeX reverses common LaTeX escapes for plain-text analysis of a
// rendered document (entity extraction, phrase matching).
func UnescapeLaTeX(text string) string {
	return latexUnescaper.Replace(text)
}
