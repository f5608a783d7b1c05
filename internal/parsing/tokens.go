package parsing

import "strings"

// stopwords are common resume/JD words excluded from keyword and entity
// matching so that filler vocabulary never counts as a skill or a claim.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true, "with": true,
	"by": true, "from": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "shall": true, "can": true,
	"need": true, "must": true, "it": true, "its": true, "this": true,
	"that": true, "these": true, "those": true, "i": true, "me": true,
	"my": true, "we": true, "us": true, "our": true, "you": true, "your": true,
	"not": true, "no": true, "all": true, "each": true, "every": true,
	"both": true, "few": true, "more": true, "most": true, "other": true,
	"some": true, "such": true, "than": true, "too": true, "very": true,
	"just": true, "also": true, "about": true, "up": true, "out": true,
	"new": true, "used": true, "using": true, "developed": true, "built": true,
	"created": true, "designed": true, "implemented": true, "managed": true,
	"led": true, "worked": true, "experience": true, "experienced": true,
	"proficient": true, "strong": true, "team": true, "project": true,
	"system": true, "application": true, "development": true,
	"engineering": true, "software": true, "data": true, "web": true,
	"cloud": true, "server": true, "client": true, "user": true,
	"business": true, "years": true, "year": true, "over": true,
	"across": true, "multiple": true, "various": true, "key": true,
	"core": true, "professional": true, "technical": true, "including": true,
	"ensured": true, "within": true, "collaborated": true, "distributed": true,
	"optimized": true, "integrated": true, "facilitated": true,
	"maintained": true, "performed": true, "involved": true, "provided": true,
	"high": true, "performance": true, "quality": true, "production": true,
	"services": true, "solutions": true, "features": true, "delivery": true,
	"successful": true, "driven": true, "focused": true, "based": true,
	"related": true, "associated": true, "as": true, "work": true,
	"role": true, "skills": true, "looking": true, "seeking": true,
	"candidate": true, "ideal": true, "plus": true, "required": true,
	"preferred": true, "knowledge": true, "ability": true, "you'll": true,
}

// IsStopword reports whether the folded form of word is filler vocabulary.
func IsStopword(word string) bool {
	return stopwords[Fold(word)]
}

// Tokenize splits free-form text into lowercase word tokens. Characters
// meaningful inside skill names (+, #, /) are preserved so "c++", "c#" and
// "ci/cd" survive tokenization.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#' || r == '/':
			return false
		default:
			return true
		}
	})
}

// TokenSet returns the deduplicated, stopword-filtered token set of text.
// Single-character tokens are dropped except for the language names.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		if len(tok) < 2 && tok != "c" && tok != "r" {
			continue
		}
		if stopwords[tok] {
			continue
		}
		set[tok] = true
	}
	return set
}

// CountTerm counts whole-token occurrences of term in text, after folding.
func CountTerm(text, term string) int {
	folded := Fold(term)
	if folded == "" {
		return 0
	}
	count := 0
	for _, tok := range Tokenize(text) {
		if Fold(tok) == folded {
			count++
		}
	}
	// Multi-word terms never match single tokens; fall back to substring
	// counting over the folded text.
	if count == 0 && strings.Contains(folded, " ") {
		count = strings.Count(Fold(text), folded)
	}
	return count
}
