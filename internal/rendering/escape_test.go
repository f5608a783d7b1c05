package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	assert.Equal(t, `50\% faster \& cheaper`, EscapeLaTeX("50% faster & cheaper"))
	assert.Equal(t, `C\# and F\#`, EscapeLaTeX("C# and F#"))
	assert.Equal(t, `\$1M ARR`, EscapeLaTeX("$1M ARR"))
	assert.Equal(t, `snake\_case`, EscapeLaTeX("snake_case"))
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_Backslash(t *testing.T) {
	// A raw backslash must not become \\ because that is a LaTeX line break.
	assert.Equal(t, `\textbackslash{}emph`, EscapeLaTeX(`\emph`))
}

func TestUnescapeLaTeX_RoundTrip(t *testing.T) {
	original := `Raised revenue by 30% ($2M) via A&B_testing in {prod}`
	assert.Equal(t, original, UnescapeLaTeX(EscapeLaTeX(original)))
}
