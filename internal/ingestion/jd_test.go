package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeJobDescription_PlainText(t *testing.T) {
	text, err := NormalizeJobDescription("Senior Go engineer.\r\n\r\nMust   know  Kubernetes.")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer.\nMust know Kubernetes.", text)
}

func TestNormalizeJobDescription_HTML(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
<body><h1>Backend Engineer</h1><p>We need <b>Python</b> and SQL.</p>
<script>trackPageView()</script></body></html>`

	text, err := NormalizeJobDescription(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Python")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "<p>")
}

func TestNormalizeJobDescription_Empty(t *testing.T) {
	_, err := NormalizeJobDescription("   \n\t  ")
	var malformed *MalformedJDError
	require.ErrorAs(t, err, &malformed)
}

func TestNormalizeJobDescription_TooShort(t *testing.T) {
	_, err := NormalizeJobDescription("Go dev")
	var malformed *MalformedJDError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "too short")
}

func TestNormalizeJobDescription_AngleBracketsNotHTML(t *testing.T) {
	text, err := NormalizeJobDescription("Experience with C++ templates like vector<int> required")
	require.NoError(t, err)
	assert.Contains(t, text, "vector<int>")
}
