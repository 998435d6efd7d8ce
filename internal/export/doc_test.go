package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocHTMLStructure(t *testing.T) {
	html := DocHTML(sampleQuiz())

	assert.Contains(t, html, `<h1 style="text-align: center;">River Deltas</h1>`)
	assert.Contains(t, html, "Name: __________________")
	assert.Contains(t, html, "<h2>I. Comprehension</h2>")
	assert.Contains(t, html, "<strong>1. Where do deltas form?</strong>")
	assert.Contains(t, html, `(A) River mouths`)
	assert.Contains(t, html, `page-break-before:always`)
	assert.Contains(t, html, "<h2>Comprehension Answers &amp; Explanations</h2>")
}

func TestDocHTMLEscapesContent(t *testing.T) {
	q := sampleQuiz()
	q.Title = `Fractions <1/2> & "friends"`
	q.Comprehension[0].Text = "Is 1 < 2?"

	html := DocHTML(q)

	assert.Contains(t, html, "Fractions &lt;1/2&gt; &amp; &#34;friends&#34;")
	assert.Contains(t, html, "Is 1 &lt; 2?")
	assert.NotContains(t, html, "<1/2>")
}

func TestWriteDoc(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteDoc(sampleQuiz(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "River Deltas.doc"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1")
}

func TestDocFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"River Deltas", "River Deltas.doc"},
		{`a/b\c:d`, "a_b_c_d.doc"},
		{"  ", "Generated Practice Quiz.doc"},
		{"Q?", "Q_.doc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, docFilename(tt.title))
	}
}
