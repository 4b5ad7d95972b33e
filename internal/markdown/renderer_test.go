package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `# Title

Some *emphasised* text with a [link](https://example.com/a/very/long/path).

- first
- second
`

func TestRender_ConvertsCommonConstructs(t *testing.T) {
	out := New(StyleDocument).Render(sampleInput)

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "<em>emphasised</em>")
	assert.Contains(t, out, `<a href="https://example.com/a/very/long/path">link</a>`)
	assert.Contains(t, out, "<ul>")
	assert.Contains(t, out, "<li>first</li>")
}

func TestRender_AlwaysProducesCompleteDocument(t *testing.T) {
	for _, style := range []Style{StyleDocument, StylePlain} {
		for _, input := range []string{"", "   ", "# Hello", "no markdown at all", "]]]][[[ ***"} {
			out := New(style).Render(input)
			require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"), "style %s input %q", style, input)
			require.Contains(t, out, "</html>")
			require.Contains(t, out, "<body>")
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	r := New(StyleDocument)
	first := r.Render(sampleInput)
	second := r.Render(sampleInput)
	require.Equal(t, first, second)

	// A fresh renderer produces the same bytes too.
	require.Equal(t, first, New(StyleDocument).Render(sampleInput))
}

func TestRender_DocumentStyleEmbedsPresentationRules(t *testing.T) {
	out := New(StyleDocument).Render("# Hello")

	assert.Contains(t, out, "size: A4")
	assert.Contains(t, out, "font-size: 16pt !important")
	assert.Contains(t, out, "word-break: break-all")
	assert.Contains(t, out, "width: 100%")
}

func TestRender_PlainStyleAddsNoStyling(t *testing.T) {
	out := New(StylePlain).Render("# Hello")

	assert.NotContains(t, out, "<style>")
	assert.Contains(t, out, "<h1")
}

func TestNew_UnknownStyleFallsBackToDocument(t *testing.T) {
	out := New(Style("fancy")).Render("x")
	assert.Contains(t, out, "size: A4")
}

func TestRender_GFMTables(t *testing.T) {
	out := New(StylePlain).Render("| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.Contains(t, out, "<table>")
}
