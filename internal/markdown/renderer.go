package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Style selects the HTML shell wrapped around the converted markdown.
type Style string

const (
	// StyleDocument is the print-oriented A4 template: fixed page box,
	// forced font scale across all text elements, aggressive URL breaking.
	StyleDocument Style = "document"
	// StylePlain is a bare HTML5 shell with no presentation rules.
	StylePlain Style = "plain"
)

// documentShell pins the page geometry and overrides markdown-specified
// font sizes so arbitrary input stays readable on A4; long URLs are broken
// rather than allowed to overflow the line box.
const documentShell = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Document</title>
    <style>
        @page {
            size: A4;
            margin: 10mm;
        }
        html {
            font-size: 16pt !important;
            width: 210mm;  /* A4 width */
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            line-height: 1.6;
            padding: 0 5em;
            font-size: 1rem !important;
            width: 100%%;
            margin: 0;
            overflow-wrap: break-word;
            word-wrap: break-word;
            word-break: break-word;
        }
        /* Force consistent sizes */
        p, div, span, li, td {
            font-size: 1rem !important;
        }
        h1 { font-size: 1.4rem !important; }
        h2 { font-size: 1.2rem !important; }
        h3 { font-size: 1.1rem !important; }
        h4, h5, h6 { font-size: 1.1rem !important; }
        /* Handle long URLs */
        a {
            word-wrap: break-word;
            word-break: break-all;
            white-space: pre-wrap;
            overflow-wrap: break-word;
            max-width: 100%%;
            display: inline-block;
        }
    </style>
</head>
<body>
    %s
</body>
</html>`

const plainShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
</head>
<body>
%s
</body>
</html>`

// Renderer converts markdown text into a standalone HTML document.
type Renderer struct {
	md    goldmark.Markdown
	shell string
}

// New creates a Renderer with GFM extensions wrapping its output in the
// shell selected by style. Unknown styles fall back to StyleDocument.
func New(style Style) *Renderer {
	shell := documentShell
	if style == StylePlain {
		shell = plainShell
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &Renderer{md: md, shell: shell}
}

// Render converts markdown to a complete HTML5 document. It accepts any
// input, including empty or malformed markdown, and is deterministic:
// identical input yields byte-identical output.
func (r *Renderer) Render(markdown string) string {
	var buf bytes.Buffer
	// Convert only fails when the writer fails; bytes.Buffer never does.
	_ = r.md.Convert([]byte(markdown), &buf)
	return fmt.Sprintf(r.shell, buf.String())
}
