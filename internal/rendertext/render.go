// Package rendertext converts the markdown returned by the analysis endpoints
// into output safe to store or display. Markdown is rendered to HTML and then
// sanitized with an allowlist, so script fragments smuggled into an answer
// never survive.
package rendertext

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	mdhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer turns markdown into sanitized HTML or plain terminal text.
// The zero value is not usable; construct with New.
type Renderer struct {
	md     goldmark.Markdown
	safe   *bluemonday.Policy
	strict *bluemonday.Policy
}

func New() *Renderer {
	return &Renderer{
		// Single newlines become line breaks, matching how field notes
		// are usually written.
		md:     goldmark.New(goldmark.WithRendererOptions(mdhtml.WithHardWraps())),
		safe:   bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

// SafeHTML renders markdown and strips everything outside the user-generated
// content allowlist: structural tags such as headings, lists, emphasis and
// links survive, scripts and event handlers do not.
func (r *Renderer) SafeHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return r.safe.SanitizeReader(&buf).String(), nil
}

// Text renders markdown down to plain text for the terminal: all tags are
// removed and entities decoded. Blank lines separating blocks are collapsed
// to single separators.
func (r *Renderer) Text(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	stripped := r.strict.SanitizeReader(&buf).String()
	stripped = html.UnescapeString(stripped)

	var lines []string
	for _, line := range strings.Split(stripped, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" && (len(lines) == 0 || lines[len(lines)-1] == "") {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n"), nil
}
