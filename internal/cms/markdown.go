package cms

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// wordsPerMinute is the reading speed used for reading-time estimates.
const wordsPerMinute = 200

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// raw HTML is passed through here and stripped by the sanitizer below
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func htmlPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("figure", "figcaption")
		p.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "table")
		p.AllowAttrs("loading").OnElements("img")
		p.RequireNoFollowOnLinks(true)
		policy = p
	})
	return policy
}

// RenderMarkdown converts markdown to sanitized HTML safe for templates.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(htmlPolicy().SanitizeBytes(buf.Bytes())), nil
}

// ReadingTime estimates whole minutes to read an HTML fragment, never less than one.
func ReadingTime(body template.HTML) int {
	words := 0
	z := html.NewTokenizer(strings.NewReader(string(body)))
	for {
		switch z.Next() {
		case html.ErrorToken:
			minutes := (words + wordsPerMinute - 1) / wordsPerMinute
			if minutes < 1 {
				minutes = 1
			}
			return minutes
		case html.TextToken:
			words += len(strings.Fields(string(z.Text())))
		}
	}
}
