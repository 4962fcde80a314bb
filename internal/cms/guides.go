package cms

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

//go:embed guides/*.md
var guideFiles embed.FS

// Guide is a rendered help article.
type Guide struct {
	Slug               string
	Title              string
	Summary            string
	Body               template.HTML
	Category           string
	HeroImageURL       string
	ReadingTimeMinutes int
	Author             string
	PublishAt          time.Time
	UpdatedAt          time.Time
	SEO                GuideSEO
}

// GuideSEO contains optional metadata overrides.
type GuideSEO struct {
	MetaTitle       string
	MetaDescription string
}

// Library is the parsed, read-only guide collection.
type Library struct {
	guides []Guide
	bySlug map[string]int
}

// LoadGuides parses the guides embedded in the binary.
func LoadGuides() (*Library, error) {
	sub, err := fs.Sub(guideFiles, "guides")
	if err != nil {
		return nil, err
	}
	return LoadGuidesFS(sub)
}

// LoadGuidesFS parses every *.md file at the root of fsys. The file name
// without extension is the slug. Any parse failure aborts the load.
func LoadGuidesFS(fsys fs.FS) (*Library, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("cms: list guides: %w", err)
	}
	lib := &Library{bySlug: map[string]int{}}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		slug := sanitizeSlug(strings.TrimSuffix(e.Name(), ".md"))
		if slug == "" {
			return nil, fmt.Errorf("cms: invalid guide file name %q", e.Name())
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("cms: read guide %s: %w", e.Name(), err)
		}
		g, err := parseGuide(slug, data)
		if err != nil {
			return nil, err
		}
		lib.guides = append(lib.guides, g)
	}
	sortGuides(lib.guides)
	for i, g := range lib.guides {
		lib.bySlug[g.Slug] = i
	}
	return lib, nil
}

func parseGuide(slug string, data []byte) (Guide, error) {
	fm, body := splitFrontMatter(string(data))
	front, err := parseFrontMatter(fm)
	if err != nil {
		return Guide{}, fmt.Errorf("cms: parse front matter %s: %w", slug, err)
	}
	html, err := RenderMarkdown(body)
	if err != nil {
		return Guide{}, fmt.Errorf("cms: render guide %s: %w", slug, err)
	}
	g := Guide{
		Slug:               slug,
		Title:              strings.TrimSpace(front.Title),
		Summary:            strings.TrimSpace(front.Summary),
		Body:               html,
		Category:           strings.ToLower(strings.TrimSpace(front.Category)),
		HeroImageURL:       strings.TrimSpace(front.HeroImage),
		ReadingTimeMinutes: ReadingTime(html),
		Author:             strings.TrimSpace(front.Author),
		PublishAt:          parseContentDate(front.Published),
		UpdatedAt:          parseContentDate(front.Updated),
		SEO: GuideSEO{
			MetaTitle:       strings.TrimSpace(front.SEO.Title),
			MetaDescription: strings.TrimSpace(front.SEO.Description),
		},
	}
	if g.Title == "" {
		g.Title = prettifySlug(slug)
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = g.PublishAt
	}
	return g, nil
}

// Len returns the number of guides.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.guides)
}

// Guides returns guides newest first, optionally limited to one category.
func (l *Library) Guides(category string) []Guide {
	if l == nil {
		return []Guide{}
	}
	category = strings.ToLower(strings.TrimSpace(category))
	out := make([]Guide, 0, len(l.guides))
	for _, g := range l.guides {
		if category != "" && g.Category != category {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Guide retrieves a single guide by slug.
func (l *Library) Guide(slug string) (Guide, error) {
	slug = sanitizeSlug(slug)
	if l == nil || slug == "" {
		return Guide{}, ErrNotFound
	}
	i, ok := l.bySlug[slug]
	if !ok {
		return Guide{}, ErrNotFound
	}
	return l.guides[i], nil
}

// Categories returns the distinct guide categories in first-seen order.
func (l *Library) Categories() []string {
	if l == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, g := range l.guides {
		if g.Category == "" || seen[g.Category] {
			continue
		}
		seen[g.Category] = true
		out = append(out, g.Category)
	}
	return out
}

func sortGuides(items []Guide) {
	sort.SliceStable(items, func(i, j int) bool {
		a := items[i]
		b := items[j]

		switch {
		case !a.PublishAt.IsZero() && !b.PublishAt.IsZero():
			if !a.PublishAt.Equal(b.PublishAt) {
				return a.PublishAt.After(b.PublishAt)
			}
		case !a.PublishAt.IsZero():
			return true
		case !b.PublishAt.IsZero():
			return false
		}
		return a.Slug < b.Slug
	})
}
