package handlers

import (
	"fmt"
	"html/template"
	"net/url"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
	"github.com/SolaireOfAndor/Summit-sub001/internal/cms"
	"github.com/SolaireOfAndor/Summit-sub001/internal/format"
	"github.com/SolaireOfAndor/Summit-sub001/internal/seo"
)

var categoryCaser = cases.Title(language.BritishEnglish)

// GuideCard is the summary tile for a guide.
type GuideCard struct {
	Slug          string
	Href          string
	Title         string
	Summary       string
	Category      string
	CategoryLabel string
	Image         string
	ReadingTime   string
	Published     string
}

// CategoryFilter is one tab of the guide category filter.
type CategoryFilter struct {
	Label  string
	Href   string
	Active bool
}

// GuidesView is the payload for the guide index.
type GuidesView struct {
	Categories []CategoryFilter
	Cards      []GuideCard
}

// GuideView is the payload for a single guide.
type GuideView struct {
	Card    GuideCard
	Author  string
	Updated string
	Body    template.HTML
	Related []PropertyCard
}

// GuideCards maps guides to tiles, preserving order.
func GuideCards(guides []cms.Guide) []GuideCard {
	cards := make([]GuideCard, 0, len(guides))
	for _, g := range guides {
		cards = append(cards, guideCard(g))
	}
	return cards
}

func guideCard(g cms.Guide) GuideCard {
	return GuideCard{
		Slug:          g.Slug,
		Href:          "/guides/" + g.Slug,
		Title:         g.Title,
		Summary:       g.Summary,
		Category:      g.Category,
		CategoryLabel: categoryCaser.String(g.Category),
		Image:         g.HeroImageURL,
		ReadingTime:   fmt.Sprintf("%d min read", g.ReadingTimeMinutes),
		Published:     format.FmtDate(g.PublishAt),
	}
}

// Guides builds the guide index, optionally filtered by category.
func (b *Builder) Guides(lib *cms.Library, category string) PageData {
	pd := b.page("guides", "/guides", "NDIS housing guides",
		"Plain-English guides to SDA, SIL, short term accommodation and moving into supported housing.", "", "website", "")
	filters := []CategoryFilter{{Label: "All guides", Href: "/guides", Active: category == ""}}
	for _, c := range lib.Categories() {
		q := url.Values{"category": {c}}
		filters = append(filters, CategoryFilter{
			Label:  categoryCaser.String(c),
			Href:   "/guides?" + q.Encode(),
			Active: c == category,
		})
	}
	pd.Guides = &GuidesView{
		Categories: filters,
		Cards:      GuideCards(lib.Guides(category)),
	}
	return pd
}

// Guide builds a single guide page with Article structured data. related
// properties are shown beneath the body.
func (b *Builder) Guide(g cms.Guide, related []catalog.Property) PageData {
	title := g.Title
	if g.SEO.MetaTitle != "" {
		title = g.SEO.MetaTitle
	}
	description := g.Summary
	if g.SEO.MetaDescription != "" {
		description = g.SEO.MetaDescription
	}
	path := "/guides/" + g.Slug
	pd := b.page("guide", path, title, description, g.HeroImageURL, "article", g.Title)
	// the visible heading always uses the guide title
	pd.Title = g.Title

	var published, modified string
	if !g.PublishAt.IsZero() {
		published = g.PublishAt.Format(catalog.DateLayout)
	}
	if !g.UpdatedAt.IsZero() {
		modified = g.UpdatedAt.Format(catalog.DateLayout)
	}
	author := g.Author
	if author == "" {
		author = seo.SiteName
	}
	article := seo.Article(g.Title, description, pd.SEO.Canonical, pd.SEO.OG.Image, author, published, modified)
	pd.SEO.JSONLD = append([]template.JS{seo.Script(article)}, pd.SEO.JSONLD...)

	if len(related) > FeaturedLimit {
		related = related[:FeaturedLimit]
	}
	view := &GuideView{
		Card:    guideCard(g),
		Author:  author,
		Body:    g.Body,
		Related: b.Cards(related),
	}
	if !g.UpdatedAt.Equal(g.PublishAt) {
		view.Updated = format.FmtDate(g.UpdatedAt)
	}
	pd.Guide = view
	return pd
}
