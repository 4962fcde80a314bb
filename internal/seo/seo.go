package seo

import (
	"strings"
)

// SiteName is appended to every page title.
const SiteName = "Summit Living"

// TitleDelimiter separates the page title from SiteName.
const TitleDelimiter = " | "

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is everything the base layout needs for the document head.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// Title joins a page title with the site name. An empty page title yields the
// site name alone.
func Title(page string) string {
	page = strings.TrimSpace(page)
	if page == "" {
		return SiteName
	}
	return page + TitleDelimiter + SiteName
}

// AbsoluteURL resolves p against baseURL. Already absolute references are
// returned unchanged.
func AbsoluteURL(baseURL, p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return base + p
}

// NewMeta fills the Open Graph and Twitter fields from the primary values.
func NewMeta(title, description, canonical, image, ogType string) Meta {
	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        ogType,
			URL:         canonical,
			SiteName:    SiteName,
		},
		Twitter: Twitter{Card: card, Image: image},
	}
}
