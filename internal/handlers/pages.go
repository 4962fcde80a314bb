package handlers

import (
	"html/template"
	"time"

	"github.com/SolaireOfAndor/Summit-sub001/internal/config"
	"github.com/SolaireOfAndor/Summit-sub001/internal/nav"
	"github.com/SolaireOfAndor/Summit-sub001/internal/seo"
)

// Lang is the document language of every page.
const Lang = "en-AU"

// PageData is the view model for every page using the shared layout.
type PageData struct {
	// Template names the content block rendered inside the layout.
	Template  string
	Title     string
	Lang      string
	SEO       SEOData
	Analytics Analytics
	Site      SiteInfo

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Optional per-page view model payloads
	Home       *HomeView
	Properties *PropertiesView
	Property   *PropertyView
	Guides     *GuidesView
	Guide      *GuideView
	FAQ        *FAQView
	Contact    *ContactView
	NotFound   *NotFoundView
}

// SEOData is the document head: meta tags plus pre-encoded JSON-LD scripts.
type SEOData struct {
	seo.Meta
	JSONLD []template.JS
}

// SiteInfo is the public contact block shown in the header and footer.
type SiteInfo struct {
	Name    string
	BaseURL string
	Phone   string
	Email   string
}

// Builder assembles page view models. Now is injectable for tests.
type Builder struct {
	Site      SiteInfo
	Analytics Analytics
	Now       func() time.Time
}

// NewBuilder creates a Builder from the runtime configuration.
func NewBuilder(cfg config.Config) *Builder {
	return &Builder{
		Site: SiteInfo{
			Name:    seo.SiteName,
			BaseURL: cfg.Site.BaseURL,
			Phone:   cfg.Site.Phone,
			Email:   cfg.Site.Email,
		},
		Analytics: AnalyticsFromConfig(cfg.Analytics),
		Now:       time.Now,
	}
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

// page fills the layout fields shared by every page. title is the bare page
// title; the site name is appended here.
func (b *Builder) page(tmpl, path, title, description, image, ogType, lastCrumb string) PageData {
	canonical := seo.AbsoluteURL(b.Site.BaseURL, path)
	if image != "" {
		image = seo.AbsoluteURL(b.Site.BaseURL, image)
	}
	crumbs := nav.Breadcrumbs(path, lastCrumb)
	pd := PageData{
		Template:    tmpl,
		Title:       title,
		Lang:        Lang,
		SEO:         SEOData{Meta: seo.NewMeta(seo.Title(title), description, canonical, image, ogType)},
		Analytics:   b.Analytics,
		Site:        b.Site,
		Path:        path,
		Nav:         nav.Build(path),
		Breadcrumbs: crumbs,
	}
	if len(crumbs) > 1 {
		pd.SEO.JSONLD = append(pd.SEO.JSONLD, seo.Script(seo.BreadcrumbList(b.breadcrumbItems(crumbs))))
	}
	return pd
}

func (b *Builder) breadcrumbItems(crumbs []nav.Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: seo.AbsoluteURL(b.Site.BaseURL, c.Href)})
	}
	return items
}

// NotFoundView is the payload for the 404 page.
type NotFoundView struct {
	Path string
}

// NotFound builds the 404 page. It is never indexed.
func (b *Builder) NotFound(path string) PageData {
	pd := b.page("not_found", path, "Page not found", "The page you were looking for could not be found.", "", "website", "")
	pd.SEO.Robots = "noindex"
	pd.SEO.Canonical = ""
	pd.SEO.OG.URL = ""
	pd.SEO.JSONLD = nil
	pd.Breadcrumbs = nil
	pd.NotFound = &NotFoundView{Path: path}
	return pd
}
