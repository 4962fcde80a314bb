package seo

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapEntry is one page listed in sitemap.xml. Path is site-relative.
type SitemapEntry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders entries as a sitemaps.org urlset with absolute locations.
func Sitemap(baseURL string, entries []SitemapEntry) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		u := sitemapURL{Loc: AbsoluteURL(baseURL, e.Path), ChangeFreq: e.ChangeFreq}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		if e.Priority > 0 {
			u.Priority = strconv.FormatFloat(min(e.Priority, 1), 'f', 1, 64)
		}
		set.URLs = append(set.URLs, u)
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// Robots renders robots.txt allowing everything and pointing at the sitemap.
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /healthz\n\n")
	b.WriteString("Sitemap: " + AbsoluteURL(baseURL, "/sitemap.xml") + "\n")
	return b.String()
}
