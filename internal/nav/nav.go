package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/properties"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/properties", Label: "Properties"},
	{Path: "/guides", Label: "Guides"},
	{Path: "/faq", Label: "FAQ"},
	{Path: "/contact", Label: "Contact"},
}

var titleCaser = cases.Title(language.BritishEnglish)

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/guides" or "/guides/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with Home
// - For known top-level sections, use the nav label
// - For deeper segments, use a title-cased segment, or the override label
//   for the last segment when one is given (e.g. a property title)
func Breadcrumbs(currentPath, lastLabel string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean("/" + strings.TrimPrefix(currentPath, "/"))
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href += "/" + seg
		label := titleFromSegment(seg)
		if i == 0 {
			for _, it := range Main {
				if it.Path == href {
					label = it.Label
					break
				}
			}
		}
		last := i == len(parts)-1
		if last && i > 0 && strings.TrimSpace(lastLabel) != "" {
			label = lastLabel
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: last})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return titleCaser.String(s)
}
