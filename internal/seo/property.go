package seo

import (
	"unicode/utf8"

	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
)

const (
	// DescriptionLimit is the longest description, in characters, emitted
	// before truncation kicks in.
	DescriptionLimit = 155
	// Ellipsis marks a truncated description.
	Ellipsis = "..."
	// Country is the ISO country code used in postal addresses.
	Country = "AU"
	// PlaceholderImage stands in for properties without photos.
	PlaceholderImage = "/images/property-placeholder.webp"
)

// Projection is the search metadata derived from one property.
type Projection struct {
	MetaTitle       string
	MetaDescription string
	StructuredData  map[string]any
}

// ProjectProperty derives the title, description and schema.org Accommodation
// document for p. It is pure and never fails for a record that passed
// catalog.Load.
func ProjectProperty(p catalog.Property) Projection {
	desc := Description(p)
	return Projection{
		MetaTitle:       p.Title + TitleDelimiter + SiteName,
		MetaDescription: desc,
		StructuredData:  Accommodation(p, desc),
	}
}

// Description returns metaDescription verbatim when set, otherwise the
// description cut to DescriptionLimit.
func Description(p catalog.Property) string {
	desc, override := p.SEODescription()
	if override {
		return desc
	}
	return Truncate(desc, DescriptionLimit)
}

// Truncate cuts s to limit characters and appends Ellipsis when s is longer
// than limit. The cut is a raw character cut with no word-boundary handling.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + Ellipsis
		}
		n++
	}
	return s
}

// Accommodation builds the schema.org Accommodation document for p using the
// already projected description.
func Accommodation(p catalog.Property, description string) map[string]any {
	image, ok := p.PrimaryImage()
	if !ok {
		image = PlaceholderImage
	}
	amenities := make([]map[string]any, 0, len(p.Features))
	for _, f := range p.Features {
		amenities = append(amenities, map[string]any{
			"@type": "LocationFeatureSpecification",
			"name":  f.Label,
			"value": true,
		})
	}
	categories := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		categories = append(categories, string(t))
	}
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "Accommodation",
		"name":        p.Title,
		"description": description,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": p.Location,
			"addressCountry":  Country,
		},
		"image":                 image,
		"numberOfRooms":         p.Details.Bedrooms,
		"amenityFeature":        amenities,
		"accommodationCategory": categories,
		"occupancy": map[string]any{
			"@type":    "QuantitativeValue",
			"maxValue": p.Details.Bedrooms,
		},
	}
}

// PropertyMeta builds the document head for a property detail page.
func PropertyMeta(p catalog.Property, baseURL string) Meta {
	proj := ProjectProperty(p)
	image, ok := p.PrimaryImage()
	if !ok {
		image = PlaceholderImage
	}
	canonical := AbsoluteURL(baseURL, "/properties/"+p.Slug)
	return NewMeta(proj.MetaTitle, proj.MetaDescription, canonical, AbsoluteURL(baseURL, image), "website")
}
