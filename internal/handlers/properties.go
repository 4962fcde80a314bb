package handlers

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
	"github.com/SolaireOfAndor/Summit-sub001/internal/cms"
	"github.com/SolaireOfAndor/Summit-sub001/internal/format"
	"github.com/SolaireOfAndor/Summit-sub001/internal/seo"
)

// PropertyCard is the summary tile used on listings and the home page.
type PropertyCard struct {
	Slug         string
	Href         string
	Title        string
	Location     string
	Summary      string
	Image        string
	HasImage     bool
	Types        []TypeTag
	Bedrooms     string
	Bathrooms    string
	Vacancy      string
	Availability string
	Rent         string
}

// TypeTag is a category badge.
type TypeTag struct {
	Code  string
	Label string
}

// TypeFilter is one tab of the listing filter.
type TypeFilter struct {
	Code   string
	Label  string
	Href   string
	Active bool
}

// PropertiesView is the payload for the listing page.
type PropertiesView struct {
	Filters []TypeFilter
	Active  string
	Count   string
	Cards   []PropertyCard
}

// Fact is a labelled value in the detail page summary grid.
type Fact struct {
	Label string
	Value string
}

// PropertyView is the payload for the detail page.
type PropertyView struct {
	Card             PropertyCard
	Body             template.HTML
	Facts            []Fact
	Images           []string
	Pricing          catalog.Pricing
	Features         []catalog.Feature
	Activities       catalog.Activities
	LocationFeatures []catalog.LocationFeature
	Housemates       catalog.HousemateInfo
	Occupants        string
	Eligibility      []string
	Contact          catalog.Contact
}

// Card builds the listing tile for p.
func (b *Builder) Card(p catalog.Property) PropertyCard {
	image, ok := p.PrimaryImage()
	if !ok {
		image = seo.PlaceholderImage
	}
	tags := make([]TypeTag, 0, len(p.Types))
	for _, t := range p.Types {
		tags = append(tags, TypeTag{Code: string(t), Label: format.TypeLabel(t)})
	}
	return PropertyCard{
		Slug:         p.Slug,
		Href:         "/properties/" + p.Slug,
		Title:        p.Title,
		Location:     p.Location,
		Summary:      seo.Description(p),
		Image:        image,
		HasImage:     ok,
		Types:        tags,
		Bedrooms:     format.Count(p.Details.Bedrooms, "bedroom", "bedrooms"),
		Bathrooms:    format.Count(p.Details.Bathrooms, "bathroom", "bathrooms"),
		Vacancy:      format.Vacancy(p.Details),
		Availability: format.Availability(p.Availability, b.now()),
		Rent:         p.Pricing.Rent,
	}
}

// Cards maps properties to listing tiles, preserving order.
func (b *Builder) Cards(props []catalog.Property) []PropertyCard {
	cards := make([]PropertyCard, 0, len(props))
	for _, p := range props {
		cards = append(cards, b.Card(p))
	}
	return cards
}

// Properties builds the listing page. A zero filter lists every property.
func (b *Builder) Properties(props []catalog.Property, filter catalog.Type) PageData {
	title := "NDIS properties"
	description := "Browse SDA, SIL and short term accommodation homes across Sydney and the Illawarra."
	if filter != "" {
		title = format.TypeLabel(filter) + " properties"
		description = fmt.Sprintf("Browse %s homes with %s.", format.TypeLabel(filter), seo.SiteName)
	}
	pd := b.page("properties", "/properties", title, description, "", "website", "")
	if filter != "" {
		// the filtered view is a duplicate of the full listing for crawlers
		pd.SEO.Canonical = seo.AbsoluteURL(b.Site.BaseURL, "/properties")
		pd.SEO.OG.URL = pd.SEO.Canonical
	}
	pd.Properties = &PropertiesView{
		Filters: typeFilters(filter),
		Active:  string(filter),
		Count:   format.Count(len(props), "home", "homes"),
		Cards:   b.Cards(props),
	}
	return pd
}

func typeFilters(active catalog.Type) []TypeFilter {
	filters := []TypeFilter{{Label: "All homes", Href: "/properties", Active: active == ""}}
	for _, t := range catalog.Types {
		q := url.Values{"type": {string(t)}}
		filters = append(filters, TypeFilter{
			Code:   string(t),
			Label:  format.TypeLabel(t),
			Href:   "/properties?" + q.Encode(),
			Active: active == t,
		})
	}
	return filters
}

// Property builds the detail page. The head carries the search projection
// and the Accommodation document ahead of the breadcrumb list.
func (b *Builder) Property(p catalog.Property) (PageData, error) {
	body, err := cms.RenderMarkdown(p.LongDescription())
	if err != nil {
		return PageData{}, fmt.Errorf("render %s description: %w", p.Slug, err)
	}
	path := "/properties/" + p.Slug
	proj := seo.ProjectProperty(p)

	pd := b.page("property", path, p.Title, proj.MetaDescription, "", "website", p.Title)
	pd.SEO.Meta = seo.PropertyMeta(p, b.Site.BaseURL)
	pd.SEO.JSONLD = append([]template.JS{seo.Script(proj.StructuredData)}, pd.SEO.JSONLD...)

	card := b.Card(p)
	images := p.Images
	if len(images) == 0 {
		images = []string{seo.PlaceholderImage}
	}
	pd.Property = &PropertyView{
		Card:             card,
		Body:             body,
		Facts:            facts(p.Details),
		Images:           images,
		Pricing:          p.Pricing,
		Features:         p.Features,
		Activities:       p.Activities,
		LocationFeatures: p.LocationFeatures,
		Housemates:       p.HousemateInfo,
		Occupants:        format.Count(p.HousemateInfo.CurrentOccupants, "current resident", "current residents"),
		Eligibility:      p.Eligibility,
		Contact:          p.Contact,
	}
	return pd, nil
}

func facts(d catalog.Details) []Fact {
	return []Fact{
		{Label: "Bedrooms", Value: fmt.Sprint(d.Bedrooms)},
		{Label: "Bathrooms", Value: fmt.Sprint(d.Bathrooms)},
		{Label: "Toilets", Value: fmt.Sprint(d.Toilets)},
		{Label: "Parking", Value: fmt.Sprint(d.Parking)},
		{Label: "Accessible parking", Value: fmt.Sprint(d.AccessibleParking)},
		{Label: "Vacancies", Value: format.Vacancy(d)},
	}
}
