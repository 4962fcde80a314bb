package handlers

import (
	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
	"github.com/SolaireOfAndor/Summit-sub001/internal/cms"
	"github.com/SolaireOfAndor/Summit-sub001/internal/seo"
)

// FAQView is the payload for the FAQ accordion.
type FAQView struct {
	Groups []cms.FAQGroup
}

// FAQ builds the FAQ page with FAQPage structured data.
func (b *Builder) FAQ(groups []cms.FAQGroup) PageData {
	pd := b.page("faq", "/faq", "Frequently asked questions",
		"Answers to common questions about NDIS housing, funding and moving in with "+seo.SiteName+".", "", "website", "")
	var questions []seo.Question
	for _, g := range groups {
		for _, f := range g.Items {
			questions = append(questions, seo.Question{Name: f.Question, Answer: f.Answer})
		}
	}
	pd.SEO.JSONLD = append(pd.SEO.JSONLD, seo.Script(seo.FAQPage(questions)))
	pd.FAQ = &FAQView{Groups: groups}
	return pd
}

// ContactView is the payload for the contact page.
type ContactView struct {
	Phone      string
	Email      string
	Properties []PropertyContact
}

// PropertyContact is the enquiry line for one property.
type PropertyContact struct {
	Title   string
	Href    string
	Contact catalog.Contact
}

// Contact builds the contact page listing the enquiry details of every property.
func (b *Builder) Contact(props []catalog.Property) PageData {
	pd := b.page("contact", "/contact", "Contact us",
		"Talk to the "+seo.SiteName+" team about vacancies, visits and eligibility.", "", "website", "")
	pd.SEO.JSONLD = append(pd.SEO.JSONLD,
		seo.Script(seo.Organization(seo.SiteName, b.Site.BaseURL, "", b.Site.Phone, b.Site.Email)))
	view := &ContactView{Phone: b.Site.Phone, Email: b.Site.Email}
	for _, p := range props {
		view.Properties = append(view.Properties, PropertyContact{
			Title:   p.Title,
			Href:    "/properties/" + p.Slug,
			Contact: p.Contact,
		})
	}
	pd.Contact = view
	return pd
}
