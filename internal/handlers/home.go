package handlers

import (
	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
	"github.com/SolaireOfAndor/Summit-sub001/internal/cms"
	"github.com/SolaireOfAndor/Summit-sub001/internal/seo"
)

// FeaturedLimit caps the properties and guides shown on the home page.
const FeaturedLimit = 3

// HomeView is the payload for the landing page.
type HomeView struct {
	Featured []PropertyCard
	Guides   []GuideCard
	Types    []TypeFilter
}

// Home builds the landing page from the first properties and the newest guides.
func (b *Builder) Home(props []catalog.Property, guides []cms.Guide) PageData {
	pd := b.page("home", "/", "NDIS housing in Sydney and the Illawarra",
		"Specialist Disability Accommodation, Supported Independent Living and respite homes with vacancies now.", "", "website", "")
	pd.SEO.JSONLD = append(pd.SEO.JSONLD,
		seo.Script(seo.Organization(seo.SiteName, b.Site.BaseURL, "", b.Site.Phone, b.Site.Email)),
		seo.Script(seo.WebSite(seo.SiteName, b.Site.BaseURL)),
	)
	if len(props) > FeaturedLimit {
		props = props[:FeaturedLimit]
	}
	if len(guides) > FeaturedLimit {
		guides = guides[:FeaturedLimit]
	}
	pd.Home = &HomeView{
		Featured: b.Cards(props),
		Guides:   GuideCards(guides),
		Types:    typeFilters("")[1:],
	}
	return pd
}
