package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
)

func testProperty() catalog.Property {
	return catalog.Property{
		ID:          "t-1",
		Slug:        "test-home",
		Types:       []catalog.Type{catalog.TypeSDA, catalog.TypeSIL},
		Title:       "Test Home",
		Location:    "Penrith, NSW",
		Description: "A short description.",
		Details:     catalog.Details{Bedrooms: 4, BedroomsAvailable: 1},
		Features: []catalog.Feature{
			{Icon: "wheelchair", Label: "Step-free entry"},
			{Icon: "hoist", Label: "Ceiling hoist"},
		},
		Images: []string{"/properties/test/1.webp", "/properties/test/2.webp"},
	}
}

func TestProjectPropertyTitle(t *testing.T) {
	p := testProperty()
	got := ProjectProperty(p)
	assert.Equal(t, "Test Home | Summit Living", got.MetaTitle)
	assert.Equal(t, got, ProjectProperty(p), "projection must be deterministic")
}

func TestProjectPropertyTruncatesLongDescription(t *testing.T) {
	p := testProperty()
	p.Description = strings.Repeat("a", 200)

	got := ProjectProperty(p).MetaDescription
	assert.LessOrEqual(t, utf8.RuneCountInString(got), DescriptionLimit+len(Ellipsis))
	assert.True(t, strings.HasSuffix(got, Ellipsis))
	assert.Equal(t, strings.Repeat("a", DescriptionLimit)+Ellipsis, got)
}

func TestProjectPropertyKeepsShortDescription(t *testing.T) {
	p := testProperty()
	p.Description = strings.Repeat("b", 100)
	assert.Equal(t, p.Description, ProjectProperty(p).MetaDescription)

	p.Description = strings.Repeat("c", DescriptionLimit)
	assert.Equal(t, p.Description, ProjectProperty(p).MetaDescription, "exactly at the limit is not truncated")
}

func TestProjectPropertyMetaDescriptionOverride(t *testing.T) {
	p := testProperty()
	p.Description = strings.Repeat("d", 300)
	meta := strings.Repeat("m", 180)
	p.MetaDescription = &meta

	got := ProjectProperty(p)
	assert.Equal(t, meta, got.MetaDescription, "override is used verbatim, even past the limit")
	assert.Equal(t, meta, got.StructuredData["description"])

	empty := ""
	p.MetaDescription = &empty
	assert.Equal(t, strings.Repeat("d", DescriptionLimit)+Ellipsis, ProjectProperty(p).MetaDescription)
}

func TestProjectPropertyStructuredData(t *testing.T) {
	p := testProperty()
	sd := ProjectProperty(p).StructuredData

	assert.Equal(t, "https://schema.org", sd["@context"])
	assert.Equal(t, "Accommodation", sd["@type"])
	assert.Equal(t, "Test Home", sd["name"])
	assert.Equal(t, p.Details.Bedrooms, sd["numberOfRooms"])
	assert.Equal(t, "/properties/test/1.webp", sd["image"])
	assert.Equal(t, []string{"SDA", "SIL"}, sd["accommodationCategory"])

	address := sd["address"].(map[string]any)
	assert.Equal(t, "PostalAddress", address["@type"])
	assert.Equal(t, "Penrith, NSW", address["addressLocality"])
	assert.Equal(t, "AU", address["addressCountry"])

	amenities := sd["amenityFeature"].([]map[string]any)
	require.Len(t, amenities, len(p.Features))
	assert.Equal(t, "LocationFeatureSpecification", amenities[0]["@type"])
	assert.Equal(t, "Step-free entry", amenities[0]["name"])
	assert.Equal(t, "Ceiling hoist", amenities[1]["name"])

	occupancy := sd["occupancy"].(map[string]any)
	assert.Equal(t, p.Details.Bedrooms, occupancy["maxValue"])
}

func TestProjectPropertyPlaceholderImage(t *testing.T) {
	p := testProperty()
	p.Images = nil
	assert.Equal(t, PlaceholderImage, ProjectProperty(p).StructuredData["image"])

	p.Images = []string{}
	assert.Equal(t, PlaceholderImage, ProjectProperty(p).StructuredData["image"])
}

func TestProjectPropertyStructuredDataIsJSON(t *testing.T) {
	out := JSON(ProjectProperty(testProperty()).StructuredData)
	require.NotEmpty(t, out)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.EqualValues(t, 4, decoded["numberOfRooms"])
}

func TestProjectCatalog(t *testing.T) {
	store, err := catalog.Open()
	require.NoError(t, err)

	for _, p := range store.All() {
		got := ProjectProperty(p)
		assert.Equal(t, p.Title+" | Summit Living", got.MetaTitle)
		assert.NotEmpty(t, got.MetaDescription)
		assert.Len(t, got.StructuredData["amenityFeature"], len(p.Features))
	}

	villas, err := store.BySlug("bossley-park-independent-villas")
	require.NoError(t, err)
	require.Nil(t, villas.MetaDescription)
	require.Equal(t, 258, utf8.RuneCountInString(villas.Description))

	got := ProjectProperty(villas)
	assert.Equal(t, 158, utf8.RuneCountInString(got.MetaDescription))
	assert.True(t, strings.HasSuffix(got.MetaDescription, "..."))
	assert.Equal(t, "/properties/bosley-park/1.webp", got.StructuredData["image"])
}

func TestTruncateCountsCharacters(t *testing.T) {
	s := strings.Repeat("é", 10)
	assert.Equal(t, strings.Repeat("é", 4)+Ellipsis, Truncate(s, 4))
	assert.Equal(t, s, Truncate(s, 10))
	assert.Equal(t, Ellipsis, Truncate("abc", 0))
	assert.Equal(t, "", Truncate("", 5))
}

func TestPropertyMeta(t *testing.T) {
	p := testProperty()
	m := PropertyMeta(p, "https://summitliving.com.au/")
	assert.Equal(t, "Test Home | Summit Living", m.Title)
	assert.Equal(t, "https://summitliving.com.au/properties/test-home", m.Canonical)
	assert.Equal(t, "https://summitliving.com.au/properties/test/1.webp", m.OG.Image)
	assert.Equal(t, "summary_large_image", m.Twitter.Card)
	assert.Equal(t, SiteName, m.OG.SiteName)
}
