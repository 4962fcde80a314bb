package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
	"github.com/SolaireOfAndor/Summit-sub001/internal/cms"
	"github.com/SolaireOfAndor/Summit-sub001/internal/config"
)

const testBaseURL = "https://summitliving.example"

// newTestServer builds the real router against the repo templates and assets.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := config.Load(
		config.WithoutSystemEnv(),
		config.WithEnvFile("testdata/missing.env"),
		config.WithEnvMap(map[string]string{
			"WEB_BASE_URL":      testBaseURL,
			"WEB_TEMPLATES_DIR": "../../templates",
			"WEB_PUBLIC_DIR":    "../../public",
			"WEB_CONTACT_PHONE": "02 9000 0000",
			"WEB_DEV":           "true",
		}),
	)
	require.NoError(t, err)

	store, err := catalog.Open()
	require.NoError(t, err)
	guides, err := cms.LoadGuides()
	require.NoError(t, err)

	srv, err := newServer(cfg, zaptest.NewLogger(t), store, guides)
	require.NoError(t, err)
	return srv.routes()
}

func get(t *testing.T, h http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthzOK(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestHomeRenders(t *testing.T) {
	rec := get(t, newTestServer(t), "/")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<title>NDIS housing in Sydney and the Illawarra | Summit Living</title>")
	assert.Contains(t, body, `href="/properties/bossley-park-independent-villas"`)
	assert.Contains(t, body, `"@type":"Organization"`)
}

func TestPropertyDetailHead(t *testing.T) {
	rec := get(t, newTestServer(t), "/properties/liverpool-high-physical-support-home")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()

	assert.Contains(t, body, `<meta name="description" content="High Physical Support SDA home in Liverpool NSW with ceiling hoists, backup power and one vacancy. Enquire with Summit Living today.">`)
	assert.Contains(t, body, `<link rel="canonical" href="`+testBaseURL+`/properties/liverpool-high-physical-support-home">`)
	assert.Equal(t, 2, strings.Count(body, `<script type="application/ld+json">`))
	assert.Contains(t, body, `"@type":"Accommodation"`)
	assert.Contains(t, body, `"@type":"BreadcrumbList"`)
}

func TestPropertyDetailUnknownSlug(t *testing.T) {
	rec := get(t, newTestServer(t), "/properties/bossley-park")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
	assert.Contains(t, rec.Body.String(), `<meta name="robots" content="noindex">`)
}

func TestPropertiesTypeFilter(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/properties?type=sil")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "penrith-supported-living-house")
	assert.NotContains(t, rec.Body.String(), "wollongong-respite-retreat")

	rec = get(t, h, "/properties?type=NURSING")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuidePages(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/guides")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `href="/guides/what-is-sda"`)

	rec = get(t, h, "/guides/what-is-sda")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"@type":"Article"`)

	rec = get(t, h, "/guides/not-a-guide")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFAQAndContact(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/faq")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"@type":"FAQPage"`)
	assert.Contains(t, rec.Body.String(), "<details class=\"faq\">")

	rec = get(t, h, "/contact")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Wollongong Respite Retreat")
}

func TestSitemapAndRobots(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>"+testBaseURL+"/properties/bossley-park-independent-villas</loc>")
	assert.Contains(t, body, "<loc>"+testBaseURL+"/guides/understanding-sil</loc>")

	rec = get(t, h, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: "+testBaseURL+"/sitemap.xml")
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	rec := get(t, newTestServer(t), "/no/such/page")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestAssetsCacheHeaders(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/assets/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec = get(t, h, "/assets/css/site.css", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = get(t, h, "/images/property-placeholder.webp")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/assets/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
