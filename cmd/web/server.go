package main

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
	"github.com/SolaireOfAndor/Summit-sub001/internal/cms"
	"github.com/SolaireOfAndor/Summit-sub001/internal/config"
	"github.com/SolaireOfAndor/Summit-sub001/internal/handlers"
	mw "github.com/SolaireOfAndor/Summit-sub001/internal/middleware"
	"github.com/SolaireOfAndor/Summit-sub001/internal/observability"
	"github.com/SolaireOfAndor/Summit-sub001/internal/seo"
)

const assetMaxAge = 7 * 24 * time.Hour

// server holds the read-only content and renders pages from it.
type server struct {
	cfg    config.Config
	logger *zap.Logger
	store  *catalog.Store
	guides *cms.Library
	pages  *handlers.Builder
	views  *views
}

func newServer(cfg config.Config, logger *zap.Logger, store *catalog.Store, guides *cms.Library) (*server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	v, err := newViews(cfg.Paths.Templates, cfg.DevMode)
	if err != nil {
		return nil, err
	}
	return &server{
		cfg:    cfg,
		logger: logger,
		store:  store,
		guides: guides,
		pages:  handlers.NewBuilder(cfg),
		views:  v,
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assetsDir := filepath.Join(s.cfg.Paths.Public, "assets")
	r.Handle("/assets/*", mw.AssetsWithCache(os.DirFS(assetsDir), "/assets", assetMaxAge))
	imagesDir := filepath.Join(s.cfg.Paths.Public, "images")
	r.Handle("/images/*", mw.AssetsWithCache(os.DirFS(imagesDir), "/images", assetMaxAge))

	r.Get("/", s.handleHome)
	r.Get("/properties", s.handleProperties)
	r.Get("/properties/{slug}", s.handleProperty)
	r.Get("/guides", s.handleGuides)
	r.Get("/guides/{slug}", s.handleGuide)
	r.Get("/faq", s.handleFAQ)
	r.Get("/contact", s.handleContact)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/robots.txt", s.handleRobots)

	r.NotFound(s.notFound)
	return r
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, s.pages.Home(s.store.All(), s.guides.Guides("")))
}

func (s *server) handleProperties(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		s.render(w, r, http.StatusOK, s.pages.Properties(s.store.All(), ""))
		return
	}
	t, ok := catalog.ParseType(raw)
	if !ok {
		http.Error(w, "unknown property type", http.StatusBadRequest)
		return
	}
	s.render(w, r, http.StatusOK, s.pages.Properties(s.store.ByType(t), t))
}

func (s *server) handleProperty(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.BySlug(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	pd, err := s.pages.Property(p)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, pd)
}

func (s *server) handleGuides(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	s.render(w, r, http.StatusOK, s.pages.Guides(s.guides, category))
}

func (s *server) handleGuide(w http.ResponseWriter, r *http.Request) {
	g, err := s.guides.Guide(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, s.pages.Guide(g, s.relatedProperties(g)))
}

// relatedProperties picks homes matching the guide's topic: SDA for funding
// guides, everything else for general support guides.
func (s *server) relatedProperties(g cms.Guide) []catalog.Property {
	if g.Category == "funding" {
		return s.store.ByType(catalog.TypeSDA)
	}
	return s.store.All()
}

func (s *server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, s.pages.FAQ(cms.FAQGroups()))
}

func (s *server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, s.pages.Contact(s.store.All()))
}

func (s *server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	entries := []seo.SitemapEntry{
		{Path: "/", ChangeFreq: "weekly", Priority: 1},
		{Path: "/properties", ChangeFreq: "daily", Priority: 0.9},
	}
	for _, p := range s.store.All() {
		entries = append(entries, seo.SitemapEntry{Path: "/properties/" + p.Slug, ChangeFreq: "weekly", Priority: 0.8})
	}
	entries = append(entries, seo.SitemapEntry{Path: "/guides", ChangeFreq: "weekly", Priority: 0.6})
	for _, g := range s.guides.Guides("") {
		entries = append(entries, seo.SitemapEntry{Path: "/guides/" + g.Slug, LastMod: g.UpdatedAt, ChangeFreq: "monthly", Priority: 0.6})
	}
	entries = append(entries,
		seo.SitemapEntry{Path: "/faq", ChangeFreq: "monthly", Priority: 0.5},
		seo.SitemapEntry{Path: "/contact", ChangeFreq: "yearly", Priority: 0.4},
	)
	body, err := seo.Sitemap(s.cfg.Site.BaseURL, entries)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.Robots(s.cfg.Site.BaseURL)))
}

func (s *server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, s.pages.NotFound(r.URL.Path))
}

func (s *server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
