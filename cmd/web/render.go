package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SolaireOfAndor/Summit-sub001/internal/format"
	"github.com/SolaireOfAndor/Summit-sub001/internal/observability"
)

// views owns the parsed templates. In dev mode templates are reparsed on
// each request so edits show up without a restart.
type views struct {
	dir   string
	dev   bool
	cache *template.Template
}

func newViews(dir string, dev bool) (*views, error) {
	v := &views{dir: dir, dev: dev}
	// a broken template fails start-up in both modes
	t, err := parseTemplates(dir)
	if err != nil {
		return nil, err
	}
	v.cache = t
	return v, nil
}

func (v *views) templates() (*template.Template, error) {
	if v.dev {
		return parseTemplates(v.dir)
	}
	return v.cache, nil
}

func parseTemplates(dir string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":     time.Now,
		"fmtDate": format.FmtDate,
		"year":    func() int { return time.Now().Year() },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the base layout into a buffer before the status is written.
func (s *server) render(w http.ResponseWriter, r *http.Request, status int, data any) {
	t, err := s.views.templates()
	if err != nil {
		s.serverError(w, r, fmt.Errorf("template parse: %w", err))
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		s.serverError(w, r, fmt.Errorf("template exec: %w", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		observability.FromContext(r.Context()).Debug("write response", zap.Error(err))
	}
}
