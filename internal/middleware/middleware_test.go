package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SolaireOfAndor/Summit-sub001/internal/observability"
)

func TestLoggerWritesOneLinePerRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	var sawLogger, sawID bool
	h := chiMid.RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.FromContext(r.Context()).Info("inside handler")
		_, sawID = RequestID(r.Context())
		sawLogger = true
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/properties/nope", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 203.0.113.9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.True(t, sawLogger)
	assert.True(t, sawID)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/properties/nope", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.Equal(t, "203.0.113.9", fields["remote_ip"])
	assert.NotEmpty(t, fields["request_id"])

	inner := logs.FilterMessage("inside handler").All()
	require.Len(t, inner, 1)
	assert.NotEmpty(t, inner[0].ContextMap()["request_id"])
}

func TestResponseRecorderDefaultsToOK(t *testing.T) {
	rec := NewResponseRecorder(httptest.NewRecorder())
	_, _ = rec.Write([]byte("hi"))
	assert.Equal(t, http.StatusOK, rec.Status())

	rec = NewResponseRecorder(httptest.NewRecorder())
	rec.WriteHeader(http.StatusTeapot)
	rec.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusTeapot, rec.Status())
}

func TestAssetsWithCache(t *testing.T) {
	fsys := fstest.MapFS{
		"css/site.css": {Data: []byte("body{}")},
	}
	h := AssetsWithCache(fsys, "/assets", time.Hour)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
	assert.Equal(t, "public, max-age=3600, stale-while-revalidate=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
