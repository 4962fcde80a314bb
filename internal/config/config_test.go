package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Site.BaseURL != defaultBaseURL {
		t.Errorf("expected default base url, got %s", cfg.Site.BaseURL)
	}
	if cfg.Paths.Templates != "templates" || cfg.Paths.Public != "public" {
		t.Errorf("unexpected paths: %+v", cfg.Paths)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
	if cfg.DevMode {
		t.Errorf("dev mode should default to false")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":                  "9000",
		"WEB_PORT":              "9090",
		"WEB_READ_TIMEOUT":      "20s",
		"WEB_WRITE_TIMEOUT":     "25s",
		"WEB_IDLE_TIMEOUT":      "2m",
		"WEB_BASE_URL":          "https://summitliving.com.au/",
		"WEB_TEMPLATES_DIR":     "/srv/templates",
		"WEB_DEV":               "yes",
		"WEB_GA_MEASUREMENT_ID": "G-TEST",
		"LOG_LEVEL":             "DEBUG",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected WEB_PORT to win, got %s", cfg.Server.Port)
	}
	if cfg.Server.IdleTimeout != 2*time.Minute {
		t.Errorf("unexpected idle timeout: %s", cfg.Server.IdleTimeout)
	}
	if cfg.Site.BaseURL != "https://summitliving.com.au" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.BaseURL)
	}
	if cfg.Paths.Templates != "/srv/templates" {
		t.Errorf("unexpected templates dir: %s", cfg.Paths.Templates)
	}
	if !cfg.DevMode {
		t.Errorf("expected dev mode")
	}
	if cfg.Analytics.GA4MeasurementID != "G-TEST" {
		t.Errorf("unexpected GA id: %s", cfg.Analytics.GA4MeasurementID)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected lower-cased log level, got %s", cfg.LogLevel)
	}
}

func TestLoadFallsBackToPORT(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "7070"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("expected PORT fallback, got %s", cfg.Server.Port)
	}
}

func TestLoadInvalidBaseURL(t *testing.T) {
	_, err := Load(WithEnvMap(map[string]string{"WEB_BASE_URL": "summitliving.com.au"}), WithoutSystemEnv(), WithEnvFile(""))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := verr.Fields()
	if len(fields) != 1 || fields[0] != "Site.BaseURL" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local overrides\nWEB_BASE_URL=\"https://staging.summitliving.com.au\"\nexport WEB_PORT=8181\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{"WEB_PORT": "9999"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.BaseURL != "https://staging.summitliving.com.au" {
		t.Errorf("expected base url from .env, got %s", cfg.Site.BaseURL)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("expected explicit map to override .env, got %s", cfg.Server.Port)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}
