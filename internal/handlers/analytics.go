package handlers

import "github.com/SolaireOfAndor/Summit-sub001/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
}

// Enabled reports whether any tag should be rendered.
func (a Analytics) Enabled() bool { return a.GA4MeasurementID != "" }

// AnalyticsFromConfig copies the analytics settings out of cfg.
func AnalyticsFromConfig(cfg config.AnalyticsConfig) Analytics {
	return Analytics{GA4MeasurementID: cfg.GA4MeasurementID}
}
