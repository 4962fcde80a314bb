package format

import (
	"fmt"
	"time"

	"github.com/SolaireOfAndor/Summit-sub001/internal/catalog"
)

// FmtDate formats a date in the Australian long form, e.g. "1 February 2025".
func FmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}

// Availability describes when a property can be moved into, relative to now.
func Availability(d catalog.Date, now time.Time) string {
	if d.IsZero() {
		return "Contact us for availability"
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	if !d.After(today) {
		return "Available now"
	}
	return "Available from " + FmtDate(d.Time)
}

// Count renders n with the singular or plural noun, e.g. "1 bedroom", "3 bedrooms".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// TypeLabel expands a category tag for display.
func TypeLabel(t catalog.Type) string {
	switch t {
	case catalog.TypeSDA:
		return "Specialist Disability Accommodation"
	case catalog.TypeSIL:
		return "Supported Independent Living"
	case catalog.TypeSTA:
		return "Short Term Accommodation"
	default:
		return string(t)
	}
}

// Vacancy summarises open rooms, e.g. "2 of 4 rooms available".
func Vacancy(d catalog.Details) string {
	if d.BedroomsAvailable == 0 {
		return "Fully occupied"
	}
	return fmt.Sprintf("%d of %s available", d.BedroomsAvailable, Count(d.Bedrooms, "room", "rooms"))
}
