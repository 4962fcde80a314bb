// Package catalog holds the static property catalog: the record types, the
// declarative schema the literal collection is checked against, and the
// read-only store the site renders listings and detail pages from.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when no property matches a lookup.
var ErrNotFound = errors.New("catalog: not found")

// Type is a housing category tag.
type Type string

const (
	// TypeSDA is Specialist Disability Accommodation.
	TypeSDA Type = "SDA"
	// TypeSIL is Supported Independent Living.
	TypeSIL Type = "SIL"
	// TypeSTA is Short Term Accommodation (respite).
	TypeSTA Type = "STA"
)

// Types lists the closed category vocabulary in display order.
var Types = []Type{TypeSDA, TypeSIL, TypeSTA}

// ParseType matches s against the known categories, ignoring case.
func ParseType(s string) (Type, bool) {
	s = strings.TrimSpace(s)
	for _, t := range Types {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// DateLayout is the ISO calendar date layout used for availability.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the UTC midnight Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("catalog: invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Property is one accommodation listing.
type Property struct {
	ID                  string            `json:"id"`
	Slug                string            `json:"slug"`
	Types               []Type            `json:"type"`
	Title               string            `json:"title"`
	Location            string            `json:"location"`
	Description         string            `json:"description"`
	DetailedDescription *string           `json:"detailedDescription,omitempty"`
	MetaDescription     *string           `json:"metaDescription,omitempty"`
	Details             Details           `json:"details"`
	Pricing             Pricing           `json:"pricing"`
	Availability        Date              `json:"availability"`
	Features            []Feature         `json:"features"`
	Activities          Activities        `json:"activities"`
	LocationFeatures    []LocationFeature `json:"location_features"`
	HousemateInfo       HousemateInfo     `json:"housemateInfo"`
	Eligibility         []string          `json:"eligibility"`
	Contact             Contact           `json:"contact"`
	Images              []string          `json:"images,omitempty"`
}

// Details carries the room and parking counts.
type Details struct {
	Bedrooms          int `json:"bedrooms"`
	Bathrooms         int `json:"bathrooms"`
	Toilets           int `json:"toilets"`
	Parking           int `json:"parking"`
	AccessibleParking int `json:"accessibleParking"`
	BedroomsAvailable int `json:"bedroomsAvailable"`
}

// Pricing is the rent display string plus free-text notes.
type Pricing struct {
	Rent  string   `json:"rent"`
	Notes []string `json:"notes"`
}

// Feature is a labelled amenity. Icon is a symbolic key resolved by the templates.
type Feature struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Activities lists nearby things to do.
type Activities struct {
	Indoor  []string `json:"indoor"`
	Outdoor []string `json:"outdoor"`
}

// LocationFeature is a nearby point of interest.
type LocationFeature struct {
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Distance string `json:"distance"`
}

// HousemateInfo describes the current household and how new residents are matched.
type HousemateInfo struct {
	CurrentOccupants int      `json:"currentOccupants"`
	AgeRange         string   `json:"ageRange"`
	Genders          []string `json:"genders"`
	Preferences      []string `json:"preferences"`
	SelectionProcess string   `json:"selectionProcess"`
}

// Contact holds the enquiry details for a property.
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
	Hours string `json:"hours"`
}

// SEODescription returns the summary used for search metadata: metaDescription
// when it is set and not blank, description otherwise. The second result
// reports whether the override was used.
func (p Property) SEODescription() (string, bool) {
	if p.MetaDescription != nil && strings.TrimSpace(*p.MetaDescription) != "" {
		return *p.MetaDescription, true
	}
	return p.Description, false
}

// LongDescription returns the markdown body for the detail page, falling back
// to the short description.
func (p Property) LongDescription() string {
	if p.DetailedDescription != nil && strings.TrimSpace(*p.DetailedDescription) != "" {
		return *p.DetailedDescription
	}
	return p.Description
}

// PrimaryImage returns the first image reference, if any.
func (p Property) PrimaryImage() (string, bool) {
	if len(p.Images) == 0 {
		return "", false
	}
	return p.Images[0], true
}

// Has reports whether the property is tagged with t.
func (p Property) Has(t Type) bool {
	for _, v := range p.Types {
		if v == t {
			return true
		}
	}
	return false
}

// SchemaViolation reports the first record in a collection that does not
// satisfy the property schema.
type SchemaViolation struct {
	Index  int    // position in the raw collection
	Record string // record id, or "#<index>" when the id is unusable
	Field  string // dotted path to the offending field; empty for the record itself
	Reason string
}

// Error implements the error interface.
func (e *SchemaViolation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("catalog: record %s: %s", e.Record, e.Reason)
	}
	return fmt.Sprintf("catalog: record %s: field %s: %s", e.Record, e.Field, e.Reason)
}
