package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// RawRecord is a loosely typed property literal as authored in the data file.
type RawRecord = map[string]any

//go:embed data/properties.yaml
var propertiesYAML []byte

// Open decodes the embedded property collection, validates it and returns a
// ready store. Any error means the catalog must not be served.
func Open() (*Store, error) {
	raw, err := DecodeYAML(bytes.NewReader(propertiesYAML))
	if err != nil {
		return nil, err
	}
	records, err := Load(raw)
	if err != nil {
		return nil, err
	}
	return NewStore(records), nil
}

// DecodeYAML reads a YAML sequence of property mappings.
func DecodeYAML(r io.Reader) ([]RawRecord, error) {
	var raw []RawRecord
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return []RawRecord{}, nil
		}
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	return raw, nil
}

// Load validates every raw record against the property schema and the
// collection-wide rules, returning typed records in their original order.
// The first failure is returned as a *SchemaViolation and no records are
// returned with it.
func Load(raw []RawRecord) ([]Property, error) {
	schema, err := propertySchema()
	if err != nil {
		return nil, err
	}
	records := make([]Property, 0, len(raw))
	seenIDs := make(map[string]int, len(raw))
	seenSlugs := make(map[string]int, len(raw))
	for i, rec := range raw {
		name := recordName(i, rec)
		doc, err := normalize(rec)
		if err != nil {
			return nil, &SchemaViolation{Index: i, Record: name, Reason: err.Error()}
		}
		if err := schema.Validate(doc); err != nil {
			field, reason := violationFromSchemaError(err)
			return nil, &SchemaViolation{Index: i, Record: name, Field: field, Reason: reason}
		}
		p, err := decodeProperty(doc)
		if err != nil {
			return nil, &SchemaViolation{Index: i, Record: name, Reason: err.Error()}
		}
		if v := checkRecord(p); v != nil {
			v.Index, v.Record = i, name
			return nil, v
		}
		if prev, ok := seenIDs[p.ID]; ok {
			return nil, &SchemaViolation{Index: i, Record: name, Field: "id", Reason: fmt.Sprintf("duplicate of record #%d", prev)}
		}
		if prev, ok := seenSlugs[p.Slug]; ok {
			return nil, &SchemaViolation{Index: i, Record: name, Field: "slug", Reason: fmt.Sprintf("duplicate of record #%d", prev)}
		}
		seenIDs[p.ID] = i
		seenSlugs[p.Slug] = i
		records = append(records, p)
	}
	return records, nil
}

// checkRecord enforces the rules the schema cannot express.
func checkRecord(p Property) *SchemaViolation {
	if !slug.IsSlug(p.Slug) {
		return &SchemaViolation{Field: "slug", Reason: fmt.Sprintf("%q is not a url slug", p.Slug)}
	}
	if p.Details.BedroomsAvailable > p.Details.Bedrooms {
		return &SchemaViolation{
			Field:  "details.bedroomsAvailable",
			Reason: fmt.Sprintf("%d available exceeds %d bedrooms", p.Details.BedroomsAvailable, p.Details.Bedrooms),
		}
	}
	return nil
}

// normalize round-trips a YAML-decoded value through encoding/json so the
// validator sees the same shapes json.Unmarshal would produce.
func normalize(rec RawRecord) (any, error) {
	if rec == nil {
		return nil, fmt.Errorf("record is empty")
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("record is not representable as json: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeProperty(doc any) (Property, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return Property{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	var p Property
	if err := dec.Decode(&p); err != nil {
		return Property{}, fmt.Errorf("decode: %w", err)
	}
	return p, nil
}

func recordName(i int, rec RawRecord) string {
	if id, ok := rec["id"].(string); ok && strings.TrimSpace(id) != "" {
		return id
	}
	return "#" + strconv.Itoa(i)
}
