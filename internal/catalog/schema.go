package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "property.schema.json"

//go:embed schema/property.schema.json
var schemaJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// propertySchema compiles the embedded schema on first use.
func propertySchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("catalog: add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("catalog: compile schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// quotedName pulls the first 'name' out of required/additionalProperties messages.
var quotedName = regexp.MustCompile(`'([^']+)'`)

// violationFromSchemaError reduces a jsonschema error tree to the first leaf
// and converts its instance location into a dotted field path.
func violationFromSchemaError(err error) (field, reason string) {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return "", err.Error()
	}
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	field = pointerToPath(leaf.InstanceLocation)
	if strings.HasSuffix(leaf.KeywordLocation, "/required") || strings.HasSuffix(leaf.KeywordLocation, "/additionalProperties") {
		if m := quotedName.FindStringSubmatch(leaf.Message); m != nil {
			field = joinPath(field, m[1])
		}
	}
	return field, leaf.Message
}

func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	parts := strings.Split(ptr, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return strings.Join(parts, ".")
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
