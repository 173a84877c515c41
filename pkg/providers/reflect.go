package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
)

// Reflected is a provider whose property schema is generated once from a Go
// struct. Every call hands out a fresh copy, so callers may modify results.
type Reflected struct {
	name   string
	tester properties.Tester
	base   properties.Schemas
}

var _ properties.Provider = (*Reflected)(nil)

// Reflect builds a provider named name that ranks elements with tester and
// describes them with the JSON Schema reflected from model.
func Reflect(name string, tester properties.Tester, model any) (*Reflected, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("providers: name is required")
	}
	if tester == nil {
		return nil, fmt.Errorf("providers: %s: tester is required", trimmed)
	}
	schema, err := reflectSchema(model)
	if err != nil {
		return nil, fmt.Errorf("providers: %s: %w", trimmed, err)
	}
	return &Reflected{
		name:   trimmed,
		tester: tester,
		base:   properties.Schemas{Schema: schema},
	}, nil
}

// MustReflect panics when Reflect fails. Useful for package-level defaults.
func MustReflect(name string, tester properties.Tester, model any) *Reflected {
	provider, err := Reflect(name, tester, model)
	if err != nil {
		panic(err)
	}
	return provider
}

// Name returns the provider name.
func (r *Reflected) Name() string {
	return r.name
}

// Rank implements properties.Provider.
func (r *Reflected) Rank(ui *editor.UIElement) int {
	return r.tester(ui)
}

// PropertiesSchemas implements properties.Provider.
func (r *Reflected) PropertiesSchemas(*editor.UIElement, *editor.SchemaElement) (properties.Schemas, bool) {
	return r.base.Clone(), true
}

func reflectSchema(model any) (map[string]any, error) {
	if model == nil {
		return nil, fmt.Errorf("model is required")
	}
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	payload, err := json.Marshal(reflector.Reflect(model))
	if err != nil {
		return nil, fmt.Errorf("marshal reflected schema: %w", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(payload, &schema); err != nil {
		return nil, fmt.Errorf("decode reflected schema: %w", err)
	}
	delete(schema, "$schema")
	delete(schema, "$id")
	if _, ok := schema["properties"]; !ok {
		schema["properties"] = map[string]any{}
	}
	return schema, nil
}
