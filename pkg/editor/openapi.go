package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadSchemaElement parses a JSON Schema (or OpenAPI schema object) payload,
// validates it with kin-openapi and converts it into a SchemaElement tree.
// YAML payloads are accepted as well.
func LoadSchemaElement(ctx context.Context, raw []byte) (*SchemaElement, error) {
	if ctx == nil {
		return nil, errors.New("editor: context is required")
	}
	data, err := toJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("editor: schema: %w", err)
	}

	var schema openapi3.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("editor: decode schema: %w", err)
	}
	if err := schema.Validate(ctx); err != nil {
		return nil, fmt.Errorf("editor: validate schema: %w", err)
	}
	return SchemaElementFromOpenAPI(&schema), nil
}

// SchemaElementFromOpenAPI converts a kin-openapi schema into a SchemaElement
// tree. Unresolved references are skipped. Properties are ordered by name
// since OpenAPI property maps carry no declaration order.
func SchemaElementFromOpenAPI(schema *openapi3.Schema) *SchemaElement {
	return convertSchema("", schema, false)
}

func convertSchema(key string, src *openapi3.Schema, required bool) *SchemaElement {
	if src == nil {
		return nil
	}
	el := NewSchemaElement(key, firstSchemaType(src.Type))
	el.Title = src.Title
	el.Description = src.Description
	el.Format = src.Format
	el.IsRequired = required
	if len(src.Enum) > 0 {
		el.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Required) > 0 {
		el.Required = append([]string(nil), src.Required...)
	}

	if len(src.Properties) > 0 {
		requiredSet := make(map[string]struct{}, len(src.Required))
		for _, name := range src.Required {
			requiredSet[name] = struct{}{}
		}
		names := make([]string, 0, len(src.Properties))
		for name := range src.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ref := src.Properties[name]
			if ref == nil || ref.Value == nil {
				continue
			}
			_, isRequired := requiredSet[name]
			if child := convertSchema(name, ref.Value, isRequired); child != nil {
				el.Properties = append(el.Properties, child)
			}
		}
		if el.Type == "" {
			el.Type = SchemaTypeObject
		}
	}

	if src.Items != nil && src.Items.Value != nil {
		el.Items = convertSchema("items", src.Items.Value, false)
		if el.Type == "" {
			el.Type = SchemaTypeArray
		}
	}
	return el
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != SchemaTypeNull {
			return value
		}
	}
	return ""
}

func isJSONPayload(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}
