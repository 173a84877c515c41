package editor

import (
	"strings"

	"github.com/google/uuid"
)

// JSON Schema primitive types.
const (
	SchemaTypeObject  = "object"
	SchemaTypeArray   = "array"
	SchemaTypeString  = "string"
	SchemaTypeNumber  = "number"
	SchemaTypeInteger = "integer"
	SchemaTypeBoolean = "boolean"
	SchemaTypeNull    = "null"
)

// SchemaElement describes the data-schema fragment bound to a UI element.
// Properties keep their declaration order.
type SchemaElement struct {
	UUID        string           `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Key         string           `json:"key,omitempty" yaml:"key,omitempty"`
	Type        string           `json:"type,omitempty" yaml:"type,omitempty"`
	Title       string           `json:"title,omitempty" yaml:"title,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string           `json:"format,omitempty" yaml:"format,omitempty"`
	Enum        []any            `json:"enum,omitempty" yaml:"enum,omitempty"`
	Properties  []*SchemaElement `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items       *SchemaElement   `json:"items,omitempty" yaml:"items,omitempty"`
	Required    []string         `json:"required,omitempty" yaml:"required,omitempty"`
	IsRequired  bool             `json:"isRequired,omitempty" yaml:"isRequired,omitempty"`
}

// NewSchemaElement returns a schema element of the given type with a fresh
// UUID.
func NewSchemaElement(key, schemaType string) *SchemaElement {
	return &SchemaElement{
		UUID: uuid.NewString(),
		Key:  strings.TrimSpace(key),
		Type: strings.TrimSpace(schemaType),
	}
}

// Is reports whether the element carries the given JSON Schema type.
func (s *SchemaElement) Is(schemaType string) bool {
	return s != nil && s.Type == schemaType
}

// Property returns the direct child registered under key.
func (s *SchemaElement) Property(key string) (*SchemaElement, bool) {
	if s == nil {
		return nil, false
	}
	for _, prop := range s.Properties {
		if prop != nil && prop.Key == key {
			return prop, true
		}
	}
	return nil, false
}

// Resolve walks a Control scope such as "#/properties/address/properties/city"
// and returns the schema element it points to.
func (s *SchemaElement) Resolve(scope string) (*SchemaElement, bool) {
	if s == nil {
		return nil, false
	}
	trimmed := strings.TrimPrefix(strings.TrimSpace(scope), "#")
	trimmed = strings.Trim(trimmed, "/")
	if trimmed == "" {
		return s, true
	}

	current := s
	parts := strings.Split(trimmed, "/")
	for idx := 0; idx < len(parts); idx++ {
		switch parts[idx] {
		case "properties":
			if idx+1 >= len(parts) {
				return nil, false
			}
			next, ok := current.Property(unescapePointer(parts[idx+1]))
			if !ok {
				return nil, false
			}
			current = next
			idx++
		case "items":
			if current.Items == nil {
				return nil, false
			}
			current = current.Items
		default:
			return nil, false
		}
	}
	return current, true
}

func unescapePointer(segment string) string {
	segment = strings.ReplaceAll(segment, "~1", "/")
	return strings.ReplaceAll(segment, "~0", "~")
}
