package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadUIElement decodes a UI element tree from JSON or YAML and assigns UUIDs
// to elements that lack one.
func LoadUIElement(raw []byte) (*UIElement, error) {
	data, err := toJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("editor: ui element: %w", err)
	}
	var el UIElement
	if err := json.Unmarshal(data, &el); err != nil {
		return nil, fmt.Errorf("editor: decode ui element: %w", err)
	}
	if strings.TrimSpace(el.Type) == "" {
		return nil, errors.New("editor: ui element type is required")
	}
	EnsureUUIDs(&el)
	return &el, nil
}

// LinkTree binds every scoped element below root to the schema element its
// scope resolves to within schema. Elements whose scope does not resolve are
// left unlinked.
func LinkTree(root *UIElement, schema *SchemaElement) {
	if root == nil || schema == nil {
		return
	}
	if root.Scope != "" {
		if target, ok := schema.Resolve(root.Scope); ok {
			root.Linked = target
		}
	}
	for _, child := range root.Elements {
		LinkTree(child, schema)
	}
}

// toJSON normalises a JSON or YAML payload into JSON bytes.
func toJSON(raw []byte) ([]byte, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("payload is empty")
	}
	if isJSONPayload(raw) {
		if !json.Valid(raw) {
			return nil, errors.New("invalid JSON")
		}
		return raw, nil
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON or YAML: %w", err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encode YAML: %w", err)
	}
	return data, nil
}
