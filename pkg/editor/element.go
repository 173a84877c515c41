package editor

import (
	"strings"

	"github.com/google/uuid"
)

// UI element types understood by the built-in providers.
const (
	TypeControl          = "Control"
	TypeVerticalLayout   = "VerticalLayout"
	TypeHorizontalLayout = "HorizontalLayout"
	TypeGroup            = "Group"
	TypeCategorization   = "Categorization"
	TypeCategory         = "Category"
	TypeLabel            = "Label"
)

// UIElement describes one node of the form layout being edited.
type UIElement struct {
	UUID     string         `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Type     string         `json:"type" yaml:"type"`
	Scope    string         `json:"scope,omitempty" yaml:"scope,omitempty"`
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Options  map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	Rule     map[string]any `json:"rule,omitempty" yaml:"rule,omitempty"`
	Elements []*UIElement   `json:"elements,omitempty" yaml:"elements,omitempty"`

	// Linked is the data-schema element a Control is bound to. It is set by
	// Link and never serialised.
	Linked *SchemaElement `json:"-" yaml:"-"`
}

// NewUIElement returns an element of the given type with a fresh UUID.
func NewUIElement(elementType string) *UIElement {
	return &UIElement{
		UUID: uuid.NewString(),
		Type: strings.TrimSpace(elementType),
	}
}

// Link binds ui to its data-schema element. Passing a nil schema clears the
// binding.
func Link(ui *UIElement, schema *SchemaElement) {
	if ui == nil {
		return
	}
	ui.Linked = schema
}

// IsLayout reports whether the element arranges child elements.
func (e *UIElement) IsLayout() bool {
	if e == nil {
		return false
	}
	switch e.Type {
	case TypeVerticalLayout, TypeHorizontalLayout, TypeGroup, TypeCategorization, TypeCategory:
		return true
	default:
		return false
	}
}

// PropertyName returns the last segment of the element scope, e.g. "name" for
// "#/properties/name".
func (e *UIElement) PropertyName() string {
	if e == nil {
		return ""
	}
	scope := strings.TrimSpace(e.Scope)
	if scope == "" {
		return ""
	}
	idx := strings.LastIndex(scope, "/")
	if idx < 0 {
		return scope
	}
	return scope[idx+1:]
}

// Option returns the option stored under key.
func (e *UIElement) Option(key string) (any, bool) {
	if e == nil || e.Options == nil {
		return nil, false
	}
	value, ok := e.Options[key]
	return value, ok
}

// EnsureUUIDs assigns a UUID to every element in the tree rooted at root that
// does not carry one yet.
func EnsureUUIDs(root *UIElement) {
	if root == nil {
		return
	}
	if strings.TrimSpace(root.UUID) == "" {
		root.UUID = uuid.NewString()
	}
	for _, child := range root.Elements {
		EnsureUUIDs(child)
	}
}

// Find returns the first element of the tree rooted at root, in depth-first
// order, for which match reports true.
func Find(root *UIElement, match func(*UIElement) bool) (*UIElement, bool) {
	if root == nil || match == nil {
		return nil, false
	}
	if match(root) {
		return root, true
	}
	for _, child := range root.Elements {
		if found, ok := Find(child, match); ok {
			return found, true
		}
	}
	return nil, false
}

// FindByScope returns the first element bound to scope.
func FindByScope(root *UIElement, scope string) (*UIElement, bool) {
	return Find(root, func(el *UIElement) bool { return el.Scope == scope })
}

// FindByUUID returns the element carrying id.
func FindByUUID(root *UIElement, id string) (*UIElement, bool) {
	return Find(root, func(el *UIElement) bool { return el.UUID == id })
}
