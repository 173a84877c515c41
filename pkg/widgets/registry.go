package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formprops/pkg/editor"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetToggle     = "toggle"
	WidgetSelect     = "select"
	WidgetRadio      = "radio"
	WidgetChips      = "chips"
	WidgetCodeEditor = "code-editor"
	WidgetJSONEditor = "json-editor"
	WidgetKeyValue   = "key-value"
)

// OptionKey is the UI element option carrying an explicit widget choice.
const OptionKey = "widget"

// Matcher decides whether a widget can render the supplied schema element.
type Matcher func(schema *editor.SchemaElement) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for schema-bound Controls based on explicit options
// or registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Candidates lists every widget able to render schema, best first, without
// duplicates.
func (r *Registry) Candidates(schema *editor.SchemaElement) []string {
	if r == nil || schema == nil {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, entry := range r.sorted() {
		if _, dup := seen[entry.name]; dup || !entry.match(schema) {
			continue
		}
		seen[entry.name] = struct{}{}
		out = append(out, entry.name)
	}
	return out
}

// Resolve returns the widget for ui bound to schema. An explicit "widget"
// option on ui is honoured before matcher evaluation. When schema is nil the
// element's linked schema is used.
func (r *Registry) Resolve(ui *editor.UIElement, schema *editor.SchemaElement) (string, bool) {
	if explicit := explicitWidget(ui); explicit != "" {
		return explicit, true
	}
	if schema == nil && ui != nil {
		schema = ui.Linked
	}
	candidates := r.Candidates(schema)
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}

func (r *Registry) sorted() []rule {
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	return rules
}

func explicitWidget(ui *editor.UIElement) string {
	value, ok := ui.Option(OptionKey)
	if !ok {
		return ""
	}
	widget, _ := value.(string)
	return strings.TrimSpace(widget)
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetToggle, 90, func(schema *editor.SchemaElement) bool {
		return schema.Is(editor.SchemaTypeBoolean)
	})

	r.Register(WidgetChips, 80, func(schema *editor.SchemaElement) bool {
		if !schema.Is(editor.SchemaTypeArray) {
			return false
		}
		return len(schema.Enum) > 0 || (schema.Items != nil && len(schema.Items.Enum) > 0)
	})

	r.Register(WidgetSelect, 70, func(schema *editor.SchemaElement) bool {
		if schema.Is(editor.SchemaTypeArray) || schema.Is(editor.SchemaTypeObject) {
			return false
		}
		return len(schema.Enum) > 0
	})

	r.Register(WidgetRadio, 65, func(schema *editor.SchemaElement) bool {
		if schema.Is(editor.SchemaTypeArray) || schema.Is(editor.SchemaTypeObject) {
			return false
		}
		return len(schema.Enum) > 0 && len(schema.Enum) <= 5
	})

	r.Register(WidgetCodeEditor, 60, func(schema *editor.SchemaElement) bool {
		if !schema.Is(editor.SchemaTypeString) {
			return false
		}
		format := strings.TrimSpace(strings.ToLower(schema.Format))
		return format == "json" || format == "yaml" || format == "toml"
	})

	r.Register(WidgetJSONEditor, 50, func(schema *editor.SchemaElement) bool {
		return schema.Is(editor.SchemaTypeObject) && len(schema.Properties) == 0
	})

	r.Register(WidgetKeyValue, 40, func(schema *editor.SchemaElement) bool {
		if !schema.Is(editor.SchemaTypeArray) || schema.Items == nil {
			return false
		}
		return schema.Items.Is(editor.SchemaTypeObject) && len(schema.Items.Properties) == 0
	})
}
