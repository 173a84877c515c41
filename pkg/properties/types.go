package properties

import (
	"strings"

	"github.com/mohae/deepcopy"

	"github.com/goliatone/go-formprops/pkg/editor"
)

// NotApplicable is the rank a Tester returns when its provider cannot describe
// an element. Providers ranked NotApplicable are never selected.
const NotApplicable = -1

// Schemas describes the properties view of an editor element: the data schema
// of the editable properties and an optional UI schema laying them out.
// Decorators treat Schemas as an immutable value and return a new one.
type Schemas struct {
	Schema   map[string]any `json:"schema"`
	UISchema map[string]any `json:"uiSchema,omitempty"`
}

// HasUISchema reports whether a UI schema is present.
func (s Schemas) HasUISchema() bool {
	return s.UISchema != nil
}

// Clone returns a deep copy of s.
func (s Schemas) Clone() Schemas {
	return Schemas{
		Schema:   cloneObject(s.Schema),
		UISchema: cloneObject(s.UISchema),
	}
}

func cloneObject(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out, ok := deepcopy.Copy(src).(map[string]any)
	if !ok {
		return nil
	}
	return out
}

// Tester ranks how well a provider describes a UI element. Higher ranks win;
// NotApplicable excludes the provider. Testers must be free of side effects.
type Tester func(ui *editor.UIElement) int

// SchemasFunc produces the base Schemas for an element. Returning false means
// the provider has nothing usable for it.
type SchemasFunc func(ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, bool)

// Provider supplies the base property schemas for the UI elements it ranks
// itself applicable to.
type Provider interface {
	Rank(ui *editor.UIElement) int
	PropertiesSchemas(ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, bool)
}

// Named is implemented by providers that expose a name for logs and metrics.
type Named interface {
	Name() string
}

// NewProvider adapts a tester and a schemas function into a Provider.
func NewProvider(name string, tester Tester, fn SchemasFunc) Provider {
	return &funcProvider{
		name:   strings.TrimSpace(name),
		tester: tester,
		fn:     fn,
	}
}

type funcProvider struct {
	name   string
	tester Tester
	fn     SchemasFunc
}

func (p *funcProvider) Name() string {
	return p.name
}

func (p *funcProvider) Rank(ui *editor.UIElement) int {
	if p.tester == nil {
		return NotApplicable
	}
	return p.tester(ui)
}

func (p *funcProvider) PropertiesSchemas(ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, bool) {
	if p.fn == nil {
		return Schemas{}, false
	}
	return p.fn(ui, schema)
}

// ProviderName returns the provider's name, or "unnamed" when it has none.
func ProviderName(p Provider) string {
	if named, ok := p.(Named); ok {
		if name := strings.TrimSpace(named.Name()); name != "" {
			return name
		}
	}
	return "unnamed"
}

// Decorator transforms the Schemas of an element. It must not mutate its
// input and must tolerate the output of any preceding decorator.
type Decorator func(schemas Schemas, ui *editor.UIElement, schema *editor.SchemaElement) Schemas

// Chain is an ordered sequence of decorators.
type Chain []Decorator

// Apply folds base through the chain from left to right. An empty chain
// returns base unchanged.
func (c Chain) Apply(base Schemas, ui *editor.UIElement, schema *editor.SchemaElement) Schemas {
	out := base
	for _, decorate := range c {
		if decorate == nil {
			continue
		}
		out = decorate(out, ui, schema)
	}
	return out
}
