package providers

import (
	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
)

// Ranks used by the built-in providers. Element specific providers outrank the
// fallback; the array provider outranks the generic Control provider.
const (
	RankFallback = 0
	RankElement  = 1
	RankArray    = 2
)

// ControlProperties are the editable properties of a Control.
type ControlProperties struct {
	Description string         `json:"description,omitempty" jsonschema:"title=Description"`
	Options     ControlOptions `json:"options,omitempty" jsonschema:"title=Options"`
}

// ControlOptions are the rendering options shared by all Controls.
type ControlOptions struct {
	Placeholder              string `json:"placeholder,omitempty" jsonschema:"title=Placeholder"`
	Focus                    bool   `json:"focus,omitempty" jsonschema:"title=Focus on load"`
	Trim                     bool   `json:"trim,omitempty" jsonschema:"title=Trim to content width"`
	ShowUnfocusedDescription bool   `json:"showUnfocusedDescription,omitempty" jsonschema:"title=Always show description"`
	HideRequiredAsterisk     bool   `json:"hideRequiredAsterisk,omitempty" jsonschema:"title=Hide required asterisk"`
}

// ArrayProperties are the editable properties of a Control bound to an array.
type ArrayProperties struct {
	Description string       `json:"description,omitempty" jsonschema:"title=Description"`
	Options     ArrayOptions `json:"options,omitempty" jsonschema:"title=Options"`
}

// ArrayOptions configure the array layout renderer.
type ArrayOptions struct {
	ShowSortButtons  bool   `json:"showSortButtons,omitempty" jsonschema:"title=Show sort buttons"`
	ElementLabelProp string `json:"elementLabelProp,omitempty" jsonschema:"title=Element label property"`
	Detail           string `json:"detail,omitempty" jsonschema:"title=Detail,enum=DEFAULT,enum=GENERATED,enum=REGISTERED"`
}

// LayoutProperties are the editable properties of vertical and horizontal
// layouts.
type LayoutProperties struct {
	Options LayoutOptions `json:"options,omitempty" jsonschema:"title=Options"`
}

// LayoutOptions configure layout spacing.
type LayoutOptions struct {
	Gap string `json:"gap,omitempty" jsonschema:"title=Gap,enum=none,enum=small,enum=medium,enum=large"`
}

// GroupProperties are the editable properties of a Group.
type GroupProperties struct {
	Options GroupOptions `json:"options,omitempty" jsonschema:"title=Options"`
}

// GroupOptions configure how a group is framed.
type GroupOptions struct {
	Collapsible bool `json:"collapsible,omitempty" jsonschema:"title=Collapsible"`
	Collapsed   bool `json:"collapsed,omitempty" jsonschema:"title=Collapsed by default"`
}

// CategorizationProperties are the editable properties of a Categorization.
type CategorizationProperties struct {
	Options CategorizationOptions `json:"options,omitempty" jsonschema:"title=Options"`
}

// CategorizationOptions select how categories are navigated.
type CategorizationOptions struct {
	Variant        string `json:"variant,omitempty" jsonschema:"title=Variant,enum=tabs,enum=stepper"`
	ShowNavButtons bool   `json:"showNavButtons,omitempty" jsonschema:"title=Show navigation buttons"`
}

// emptyProperties describes elements whose properties come from decorators
// only.
type emptyProperties struct{}

// Control ranks every Control.
func Control() *Reflected {
	return MustReflect("control",
		properties.RankWith(RankElement, properties.UITypeIs(editor.TypeControl)),
		ControlProperties{})
}

// Array ranks Controls bound to array data above Control.
func Array() *Reflected {
	return MustReflect("array",
		properties.RankWith(RankArray, properties.And(
			properties.UITypeIs(editor.TypeControl),
			properties.SchemaTypeIs(editor.SchemaTypeArray),
		)),
		ArrayProperties{})
}

// Layout ranks vertical and horizontal layouts.
func Layout() *Reflected {
	return MustReflect("layout",
		properties.RankWith(RankElement, properties.UITypeIs(editor.TypeVerticalLayout, editor.TypeHorizontalLayout)),
		LayoutProperties{})
}

// Group ranks Groups.
func Group() *Reflected {
	return MustReflect("group",
		properties.RankWith(RankElement, properties.UITypeIs(editor.TypeGroup)),
		GroupProperties{})
}

// Categorization ranks Categorizations.
func Categorization() *Reflected {
	return MustReflect("categorization",
		properties.RankWith(RankElement, properties.UITypeIs(editor.TypeCategorization)),
		CategorizationProperties{})
}

// Category ranks Categories and Labels, whose editable properties are all
// contributed by decorators.
func Category() *Reflected {
	return MustReflect("category",
		properties.RankWith(RankElement, properties.UITypeIs(editor.TypeCategory, editor.TypeLabel)),
		emptyProperties{})
}

// Fallback describes any element no other provider claims.
func Fallback() *Reflected {
	return MustReflect("fallback",
		properties.RankWith(RankFallback, properties.Always()),
		emptyProperties{})
}

// Defaults returns the built-in providers in registration order.
func Defaults() []properties.Provider {
	return []properties.Provider{
		Control(),
		Array(),
		Layout(),
		Group(),
		Categorization(),
		Category(),
		Fallback(),
	}
}
