package decorators

import (
	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
	"github.com/goliatone/go-formprops/pkg/widgets"
)

// Label adds an editable "label" to Controls and titled layouts. The current
// label, or the bound schema title, becomes the default.
func Label() properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, schema *editor.SchemaElement) properties.Schemas {
		if ui == nil {
			return schemas
		}
		switch ui.Type {
		case editor.TypeControl, editor.TypeGroup, editor.TypeCategory, editor.TypeCategorization:
		default:
			return schemas
		}

		prop := map[string]any{"type": "string", "title": "Label"}
		if def := labelDefault(ui, schema); def != "" {
			prop["default"] = def
		}
		out := withProperty(schemas, prop, "label")
		return withUIControl(out, "#/properties/label")
	}
}

func labelDefault(ui *editor.UIElement, schema *editor.SchemaElement) string {
	if ui.Label != "" {
		return ui.Label
	}
	if schema != nil && schema.Title != "" {
		return schema.Title
	}
	if ui.Linked != nil && ui.Linked.Title != "" {
		return ui.Linked.Title
	}
	return ""
}

// LabelText adds the editable "text" of Label elements.
func LabelText() properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, _ *editor.SchemaElement) properties.Schemas {
		if ui == nil || ui.Type != editor.TypeLabel {
			return schemas
		}
		out := withProperty(schemas, map[string]any{"type": "string", "title": "Text"}, "text")
		return withUIControl(out, "#/properties/text")
	}
}

// MultilineString adds an "options.multi" toggle to Controls bound to string
// data.
func MultilineString() properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, schema *editor.SchemaElement) properties.Schemas {
		if ui == nil || ui.Type != editor.TypeControl || !boundType(ui, schema, editor.SchemaTypeString) {
			return schemas
		}
		prop := map[string]any{"type": "boolean", "title": "Multiline", "default": false}
		out := withProperty(schemas, prop, "options", "multi")
		return withUIControl(out, "#/properties/options")
	}
}

// ReadOnly adds an "options.readonly" toggle to Controls.
func ReadOnly() properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, _ *editor.SchemaElement) properties.Schemas {
		if ui == nil || ui.Type != editor.TypeControl {
			return schemas
		}
		prop := map[string]any{"type": "boolean", "title": "Read only", "default": false}
		out := withProperty(schemas, prop, "options", "readonly")
		return withUIControl(out, "#/properties/options")
	}
}

// Rule effects supported by the Rule decorator.
var ruleEffects = []any{"HIDE", "SHOW", "ENABLE", "DISABLE"}

// Rule adds a "rule" object controlling visibility or enablement of any
// element.
func Rule() properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, _ *editor.SchemaElement) properties.Schemas {
		if ui == nil {
			return schemas
		}
		prop := map[string]any{
			"type":  "object",
			"title": "Rule",
			"properties": map[string]any{
				"effect": map[string]any{"type": "string", "enum": ruleEffects},
				"condition": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"scope":  map[string]any{"type": "string"},
						"schema": map[string]any{"type": "object"},
					},
				},
			},
		}
		out := withProperty(schemas, prop, "rule")
		return withUIControl(out, "#/properties/rule")
	}
}

func boundType(ui *editor.UIElement, schema *editor.SchemaElement, schemaType string) bool {
	if schema != nil {
		return schema.Is(schemaType)
	}
	return ui.Linked.Is(schemaType)
}

// DefaultDesignChain returns the decorators applied to design properties.
func DefaultDesignChain() properties.Chain {
	return properties.Chain{Label(), LabelText(), MultilineString(), ReadOnly(), Widget(widgets.NewRegistry()), Rule()}
}
