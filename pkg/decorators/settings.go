package decorators

import (
	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
)

// variableNamePattern restricts variable names to identifiers.
const variableNamePattern = "^[A-Za-z_][A-Za-z0-9_]*$"

// AddDefaultUISchema sets a VerticalLayout UI schema listing one Control per
// top-level property when the schemas carry no UI schema yet.
func AddDefaultUISchema() properties.Decorator {
	return func(schemas properties.Schemas, _ *editor.UIElement, _ *editor.SchemaElement) properties.Schemas {
		if schemas.UISchema != nil {
			return schemas
		}
		out := schemas
		out.UISchema = DefaultUISchema(schemas.Schema)
		return out
	}
}

// DefaultUISchema builds a VerticalLayout with one Control per top-level
// property of schema, ordered by property name.
func DefaultUISchema(schema map[string]any) map[string]any {
	names := propertyNames(schema)
	elements := make([]any, 0, len(names))
	for _, name := range names {
		elements = append(elements, control("#/properties/"+name))
	}
	return map[string]any{
		"type":     editor.TypeVerticalLayout,
		"elements": elements,
	}
}

// VariableBinding lets data-bound Controls be backed by a named variable. The
// variable default mirrors the bound data type.
func VariableBinding() properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, schema *editor.SchemaElement) properties.Schemas {
		if ui == nil || ui.Type != editor.TypeControl {
			return schemas
		}
		name := map[string]any{
			"type":    "string",
			"title":   "Variable",
			"pattern": variableNamePattern,
		}
		if prop := ui.PropertyName(); prop != "" {
			name["default"] = prop
		}
		out := withProperty(schemas, name, "variable")
		out = withUIControl(out, "#/properties/variable")

		def := map[string]any{"title": "Default value"}
		if dataType := boundDataType(ui, schema); dataType != "" {
			def["type"] = dataType
		}
		out = withProperty(out, def, "variableDefault")
		return withUIControl(out, "#/properties/variableDefault")
	}
}

func boundDataType(ui *editor.UIElement, schema *editor.SchemaElement) string {
	target := schema
	if target == nil {
		target = ui.Linked
	}
	if target == nil {
		return ""
	}
	switch target.Type {
	case editor.SchemaTypeString, editor.SchemaTypeNumber, editor.SchemaTypeInteger, editor.SchemaTypeBoolean:
		return target.Type
	default:
		return ""
	}
}

// RequiredToggle adds a "required" flag to Controls defaulting to value. A
// later toggle in the same chain overrides an earlier one.
func RequiredToggle(value bool) properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, _ *editor.SchemaElement) properties.Schemas {
		if ui == nil || ui.Type != editor.TypeControl {
			return schemas
		}
		return withRequired(schemas, value)
	}
}

// RequiredFromSchema adds a "required" flag to Controls defaulting to whether
// the bound schema element is required by its parent.
func RequiredFromSchema() properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, schema *editor.SchemaElement) properties.Schemas {
		if ui == nil || ui.Type != editor.TypeControl {
			return schemas
		}
		target := schema
		if target == nil {
			target = ui.Linked
		}
		return withRequired(schemas, target != nil && target.IsRequired)
	}
}

func withRequired(schemas properties.Schemas, value bool) properties.Schemas {
	prop := map[string]any{"type": "boolean", "title": "Required", "default": value}
	out := withProperty(schemas, prop, "required")
	return withUIControl(out, "#/properties/required")
}

// DefaultVariableChain returns the decorators applied to variable settings.
func DefaultVariableChain() properties.Chain {
	return properties.Chain{AddDefaultUISchema(), VariableBinding()}
}

// DefaultRequiredChain returns the decorators applied to required settings.
func DefaultRequiredChain() properties.Chain {
	return properties.Chain{AddDefaultUISchema(), RequiredFromSchema()}
}
