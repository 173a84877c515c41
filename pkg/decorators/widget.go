package decorators

import (
	"slices"

	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
	"github.com/goliatone/go-formprops/pkg/widgets"
)

// Widget adds an "options.widget" choice to Controls whose bound data can be
// rendered by more than the default input. The candidates come from reg, best
// first; the resolved widget becomes the default. An explicit widget outside
// the candidates is appended so the default always appears in the enum.
func Widget(reg *widgets.Registry) properties.Decorator {
	return func(schemas properties.Schemas, ui *editor.UIElement, schema *editor.SchemaElement) properties.Schemas {
		if reg == nil || ui == nil || ui.Type != editor.TypeControl {
			return schemas
		}
		target := schema
		if target == nil {
			target = ui.Linked
		}
		candidates := reg.Candidates(target)
		if len(candidates) == 0 {
			return schemas
		}

		enum := make([]any, 0, len(candidates))
		for _, name := range candidates {
			enum = append(enum, name)
		}
		prop := map[string]any{"type": "string", "title": "Widget", "enum": enum}
		if resolved, ok := reg.Resolve(ui, target); ok {
			if !slices.Contains(candidates, resolved) {
				prop["enum"] = append(enum, resolved)
			}
			prop["default"] = resolved
		}
		out := withProperty(schemas, prop, "options", widgets.OptionKey)
		return withUIControl(out, "#/properties/options")
	}
}
