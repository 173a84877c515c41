package properties

import (
	"reflect"
	"strings"

	"github.com/goliatone/go-formprops/pkg/editor"
)

// Predicate decides whether a UI element matches a rule.
type Predicate func(ui *editor.UIElement) bool

// RankWith returns a Tester ranking matching elements with rank and every
// other element NotApplicable.
func RankWith(rank int, predicate Predicate) Tester {
	return func(ui *editor.UIElement) int {
		if predicate == nil || !predicate(ui) {
			return NotApplicable
		}
		return rank
	}
}

// Always matches every non-nil element.
func Always() Predicate {
	return func(ui *editor.UIElement) bool {
		return ui != nil
	}
}

// UITypeIs matches elements of any of the given types.
func UITypeIs(types ...string) Predicate {
	return func(ui *editor.UIElement) bool {
		if ui == nil {
			return false
		}
		for _, t := range types {
			if ui.Type == t {
				return true
			}
		}
		return false
	}
}

// SchemaTypeIs matches elements linked to a schema element of the given type.
func SchemaTypeIs(schemaType string) Predicate {
	return func(ui *editor.UIElement) bool {
		return ui != nil && ui.Linked.Is(schemaType)
	}
}

// SchemaFormatIs matches elements linked to a schema element with the given
// format.
func SchemaFormatIs(format string) Predicate {
	return func(ui *editor.UIElement) bool {
		return ui != nil && ui.Linked != nil && ui.Linked.Format == format
	}
}

// ScopeEndsWith matches elements whose scope ends with suffix.
func ScopeEndsWith(suffix string) Predicate {
	return func(ui *editor.UIElement) bool {
		return ui != nil && ui.Scope != "" && strings.HasSuffix(ui.Scope, suffix)
	}
}

// OptionIs matches elements whose option key equals value.
func OptionIs(key string, value any) Predicate {
	return func(ui *editor.UIElement) bool {
		got, ok := ui.Option(key)
		return ok && reflect.DeepEqual(got, value)
	}
}

// And matches when every predicate matches.
func And(predicates ...Predicate) Predicate {
	return func(ui *editor.UIElement) bool {
		for _, p := range predicates {
			if p == nil || !p(ui) {
				return false
			}
		}
		return len(predicates) > 0
	}
}

// Or matches when any predicate matches.
func Or(predicates ...Predicate) Predicate {
	return func(ui *editor.UIElement) bool {
		for _, p := range predicates {
			if p != nil && p(ui) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(predicate Predicate) Predicate {
	return func(ui *editor.UIElement) bool {
		return predicate != nil && !predicate(ui)
	}
}
