package decorators

import (
	"sort"

	"github.com/goliatone/go-formprops/pkg/properties"
)

// withProperty returns a copy of schemas with prop registered at path below
// the root object schema. Intermediate objects are created as needed; maps not
// on the path are shared with the input.
func withProperty(schemas properties.Schemas, prop map[string]any, path ...string) properties.Schemas {
	if len(path) == 0 {
		return schemas
	}
	out := schemas
	out.Schema = setPath(schemas.Schema, prop, path)
	return out
}

func setPath(node map[string]any, prop map[string]any, path []string) map[string]any {
	next := shallowCopy(node)
	if next == nil {
		next = map[string]any{"type": "object"}
	}
	props := shallowCopy(asObject(next["properties"]))
	if props == nil {
		props = make(map[string]any)
	}
	if len(path) == 1 {
		props[path[0]] = prop
	} else {
		props[path[0]] = setPath(asObject(props[path[0]]), prop, path[1:])
	}
	next["properties"] = props
	return next
}

// withUIControl returns a copy of schemas whose layout UI schema lists a
// Control for scope. Schemas without a layout UI schema are returned as is.
func withUIControl(schemas properties.Schemas, scope string) properties.Schemas {
	if schemas.UISchema == nil {
		return schemas
	}
	elements, ok := schemas.UISchema["elements"].([]any)
	if !ok {
		return schemas
	}
	for _, el := range elements {
		if asObject(el)["scope"] == scope {
			return schemas
		}
	}
	out := schemas
	out.UISchema = shallowCopy(schemas.UISchema)
	next := make([]any, len(elements), len(elements)+1)
	copy(next, elements)
	out.UISchema["elements"] = append(next, control(scope))
	return out
}

func control(scope string) map[string]any {
	return map[string]any{"type": "Control", "scope": scope}
}

func propertyNames(schema map[string]any) []string {
	props := asObject(schema["properties"])
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func asObject(value any) map[string]any {
	obj, _ := value.(map[string]any)
	return obj
}

func shallowCopy(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
