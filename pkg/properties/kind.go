package properties

import (
	"fmt"
	"strings"
)

// Kind selects which decorator chain a resolution runs through.
type Kind string

const (
	KindDesignProperties Kind = "design-properties"
	KindVariableSettings Kind = "variable-settings"
	KindRequiredSettings Kind = "required-settings"
)

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindDesignProperties, KindVariableSettings, KindRequiredSettings}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDesignProperties, KindVariableSettings, KindRequiredSettings:
		return true
	default:
		return false
	}
}

// ParseKind converts user input into a Kind.
func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", fmt.Errorf("properties: unknown kind %q", raw)
	}
	return kind, nil
}
