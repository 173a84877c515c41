package catalog

// Document is the on-disk shape of a catalog file.
type Document struct {
	Version   string  `json:"version" yaml:"version" validate:"required"`
	Providers []Entry `json:"providers" yaml:"providers" validate:"dive"`
}

// Entry declares one data-driven provider: which elements it matches, how
// highly it ranks them, and the property schemas it returns.
type Entry struct {
	Name     string         `json:"name" yaml:"name" validate:"required,provider_name"`
	Rank     int            `json:"rank" yaml:"rank" validate:"gte=0"`
	Match    Match          `json:"match" yaml:"match"`
	Schema   map[string]any `json:"schema" yaml:"schema" validate:"required"`
	UISchema map[string]any `json:"uiSchema,omitempty" yaml:"uiSchema,omitempty"`

	// Source records the file the entry was read from.
	Source string `json:"-" yaml:"-"`
}

// Match lists the conditions an element must meet for an Entry to apply. Empty
// fields are ignored; at least one of UIType and SchemaType is required.
type Match struct {
	UIType       string `json:"uiType,omitempty" yaml:"uiType,omitempty" validate:"required_without=SchemaType"`
	SchemaType   string `json:"schemaType,omitempty" yaml:"schemaType,omitempty" validate:"omitempty,oneof=object array string number integer boolean"`
	SchemaFormat string `json:"schemaFormat,omitempty" yaml:"schemaFormat,omitempty"`
	ScopeSuffix  string `json:"scopeSuffix,omitempty" yaml:"scopeSuffix,omitempty"`
}
