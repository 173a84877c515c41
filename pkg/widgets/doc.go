// Package widgets picks the widget a schema-bound Control renders with. The
// design properties chain offers the candidates as an editable option.
package widgets
