// Package editor defines the element descriptors the visual form editor hands
// to the properties resolver. A UIElement is one node of the layout tree being
// edited; a SchemaElement is the data-schema fragment a Control is bound to.
// The resolver treats both as opaque values; providers, testers and decorators
// are the only consumers that look inside them.
package editor
