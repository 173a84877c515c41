// Package properties resolves the property-editing schemas shown in the
// editor's properties panel. A Service ranks every registered Provider against
// a UI element, invokes the single best-ranked one, and folds its output
// through the decorator chain of the requested Kind. "Nothing to show" is a
// normal outcome reported as (Schemas{}, false); providers and decorators that
// panic are not recovered.
package properties
