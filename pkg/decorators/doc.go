// Package decorators holds the built-in properties.Decorator implementations
// and the default chains for design properties, variable settings and required
// settings. Decorators never mutate their input: they copy the maps on the
// path they change and share the rest.
package decorators
