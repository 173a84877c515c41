// Package providers contains the built-in properties.Provider set. Each
// provider describes one family of UI elements with a Go struct whose JSON
// Schema is reflected once at construction.
package providers
