// Package validation checks the values a user enters in a properties panel
// against the property schema the panel was rendered from.
package validation
