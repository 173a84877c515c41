// Package catalog loads data-driven properties providers from JSON or YAML
// files. Each file declares a format version and a list of entries; every
// entry matches UI elements by type, bound schema type, format or scope, ranks
// them, and returns a static property schema pair. Files are discovered with a
// doublestar pattern, validated, and their text keywords sanitised before the
// entries become properties.Provider values.
package catalog
