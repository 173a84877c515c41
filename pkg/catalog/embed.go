package catalog

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*
var embeddedCatalog embed.FS

// EmbeddedFS returns the bundled catalog files. Pass it to LoadFS to use the
// default data-driven providers.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
