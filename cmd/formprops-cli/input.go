package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	formprops "github.com/goliatone/go-formprops"
	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
)

// elementFlags select the element whose properties are resolved.
type elementFlags struct {
	element string
	schema  string
	scope   string
	catalog string
}

type target struct {
	ui     *editor.UIElement
	schema *editor.SchemaElement
}

func loadTarget(ctx context.Context, flags elementFlags) (target, error) {
	if strings.TrimSpace(flags.element) == "" {
		return target{}, fmt.Errorf("--element is required")
	}
	raw, err := os.ReadFile(flags.element)
	if err != nil {
		return target{}, fmt.Errorf("read element %s: %w", flags.element, err)
	}
	root, err := editor.LoadUIElement(raw)
	if err != nil {
		return target{}, err
	}

	if flags.schema != "" {
		rawSchema, err := os.ReadFile(flags.schema)
		if err != nil {
			return target{}, fmt.Errorf("read schema %s: %w", flags.schema, err)
		}
		schema, err := editor.LoadSchemaElement(ctx, rawSchema)
		if err != nil {
			return target{}, err
		}
		editor.LinkTree(root, schema)
	}

	selected := root
	if flags.scope != "" {
		found, ok := editor.FindByScope(root, flags.scope)
		if !ok {
			return target{}, fmt.Errorf("no element bound to scope %q", flags.scope)
		}
		selected = found
	}
	return target{ui: selected, schema: selected.Linked}, nil
}

func buildService(ctx context.Context, catalogDir string, log zerolog.Logger) (*properties.Service, error) {
	options := []formprops.DefaultOption{
		formprops.WithServiceOptions(properties.WithLogger(log)),
	}
	if catalogDir != "" {
		info, err := os.Stat(catalogDir)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", catalogDir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("catalog %s is not a directory", catalogDir)
		}
		options = append(options, formprops.WithCatalogFS(os.DirFS(catalogDir)))
	}
	return formprops.NewDefaultService(ctx, options...)
}

func addElementFlags(flagSet *pflag.FlagSet, flags *elementFlags) {
	flagSet.StringVar(&flags.element, "element", "", "UI element tree file (JSON or YAML)")
	flagSet.StringVar(&flags.schema, "schema", "", "Data schema file the tree is bound to (JSON or YAML)")
	flagSet.StringVar(&flags.scope, "scope", "", "Select the element bound to this scope instead of the root")
	flagSet.StringVar(&flags.catalog, "catalog", "", "Directory of catalog files replacing the embedded catalog")
}
