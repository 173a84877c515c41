package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formprops/pkg/properties"
	"github.com/goliatone/go-formprops/pkg/validation"
)

type validateOptions struct {
	elementFlags
	kind   string
	values string
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate property values against the resolved properties schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, opts)
		},
	}

	addElementFlags(cmd.Flags(), &opts.elementFlags)
	cmd.Flags().StringVar(&opts.kind, "kind", string(properties.KindDesignProperties), "Properties kind to resolve")
	cmd.Flags().StringVar(&opts.values, "values", "", "Property values file (JSON or YAML)")

	return cmd
}

func runValidate(cmd *cobra.Command, root *rootFlags, opts *validateOptions) error {
	ctx := cmd.Context()
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}
	kind, err := properties.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	values, err := loadValues(opts.values)
	if err != nil {
		return err
	}
	tgt, err := loadTarget(ctx, opts.elementFlags)
	if err != nil {
		return err
	}
	svc, err := buildService(ctx, opts.catalog, log)
	if err != nil {
		return err
	}

	schemas, ok := svc.Resolve(kind, tgt.ui, tgt.schema)
	if !ok {
		return fmt.Errorf("element %q has no %s", tgt.ui.Type, kind)
	}

	result := validation.ValidateValues(schemas, values)
	if err := root.writeJSON(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	return result.Error()
}

func loadValues(path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("--values is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values %s: %w", path, err)
	}
	var values any
	if err := json.Unmarshal(raw, &values); err == nil {
		return values, nil
	}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse values %s: invalid JSON or YAML", path)
	}
	return values, nil
}
