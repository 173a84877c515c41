package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formprops/pkg/properties"
)

type resolveOptions struct {
	elementFlags
	kind        string
	interactive bool
	base        bool
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the properties schemas of an element as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, opts)
		},
	}

	addElementFlags(cmd.Flags(), &opts.elementFlags)
	cmd.Flags().StringVar(&opts.kind, "kind", string(properties.KindDesignProperties), "Properties kind to resolve")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "Prompt for the kind")
	cmd.Flags().BoolVar(&opts.base, "base", false, "Print the undecorated provider output")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, opts *resolveOptions) error {
	ctx := cmd.Context()
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	kind, err := properties.ParseKind(opts.kind)
	if opts.interactive {
		kind, err = promptKind(ctx)
	}
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

	var (
		schemas properties.Schemas
		ok      bool
	)
	if opts.base {
		schemas, ok = svc.Base(tgt.ui, tgt.schema)
	} else {
		schemas, ok = svc.Resolve(kind, tgt.ui, tgt.schema)
	}
	if !ok {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "null")
		return err
	}
	return root.writeJSON(cmd.OutOrStdout(), schemas)
}
