package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formprops/pkg/properties"
)

type providersOptions struct {
	catalog string
	json    bool
}

func newProvidersCmd(root *rootFlags) *cobra.Command {
	opts := &providersOptions{}

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List registered providers in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProviders(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "Directory of catalog files replacing the embedded catalog")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output in JSON format")

	return cmd
}

func runProviders(cmd *cobra.Command, root *rootFlags, opts *providersOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}
	svc, err := buildService(cmd.Context(), opts.catalog, log)
	if err != nil {
		return err
	}

	names := make([]string, 0)
	for _, provider := range svc.Providers() {
		names = append(names, properties.ProviderName(provider))
	}
	if opts.json {
		return root.writeJSON(cmd.OutOrStdout(), names)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPROVIDER")
	for idx, name := range names {
		fmt.Fprintf(w, "%d\t%s\n", idx+1, name)
	}
	return w.Flush()
}
