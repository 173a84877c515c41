package main

import (
	"encoding/json"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formprops/internal/logger"
)

type rootFlags struct {
	logLevel string
	pretty   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "formprops-cli",
		Short:         "Resolve properties panel schemas for form editor elements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.pretty, "pretty", false, "Indent JSON output")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newProvidersCmd(flags))

	return cmd
}

func (f *rootFlags) logger(cmd *cobra.Command) (zerolog.Logger, error) {
	return logger.New(logger.Options{
		Level:         f.logLevel,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
}

func (f *rootFlags) writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	if f.pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(value)
}
