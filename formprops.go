package formprops

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formprops/pkg/catalog"
	"github.com/goliatone/go-formprops/pkg/decorators"
	"github.com/goliatone/go-formprops/pkg/properties"
	"github.com/goliatone/go-formprops/pkg/providers"
)

// Schemas aliases properties.Schemas for callers that only import the root
// package.
type Schemas = properties.Schemas

// Kind aliases properties.Kind.
type Kind = properties.Kind

// Service aliases properties.Service.
type Service = properties.Service

const (
	KindDesignProperties = properties.KindDesignProperties
	KindVariableSettings = properties.KindVariableSettings
	KindRequiredSettings = properties.KindRequiredSettings
)

// NewService constructs a bare Service: no providers and identity chains
// unless options add them.
func NewService(options ...properties.Option) *properties.Service {
	return properties.New(options...)
}

// DefaultOption customises NewDefaultService.
type DefaultOption func(*defaultConfig)

type defaultConfig struct {
	catalogFS      fs.FS
	catalogOptions []catalog.Option
	service        []properties.Option
}

// WithCatalogFS replaces the embedded catalog with the files in fsys. Pass nil
// to skip catalog providers entirely.
func WithCatalogFS(fsys fs.FS, options ...catalog.Option) DefaultOption {
	return func(cfg *defaultConfig) {
		cfg.catalogFS = fsys
		cfg.catalogOptions = append([]catalog.Option(nil), options...)
	}
}

// WithServiceOptions appends properties options applied after the defaults.
// Extra providers therefore lose ties against the built-in ones.
func WithServiceOptions(options ...properties.Option) DefaultOption {
	return func(cfg *defaultConfig) {
		cfg.service = append(cfg.service, options...)
	}
}

// NewDefaultService constructs a Service with the built-in providers, the
// catalog providers and the default decorator chains for all three kinds.
func NewDefaultService(ctx context.Context, options ...DefaultOption) (*properties.Service, error) {
	cfg := defaultConfig{catalogFS: catalog.EmbeddedFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	cat, err := catalog.LoadFS(ctx, cfg.catalogFS, cfg.catalogOptions...)
	if err != nil {
		return nil, fmt.Errorf("formprops: load catalog: %w", err)
	}

	opts := []properties.Option{
		properties.WithProviders(providers.Defaults()...),
		properties.WithProviders(cat.Providers()...),
		properties.WithDesignDecorators(decorators.DefaultDesignChain()...),
		properties.WithVariableDecorators(decorators.DefaultVariableChain()...),
		properties.WithRequiredDecorators(decorators.DefaultRequiredChain()...),
	}
	opts = append(opts, cfg.service...)
	return properties.New(opts...), nil
}
