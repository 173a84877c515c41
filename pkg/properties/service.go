package properties

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formprops/pkg/editor"
)

// Outcome labels the result of a resolution for observers.
type Outcome string

const (
	OutcomeResolved      Outcome = "resolved"
	OutcomeNotApplicable Outcome = "not_applicable"
	OutcomeNoSchema      Outcome = "no_schema"
	OutcomeUnknownKind   Outcome = "unknown_kind"
)

// Observer is notified once per resolution. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveResolution(kind Kind, provider string, outcome Outcome)
}

// Option customises a Service.
type Option func(*Service)

// WithProviders appends providers in registration order. Registration order
// breaks ties between equally ranked providers.
func WithProviders(providers ...Provider) Option {
	return func(s *Service) {
		for _, provider := range providers {
			if provider == nil {
				continue
			}
			s.providers = append(s.providers, provider)
		}
	}
}

// WithDecorators appends decorators to the chain used for kind. Kinds beyond
// the three built-in ones become resolvable once they are given a chain.
func WithDecorators(kind Kind, decorators ...Decorator) Option {
	return func(s *Service) {
		if len(decorators) == 0 {
			return
		}
		s.chains[kind] = append(s.chains[kind], decorators...)
	}
}

// WithDesignDecorators appends decorators to the design properties chain.
func WithDesignDecorators(decorators ...Decorator) Option {
	return WithDecorators(KindDesignProperties, decorators...)
}

// WithVariableDecorators appends decorators to the variable settings chain.
func WithVariableDecorators(decorators ...Decorator) Option {
	return WithDecorators(KindVariableSettings, decorators...)
}

// WithRequiredDecorators appends decorators to the required settings chain.
func WithRequiredDecorators(decorators ...Decorator) Option {
	return WithDecorators(KindRequiredSettings, decorators...)
}

// WithLogger sets the logger used for selection diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithObserver registers an observer notified after every resolution.
func WithObserver(observer Observer) Option {
	return func(s *Service) {
		s.observer = observer
	}
}

// Service resolves properties panel schemas. Providers and chains are fixed at
// construction, so a Service is safe for concurrent use as long as its
// providers and decorators are.
type Service struct {
	providers []Provider
	chains    map[Kind]Chain
	logger    zerolog.Logger
	observer  Observer
}

// New constructs a Service applying the provided options. Every kind starts
// with an empty (identity) chain.
func New(options ...Option) *Service {
	s := &Service{
		chains: make(map[Kind]Chain, len(Kinds())),
		logger: zerolog.Nop(),
	}
	for _, kind := range Kinds() {
		s.chains[kind] = nil
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	s.providers = append([]Provider(nil), s.providers...)
	for kind, chain := range s.chains {
		s.chains[kind] = append(Chain(nil), chain...)
	}
	return s
}

// Providers returns a copy of the registered providers in registration order.
func (s *Service) Providers() []Provider {
	if s == nil {
		return nil
	}
	return append([]Provider(nil), s.providers...)
}

// Chain returns a copy of the decorator chain configured for kind.
func (s *Service) Chain(kind Kind) (Chain, bool) {
	if s == nil {
		return nil, false
	}
	chain, ok := s.chains[kind]
	if !ok {
		return nil, false
	}
	return append(Chain(nil), chain...), true
}

// Provider selects the provider that best describes ui and returns it with
// its rank. Each tester runs exactly once. When several providers share the
// highest rank the first registered one wins. The result is absent when no
// provider is registered or the highest rank is NotApplicable.
func (s *Service) Provider(ui *editor.UIElement) (Provider, int, bool) {
	if s == nil || len(s.providers) == 0 {
		return nil, NotApplicable, false
	}

	var (
		best     Provider
		bestRank int
	)
	for idx, provider := range s.providers {
		rank := provider.Rank(ui)
		if idx == 0 || rank > bestRank {
			best, bestRank = provider, rank
		}
	}
	if bestRank == NotApplicable {
		return nil, NotApplicable, false
	}
	return best, bestRank, true
}

// Base returns the undecorated schemas of the selected provider.
func (s *Service) Base(ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, bool) {
	schemas, _, outcome := s.base(ui, schema)
	return schemas, outcome == OutcomeResolved
}

func (s *Service) base(ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, string, Outcome) {
	provider, rank, ok := s.Provider(ui)
	if !ok {
		return Schemas{}, "", OutcomeNotApplicable
	}
	name := ProviderName(provider)
	s.logger.Debug().
		Str("provider", name).
		Int("rank", rank).
		Str("ui_type", elementType(ui)).
		Msg("properties: provider selected")

	schemas, ok := provider.PropertiesSchemas(ui, schema)
	if !ok || schemas.Schema == nil {
		return Schemas{}, name, OutcomeNoSchema
	}
	return schemas, name, OutcomeResolved
}

// Resolve returns the schemas for ui decorated by the chain configured for
// kind. The chain is skipped entirely when no base schemas are available.
func (s *Service) Resolve(kind Kind, ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, bool) {
	if s == nil {
		return Schemas{}, false
	}
	chain, ok := s.chains[kind]
	if !ok {
		s.logger.Warn().Str("kind", string(kind)).Msg("properties: unknown kind")
		s.observe(kind, "", OutcomeUnknownKind)
		return Schemas{}, false
	}

	base, provider, outcome := s.base(ui, schema)
	if outcome != OutcomeResolved {
		s.logger.Debug().
			Str("kind", string(kind)).
			Str("ui_type", elementType(ui)).
			Str("outcome", string(outcome)).
			Msg("properties: nothing to show")
		s.observe(kind, provider, outcome)
		return Schemas{}, false
	}

	decorated := chain.Apply(base, ui, schema)
	s.observe(kind, provider, OutcomeResolved)
	return decorated, true
}

// GetDesignProperties resolves the design properties of ui.
func (s *Service) GetDesignProperties(ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, bool) {
	return s.Resolve(KindDesignProperties, ui, schema)
}

// GetVariableSettings resolves the variable settings of ui.
func (s *Service) GetVariableSettings(ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, bool) {
	return s.Resolve(KindVariableSettings, ui, schema)
}

// GetRequiredSettings resolves the required settings of ui.
func (s *Service) GetRequiredSettings(ui *editor.UIElement, schema *editor.SchemaElement) (Schemas, bool) {
	return s.Resolve(KindRequiredSettings, ui, schema)
}

func (s *Service) observe(kind Kind, provider string, outcome Outcome) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveResolution(kind, provider, outcome)
}

func elementType(ui *editor.UIElement) string {
	if ui == nil {
		return ""
	}
	return ui.Type
}
