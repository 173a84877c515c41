package catalog

import (
	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
)

// Catalog holds the provider entries read from catalog files. It is immutable
// after LoadFS returns.
type Catalog struct {
	entries []Entry
}

// Empty reports whether the catalog holds any entries.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.entries) == 0
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns the entries in load order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return append([]Entry(nil), c.entries...)
}

// Providers turns every entry into a properties.Provider, preserving load
// order (files sorted by path, entries in file order).
func (c *Catalog) Providers() []properties.Provider {
	if c == nil {
		return nil
	}
	out := make([]properties.Provider, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, newEntryProvider(entry))
	}
	return out
}

type entryProvider struct {
	name   string
	tester properties.Tester
	base   properties.Schemas
}

func newEntryProvider(entry Entry) *entryProvider {
	return &entryProvider{
		name:   entry.Name,
		tester: properties.RankWith(entry.Rank, matchPredicate(entry.Match)),
		base: properties.Schemas{
			Schema:   entry.Schema,
			UISchema: entry.UISchema,
		},
	}
}

func (p *entryProvider) Name() string {
	return p.name
}

func (p *entryProvider) Rank(ui *editor.UIElement) int {
	return p.tester(ui)
}

func (p *entryProvider) PropertiesSchemas(*editor.UIElement, *editor.SchemaElement) (properties.Schemas, bool) {
	return p.base.Clone(), true
}

func matchPredicate(match Match) properties.Predicate {
	var predicates []properties.Predicate
	if match.UIType != "" {
		predicates = append(predicates, properties.UITypeIs(match.UIType))
	}
	if match.SchemaType != "" {
		predicates = append(predicates, properties.SchemaTypeIs(match.SchemaType))
	}
	if match.SchemaFormat != "" {
		predicates = append(predicates, properties.SchemaFormatIs(match.SchemaFormat))
	}
	if match.ScopeSuffix != "" {
		predicates = append(predicates, properties.ScopeEndsWith(match.ScopeSuffix))
	}
	return properties.And(predicates...)
}
