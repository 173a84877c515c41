package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPattern matches every JSON or YAML file in the catalog filesystem.
const DefaultPattern = "**/*.{json,yaml,yml}"

// DefaultVersionConstraint accepts catalog files of format version 1.x.
const DefaultVersionConstraint = "^1"

// ErrIncompatibleVersion reports a catalog file whose version falls outside
// the accepted constraint.
var ErrIncompatibleVersion = errors.New("catalog: incompatible version")

// Option customises LoadFS.
type Option func(*loadConfig)

type loadConfig struct {
	pattern    string
	constraint string
	sanitize   Sanitizer
}

// WithPattern overrides the doublestar pattern used to discover files.
func WithPattern(pattern string) Option {
	return func(cfg *loadConfig) {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			cfg.pattern = trimmed
		}
	}
}

// WithVersionConstraint overrides the semver constraint catalog files must
// satisfy.
func WithVersionConstraint(constraint string) Option {
	return func(cfg *loadConfig) {
		if trimmed := strings.TrimSpace(constraint); trimmed != "" {
			cfg.constraint = trimmed
		}
	}
}

// WithSanitizer replaces the function used to clean text keywords. Pass nil
// to keep catalog text untouched.
func WithSanitizer(fn Sanitizer) Option {
	return func(cfg *loadConfig) {
		cfg.sanitize = fn
	}
}

// LoadFS discovers catalog files in fsys and parses them into a Catalog.
// Provider names must be unique across files. When fsys is nil the returned
// catalog is empty.
func LoadFS(ctx context.Context, fsys fs.FS, options ...Option) (*Catalog, error) {
	if ctx == nil {
		return nil, errors.New("catalog: context is required")
	}
	cfg := loadConfig{
		pattern:    DefaultPattern,
		constraint: DefaultVersionConstraint,
		sanitize:   StrictText,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	cat := &Catalog{}
	if fsys == nil {
		return cat, nil
	}

	constraint, err := semver.NewConstraint(cfg.constraint)
	if err != nil {
		return nil, fmt.Errorf("catalog: version constraint %q: %w", cfg.constraint, err)
	}

	paths, err := doublestar.Glob(fsys, cfg.pattern)
	if err != nil {
		return nil, fmt.Errorf("catalog: glob %q: %w", cfg.pattern, err)
	}
	sort.Strings(paths)

	seen := make(map[string]string)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return nil, err
		}
		if err := checkVersion(doc.Version, constraint, path); err != nil {
			return nil, err
		}
		if err := validateDocument(doc, path); err != nil {
			return nil, err
		}

		for _, entry := range doc.Providers {
			entry.Source = path
			if previous, exists := seen[entry.Name]; exists {
				return nil, fmt.Errorf("catalog: duplicate provider %q (files %s, %s)", entry.Name, previous, path)
			}
			seen[entry.Name] = path

			if err := validateSchema(ctx, entry); err != nil {
				return nil, err
			}
			cat.entries = append(cat.entries, normaliseEntry(entry, cfg.sanitize))
		}
	}
	return cat, nil
}

func parseDocument(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = Document{}
	err := yaml.Unmarshal(data, &doc)
	if err == nil {
		return doc, nil
	}
	return Document{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML: %w", source, err)
}

func checkVersion(raw string, constraint *semver.Constraints, source string) error {
	version, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("catalog: file %s: version %q: %w", source, raw, err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: file %s declares %s", ErrIncompatibleVersion, source, version)
	}
	return nil
}

func normaliseEntry(entry Entry, clean Sanitizer) Entry {
	out := entry
	out.Name = strings.TrimSpace(entry.Name)
	if clean != nil {
		out.Schema, _ = sanitizeTree(entry.Schema, clean).(map[string]any)
		if entry.UISchema != nil {
			out.UISchema, _ = sanitizeTree(entry.UISchema, clean).(map[string]any)
		}
	}
	return out
}
