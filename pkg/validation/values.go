package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-formprops/pkg/properties"
)

const schemaURL = "mem://formprops/properties.json"

// Issue describes one property value that failed validation.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Keyword string `json:"keyword,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of validating property values.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// ValidateValues checks values entered in a properties panel against the
// resolved property schema. A pair without a schema accepts any values.
func ValidateValues(schemas properties.Schemas, values any) Result {
	result := Result{Valid: true}
	if schemas.Schema == nil {
		return result
	}

	compiled, err := compile(schemas.Schema)
	if err != nil {
		result.Valid = false
		result.Issues = []Issue{issueFromError(err)}
		return result
	}

	instance, err := normalise(values)
	if err != nil {
		result.Valid = false
		result.Issues = []Issue{issueFromError(err)}
		return result
	}

	if err := compiled.Validate(instance); err != nil {
		result.Valid = false
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			result.Issues = leafIssues(verr)
		} else {
			result.Issues = []Issue{issueFromError(err)}
		}
	}
	return result
}

// Error joins the issues into a single error, or returns nil when valid.
func (r Result) Error() error {
	if r.Valid {
		return nil
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Field != "" {
			parts = append(parts, issue.Field+": "+issue.Message)
			continue
		}
		parts = append(parts, issue.Message)
	}
	return fmt.Errorf("validation: %s", strings.Join(parts, "; "))
}

func compile(schema map[string]any) (*jsonschema.Schema, error) {
	payload, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("validation: marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("validation: load schema: %w", err)
	}
	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("validation: compile schema: %w", err)
	}
	return compiled, nil
}

// normalise round-trips values through JSON so Go structs and typed maps
// become the generic shapes the validator understands.
func normalise(values any) (any, error) {
	payload, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("validation: marshal values: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, fmt.Errorf("validation: decode values: %w", err)
	}
	return out, nil
}

func leafIssues(root *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Path:    node.InstanceLocation,
				Field:   fieldPathFromPointer(node.InstanceLocation),
				Keyword: keywordFromLocation(node.KeywordLocation),
				Message: strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(root)

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Path != issues[j].Path {
			return issues[i].Path < issues[j].Path
		}
		return issues[i].Message < issues[j].Message
	})
	return issues
}

func issueFromError(err error) Issue {
	if err == nil {
		return Issue{Message: "unknown error"}
	}
	msg := strings.TrimSpace(err.Error())
	msg = strings.TrimPrefix(msg, "validation: ")
	return Issue{Message: msg}
}

func keywordFromLocation(location string) string {
	if idx := strings.LastIndex(location, "/"); idx >= 0 {
		return location[idx+1:]
	}
	return location
}

// fieldPathFromPointer turns an instance pointer such as /options/0/name into
// the dotted field path options.0.name.
func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimSpace(pointer)
	trimmed = strings.TrimPrefix(trimmed, "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return ""
	}

	parts := strings.Split(trimmed, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.ReplaceAll(part, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		if segment == "" {
			continue
		}
		out = append(out, segment)
	}
	return strings.Join(out, ".")
}
