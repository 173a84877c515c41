package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formprops/pkg/properties"
)

func controlSchemas() properties.Schemas {
	return properties.Schemas{
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"label"},
			"properties": map[string]any{
				"label": map[string]any{"type": "string"},
				"options": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"multi": map[string]any{"type": "boolean"},
						"step":  map[string]any{"type": "integer", "minimum": 1},
					},
				},
			},
		},
	}
}

func TestValidateValues_Valid(t *testing.T) {
	values := map[string]any{
		"label":   "Name",
		"options": map[string]any{"multi": true, "step": 2},
	}
	result := ValidateValues(controlSchemas(), values)
	if !result.Valid {
		t.Fatalf("expected values to be valid: %#v", result.Issues)
	}
	if err := result.Error(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidateValues_ReportsLeafIssues(t *testing.T) {
	values := map[string]any{
		"options": map[string]any{"multi": "yes", "step": 0},
	}
	result := ValidateValues(controlSchemas(), values)
	if result.Valid {
		t.Fatalf("expected values to be invalid")
	}

	type summary struct {
		Path    string
		Field   string
		Keyword string
	}
	got := make([]summary, 0, len(result.Issues))
	for _, issue := range result.Issues {
		got = append(got, summary{issue.Path, issue.Field, issue.Keyword})
		if issue.Message == "" {
			t.Fatalf("issue without message: %#v", issue)
		}
	}
	want := []summary{
		{Path: "", Field: "", Keyword: "required"},
		{Path: "/options/multi", Field: "options.multi", Keyword: "type"},
		{Path: "/options/step", Field: "options.step", Keyword: "minimum"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if err := result.Error(); err == nil || !strings.Contains(err.Error(), "options.multi") {
		t.Fatalf("expected joined error naming options.multi, got %v", err)
	}
}

func TestValidateValues_AcceptsStructs(t *testing.T) {
	type options struct {
		Multi bool `json:"multi"`
	}
	values := struct {
		Label   string  `json:"label"`
		Options options `json:"options"`
	}{Label: "Name", Options: options{Multi: true}}

	if result := ValidateValues(controlSchemas(), values); !result.Valid {
		t.Fatalf("expected struct values to be valid: %#v", result.Issues)
	}
}

func TestValidateValues_NoSchemaAcceptsAnything(t *testing.T) {
	if result := ValidateValues(properties.Schemas{}, map[string]any{"x": 1}); !result.Valid {
		t.Fatalf("expected absent schema to accept values")
	}
}

func TestValidateValues_InvalidSchema(t *testing.T) {
	schemas := properties.Schemas{Schema: map[string]any{"type": 12}}
	result := ValidateValues(schemas, map[string]any{})
	if result.Valid || len(result.Issues) != 1 {
		t.Fatalf("expected one compile issue, got %#v", result)
	}
	if !strings.Contains(result.Issues[0].Message, "compile schema") {
		t.Fatalf("expected compile issue, got %q", result.Issues[0].Message)
	}
}

func TestFieldPathFromPointer(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"/":               "",
		"/label":          "label",
		"#/options/multi": "options.multi",
		"/items/0/name":   "items.0.name",
		"/a~1b/c~0d":      "a/b.c~d",
	}
	for pointer, want := range tests {
		if got := fieldPathFromPointer(pointer); got != want {
			t.Fatalf("fieldPathFromPointer(%q) = %q, want %q", pointer, got, want)
		}
	}
}
