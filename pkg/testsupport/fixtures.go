package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formprops/pkg/editor"
)

// MustLoadUIElement reads a UI element tree fixture (JSON or YAML).
func MustLoadUIElement(t *testing.T, path string) *editor.UIElement {
	t.Helper()

	el, err := LoadUIElement(path)
	if err != nil {
		t.Fatalf("load ui element: %v", err)
	}
	return el
}

// LoadUIElement returns a UI element tree without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadUIElement(path string) (*editor.UIElement, error) {
	if path == "" {
		return nil, errors.New("testsupport: ui element path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read ui element: %w", err)
	}
	el, err := editor.LoadUIElement(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: %w", err)
	}
	return el, nil
}

// MustLoadSchemaElement reads a data schema fixture (JSON or YAML).
func MustLoadSchemaElement(t *testing.T, path string) *editor.SchemaElement {
	t.Helper()

	schema, err := LoadSchemaElement(path)
	if err != nil {
		t.Fatalf("load schema element: %v", err)
	}
	return schema
}

// LoadSchemaElement returns a schema element tree without requiring
// testing.T.
func LoadSchemaElement(path string) (*editor.SchemaElement, error) {
	if path == "" {
		return nil, errors.New("testsupport: schema path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read schema: %w", err)
	}
	schema, err := editor.LoadSchemaElement(Context(), data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: %w", err)
	}
	return schema, nil
}

// MustLoadLinkedTree loads a UI tree and the data schema it binds to, then
// links every scoped element to its schema element.
func MustLoadLinkedTree(t *testing.T, uiPath, schemaPath string) (*editor.UIElement, *editor.SchemaElement) {
	t.Helper()

	root := MustLoadUIElement(t, uiPath)
	schema := MustLoadSchemaElement(t, schemaPath)
	editor.LinkTree(root, schema)
	return root, schema
}

// MustFindByScope returns the element bound to scope or fails the test.
func MustFindByScope(t *testing.T, root *editor.UIElement, scope string) *editor.UIElement {
	t.Helper()

	el, ok := editor.FindByScope(root, scope)
	if !ok {
		t.Fatalf("no element bound to %q", scope)
	}
	return el
}

// UpdateGoldensEnv names the environment variable that rewrites golden files
// instead of only comparing against them.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

// GoldenPath returns the path of the named golden file under testdata/golden.
func GoldenPath(name string) string {
	return filepath.Join("testdata", "golden", name+".json")
}

// AssertGoldenJSON encodes got as JSON and compares it with the golden file at
// path as generic values, so key order and number formatting do not matter.
func AssertGoldenJSON(t *testing.T, path string, got any) {
	t.Helper()

	payload, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if os.Getenv(UpdateGoldensEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir golden dir: %v", err)
		}
		if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v (set %s=1 to create it)", err, UpdateGoldensEnv)
	}
	var want, actual any
	if err := json.Unmarshal(raw, &want); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	if err := json.Unmarshal(payload, &actual); err != nil {
		t.Fatalf("decode %s output: %v", path, err)
	}
	if diff := cmp.Diff(want, actual); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
