package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formprops/pkg/catalog"
	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
)

const colourYAML = `
version: 1.2.0
providers:
  - name: colour-control
    rank: 4
    match:
      uiType: Control
      schemaType: string
      scopeSuffix: /colour
    schema:
      type: object
      title: "<b>Colour</b> settings"
      properties:
        palette:
          type: string
          description: "<script>alert(1)</script>Palette name"
`

const sliderJSON = `{
  "version": "1.0.0",
  "providers": [
    {
      "name": "slider-control",
      "rank": 2,
      "match": {"uiType": "Control", "schemaType": "number"},
      "schema": {"type": "object", "properties": {"step": {"type": "number"}}},
      "uiSchema": {"type": "VerticalLayout", "elements": [{"type": "Control", "scope": "#/properties/step"}]}
    }
  ]
}`

func stringControl(scope string) *editor.UIElement {
	ui := editor.NewUIElement(editor.TypeControl)
	ui.Scope = scope
	editor.Link(ui, editor.NewSchemaElement("colour", editor.SchemaTypeString))
	return ui
}

func TestLoadFS_ParsesYAMLAndJSONInPathOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"b/slider.json":  {Data: []byte(sliderJSON)},
		"a/colour.yaml":  {Data: []byte(colourYAML)},
		"ignored/readme": {Data: []byte("not a catalog")},
	}

	cat, err := catalog.LoadFS(context.Background(), fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}

	var names, sources []string
	for _, entry := range cat.Entries() {
		names = append(names, entry.Name)
		sources = append(sources, entry.Source)
	}
	if diff := cmp.Diff([]string{"colour-control", "slider-control"}, names); diff != "" {
		t.Fatalf("entry names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a/colour.yaml", "b/slider.json"}, sources); diff != "" {
		t.Fatalf("entry sources mismatch (-want +got):\n%s", diff)
	}
	if cat.Len() != 2 || cat.Empty() {
		t.Fatalf("expected two entries, got %d", cat.Len())
	}
}

func TestLoadFS_SanitisesTextKeywords(t *testing.T) {
	fsys := fstest.MapFS{"colour.yaml": {Data: []byte(colourYAML)}}

	cat, err := catalog.LoadFS(context.Background(), fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	schema := cat.Entries()[0].Schema
	if got := schema["title"]; got != "Colour settings" {
		t.Fatalf("expected sanitised title, got %q", got)
	}
	palette := schema["properties"].(map[string]any)["palette"].(map[string]any)
	if got := palette["description"]; got != "Palette name" {
		t.Fatalf("expected sanitised description, got %q", got)
	}
	if got := palette["type"]; got != "string" {
		t.Fatalf("non-text keywords must be kept, got %v", got)
	}
}

func TestLoadFS_SanitisedTextKeepsPunctuation(t *testing.T) {
	fsys := fstest.MapFS{"size.yaml": {Data: []byte(`
version: 1.0.0
providers:
  - name: size-control
    rank: 2
    match: {uiType: Control}
    schema:
      type: object
      title: "<em>Width</em> & height"
      description: "Don't use \"px\""
`)}}

	cat, err := catalog.LoadFS(context.Background(), fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	schema := cat.Entries()[0].Schema
	got := map[string]any{"title": schema["title"], "description": schema["description"]}
	want := map[string]any{"title": "Width & height", "description": `Don't use "px"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitised text mismatch (-want +got):\n%s", diff)
	}
	if got := catalog.StrictText("  a &lt; b  "); got != "a < b" {
		t.Fatalf("StrictText decoded entities = %q", got)
	}
}

func TestLoadFS_NilSanitizerKeepsText(t *testing.T) {
	fsys := fstest.MapFS{"colour.yaml": {Data: []byte(colourYAML)}}

	cat, err := catalog.LoadFS(context.Background(), fsys, catalog.WithSanitizer(nil))
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if got := cat.Entries()[0].Schema["title"]; got != "<b>Colour</b> settings" {
		t.Fatalf("expected raw title, got %q", got)
	}
}

func TestLoadFS_RejectsIncompatibleVersion(t *testing.T) {
	fsys := fstest.MapFS{"future.yaml": {Data: []byte(strings.Replace(colourYAML, "1.2.0", "2.0.0", 1))}}

	_, err := catalog.LoadFS(context.Background(), fsys)
	if !errors.Is(err, catalog.ErrIncompatibleVersion) {
		t.Fatalf("expected ErrIncompatibleVersion, got %v", err)
	}

	if _, err := catalog.LoadFS(context.Background(), fsys, catalog.WithVersionConstraint(">=1, <3")); err != nil {
		t.Fatalf("custom constraint should accept 2.0.0: %v", err)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
	}{
		{
			name: "duplicate names across files",
			files: fstest.MapFS{
				"one.yaml": {Data: []byte(colourYAML)},
				"two.yaml": {Data: []byte(colourYAML)},
			},
			wantErr: `duplicate provider "colour-control"`,
		},
		{
			name:    "empty file",
			files:   fstest.MapFS{"empty.yaml": {Data: []byte("  \n")}},
			wantErr: "is empty",
		},
		{
			name: "rank type mismatch",
			files: fstest.MapFS{"typed.yaml": {Data: []byte(`version: 1.0.0
providers:
  - name: typed
    rank: two
    match: {uiType: Control}
    schema: {type: object}
`)}},
			wantErr: "line 4: cannot unmarshal !!str `two`",
		},
		{
			name:    "missing version",
			files:   fstest.MapFS{"noversion.json": {Data: []byte(`{"providers": []}`)}},
			wantErr: "version",
		},
		{
			name: "invalid provider name",
			files: fstest.MapFS{"bad.json": {Data: []byte(`{"version":"1.0.0","providers":[
				{"name":"Bad Name","rank":1,"match":{"uiType":"Control"},"schema":{"type":"object"}}]}`)}},
			wantErr: "provider_name",
		},
		{
			name: "missing match",
			files: fstest.MapFS{"nomatch.json": {Data: []byte(`{"version":"1.0.0","providers":[
				{"name":"nomatch","rank":1,"schema":{"type":"object"}}]}`)}},
			wantErr: "required_without",
		},
		{
			name: "negative rank",
			files: fstest.MapFS{"rank.json": {Data: []byte(`{"version":"1.0.0","providers":[
				{"name":"neg","rank":-1,"match":{"uiType":"Control"},"schema":{"type":"object"}}]}`)}},
			wantErr: "gte",
		},
		{
			name: "invalid schema",
			files: fstest.MapFS{"schema.json": {Data: []byte(`{"version":"1.0.0","providers":[
				{"name":"broken","rank":1,"match":{"uiType":"Control"},"schema":{"type":"not-a-type"}}]}`)}},
			wantErr: "invalid schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.LoadFS(context.Background(), tt.files)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFS_NilFSIsEmpty(t *testing.T) {
	cat, err := catalog.LoadFS(context.Background(), nil)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if !cat.Empty() || len(cat.Providers()) != 0 {
		t.Fatalf("expected empty catalog")
	}
}

func TestLoadFS_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := catalog.LoadFS(ctx, fstest.MapFS{"colour.yaml": {Data: []byte(colourYAML)}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestProviders_MatchOnEveryCondition(t *testing.T) {
	cat, err := catalog.LoadFS(context.Background(), fstest.MapFS{"colour.yaml": {Data: []byte(colourYAML)}})
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	provider := cat.Providers()[0]

	tests := []struct {
		name string
		ui   *editor.UIElement
		want int
	}{
		{name: "all conditions", ui: stringControl("#/properties/colour"), want: 4},
		{name: "scope mismatch", ui: stringControl("#/properties/name"), want: properties.NotApplicable},
		{name: "unlinked", ui: &editor.UIElement{Type: editor.TypeControl, Scope: "#/properties/colour"}, want: properties.NotApplicable},
		{name: "layout", ui: editor.NewUIElement(editor.TypeVerticalLayout), want: properties.NotApplicable},
		{name: "nil", ui: nil, want: properties.NotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := provider.Rank(tt.ui); got != tt.want {
				t.Fatalf("Rank = %d, want %d", got, tt.want)
			}
		})
	}
	if got := properties.ProviderName(provider); got != "colour-control" {
		t.Fatalf("unexpected provider name %q", got)
	}
}

func TestProviders_ReturnFreshCopies(t *testing.T) {
	cat, err := catalog.LoadFS(context.Background(), fstest.MapFS{"slider.json": {Data: []byte(sliderJSON)}})
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	provider := cat.Providers()[0]

	first, ok := provider.PropertiesSchemas(nil, nil)
	if !ok || !first.HasUISchema() {
		t.Fatalf("expected schema pair with uiSchema, got %#v", first)
	}
	first.Schema["type"] = "mutated"
	first.UISchema["type"] = "mutated"

	second, _ := provider.PropertiesSchemas(nil, nil)
	if second.Schema["type"] != "object" || second.UISchema["type"] != "VerticalLayout" {
		t.Fatalf("provider returned shared state: %#v", second)
	}
}

func TestEmbeddedFS_LoadsBundledProviders(t *testing.T) {
	cat, err := catalog.LoadFS(context.Background(), catalog.EmbeddedFS())
	if err != nil {
		t.Fatalf("LoadFS(EmbeddedFS): %v", err)
	}

	var names []string
	for _, entry := range cat.Entries() {
		names = append(names, entry.Name)
	}
	want := []string{"date-control", "boolean-control", "integer-control", "number-control"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("bundled providers mismatch (-want +got):\n%s", diff)
	}

	date := editor.NewUIElement(editor.TypeControl)
	date.Scope = "#/properties/birthday"
	dateSchema := editor.NewSchemaElement("birthday", editor.SchemaTypeString)
	dateSchema.Format = "date"
	editor.Link(date, dateSchema)

	svc := properties.New(properties.WithProviders(cat.Providers()...))
	provider, rank, ok := svc.Provider(date)
	if !ok || rank != 3 || properties.ProviderName(provider) != "date-control" {
		t.Fatalf("expected date-control at rank 3, got %q rank %d ok %v", properties.ProviderName(provider), rank, ok)
	}
}
