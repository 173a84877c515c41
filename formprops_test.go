package formprops_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	formprops "github.com/goliatone/go-formprops"
	"github.com/goliatone/go-formprops/pkg/catalog"
	"github.com/goliatone/go-formprops/pkg/editor"
	"github.com/goliatone/go-formprops/pkg/properties"
	"github.com/goliatone/go-formprops/pkg/testsupport"
	"github.com/goliatone/go-formprops/pkg/validation"
	"github.com/goliatone/go-formprops/pkg/widgets"
)

func loadTree(t *testing.T) (*editor.UIElement, *editor.SchemaElement) {
	t.Helper()
	return testsupport.MustLoadLinkedTree(t, "testdata/person.ui.json", "testdata/person.schema.yaml")
}

func selectedProvider(t *testing.T, svc *formprops.Service, ui *editor.UIElement) string {
	t.Helper()
	provider, _, ok := svc.Provider(ui)
	if !ok {
		return ""
	}
	return properties.ProviderName(provider)
}

func TestNewDefaultService_SelectsProvidersAcrossSources(t *testing.T) {
	svc, err := formprops.NewDefaultService(context.Background())
	if err != nil {
		t.Fatalf("NewDefaultService: %v", err)
	}
	root, _ := loadTree(t)

	got := []string{selectedProvider(t, svc, root)}
	for _, child := range root.Elements {
		got = append(got, selectedProvider(t, svc, child))
	}
	want := []string{"layout", "control", "date-control", "array", "category", "control"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selected providers mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDefaultService_ResolvesAllKinds(t *testing.T) {
	svc, err := formprops.NewDefaultService(context.Background())
	if err != nil {
		t.Fatalf("NewDefaultService: %v", err)
	}
	root, _ := loadTree(t)
	name := root.Elements[0]

	design, ok := svc.GetDesignProperties(name, name.Linked)
	if !ok {
		t.Fatalf("expected design properties for name control")
	}
	label := design.Schema["properties"].(map[string]any)["label"].(map[string]any)
	if label["default"] != "Full name" {
		t.Fatalf("expected label default from schema title, got %#v", label)
	}

	required, ok := svc.GetRequiredSettings(name, name.Linked)
	if !ok || !required.HasUISchema() {
		t.Fatalf("expected required settings with uiSchema, got %#v", required)
	}
	flag := required.Schema["properties"].(map[string]any)["required"].(map[string]any)
	if flag["default"] != true {
		t.Fatalf("expected name to default to required, got %#v", flag)
	}

	variable, ok := svc.GetVariableSettings(name, name.Linked)
	if !ok {
		t.Fatalf("expected variable settings for name control")
	}
	variableProp := variable.Schema["properties"].(map[string]any)["variable"].(map[string]any)
	if variableProp["default"] != "name" {
		t.Fatalf("expected variable default name, got %#v", variableProp)
	}
}

func TestNewDefaultService_GoldenSchemas(t *testing.T) {
	svc, err := formprops.NewDefaultService(context.Background())
	if err != nil {
		t.Fatalf("NewDefaultService: %v", err)
	}
	root, _ := loadTree(t)
	name := testsupport.MustFindByScope(t, root, "#/properties/name")
	notes := root.Elements[3]

	tests := []struct {
		golden string
		kind   formprops.Kind
		ui     *editor.UIElement
	}{
		{golden: "design_name", kind: formprops.KindDesignProperties, ui: name},
		{golden: "variable_name", kind: formprops.KindVariableSettings, ui: name},
		{golden: "required_name", kind: formprops.KindRequiredSettings, ui: name},
		{golden: "design_notes", kind: formprops.KindDesignProperties, ui: notes},
	}
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			got, ok := svc.Resolve(tt.kind, tt.ui, tt.ui.Linked)
			if !ok {
				t.Fatalf("expected %s to resolve", tt.kind)
			}
			testsupport.AssertGoldenJSON(t, testsupport.GoldenPath(tt.golden), got)
		})
	}
}

func TestNewDefaultService_DesignOffersWidgets(t *testing.T) {
	svc, err := formprops.NewDefaultService(context.Background())
	if err != nil {
		t.Fatalf("NewDefaultService: %v", err)
	}
	root, _ := loadTree(t)
	size := testsupport.MustFindByScope(t, root, "#/properties/size")

	design, ok := svc.GetDesignProperties(size, size.Linked)
	if !ok {
		t.Fatalf("expected design properties for size control")
	}
	options := design.Schema["properties"].(map[string]any)["options"].(map[string]any)
	widget := options["properties"].(map[string]any)[widgets.OptionKey].(map[string]any)
	if widget["default"] != widgets.WidgetSelect {
		t.Fatalf("expected select widget default, got %#v", widget)
	}
}

func TestNewDefaultService_ResolvedSchemaValidatesValues(t *testing.T) {
	svc, err := formprops.NewDefaultService(context.Background())
	if err != nil {
		t.Fatalf("NewDefaultService: %v", err)
	}
	root, _ := loadTree(t)
	name := root.Elements[0]

	variable, ok := svc.GetVariableSettings(name, name.Linked)
	if !ok {
		t.Fatalf("expected variable settings")
	}

	if result := validation.ValidateValues(variable, map[string]any{"variable": "full_name"}); !result.Valid {
		t.Fatalf("expected identifier to be valid: %#v", result.Issues)
	}
	result := validation.ValidateValues(variable, map[string]any{"variable": "9 lives"})
	if result.Valid || len(result.Issues) == 0 || result.Issues[0].Field != "variable" {
		t.Fatalf("expected variable pattern issue, got %#v", result)
	}
}

func TestNewDefaultService_CatalogOptions(t *testing.T) {
	root, _ := loadTree(t)
	birthday := root.Elements[1]

	svc, err := formprops.NewDefaultService(context.Background(), formprops.WithCatalogFS(nil))
	if err != nil {
		t.Fatalf("NewDefaultService: %v", err)
	}
	if got := selectedProvider(t, svc, birthday); got != "control" {
		t.Fatalf("without catalog expected control, got %q", got)
	}

	broken := fstest.MapFS{"bad.yaml": {Data: []byte("version: 9.0.0\nproviders: []\n")}}
	_, err = formprops.NewDefaultService(context.Background(), formprops.WithCatalogFS(broken))
	if err == nil || !strings.Contains(err.Error(), "formprops: load catalog") {
		t.Fatalf("expected wrapped catalog error, got %v", err)
	}

	_, err = formprops.NewDefaultService(context.Background(),
		formprops.WithCatalogFS(broken, catalog.WithVersionConstraint(">=9")))
	if err != nil {
		t.Fatalf("custom constraint should accept catalog: %v", err)
	}
}

func TestNewDefaultService_ExtraProvidersAndChains(t *testing.T) {
	custom := properties.NewProvider("rich-text",
		properties.RankWith(10, properties.ScopeEndsWith("/name")),
		func(*editor.UIElement, *editor.SchemaElement) (properties.Schemas, bool) {
			return properties.Schemas{Schema: map[string]any{"type": "object", "properties": map[string]any{}}}, true
		},
	)
	svc, err := formprops.NewDefaultService(context.Background(),
		formprops.WithServiceOptions(
			properties.WithProviders(custom),
			properties.WithDecorators("i18n-settings", func(s properties.Schemas, _ *editor.UIElement, _ *editor.SchemaElement) properties.Schemas {
				out := s.Clone()
				out.Schema["title"] = "Translations"
				return out
			}),
		),
	)
	if err != nil {
		t.Fatalf("NewDefaultService: %v", err)
	}
	root, _ := loadTree(t)
	if got := selectedProvider(t, svc, root.Elements[0]); got != "rich-text" {
		t.Fatalf("expected higher ranked custom provider, got %q", got)
	}
	out, ok := svc.Resolve("i18n-settings", root.Elements[1], nil)
	if !ok || out.Schema["title"] != "Translations" {
		t.Fatalf("expected custom kind to resolve, got %#v ok=%v", out, ok)
	}
}

func TestNewService_IsBare(t *testing.T) {
	svc := formprops.NewService()
	if _, ok := svc.Resolve(formprops.KindDesignProperties, editor.NewUIElement(editor.TypeControl), nil); ok {
		t.Fatalf("expected bare service to resolve nothing")
	}
}
