package openapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscaffold"
	pkgopenapi "github.com/goliatone/go-formscaffold/pkg/openapi"
	"github.com/goliatone/go-formscaffold/pkg/record"
	"github.com/goliatone/go-formscaffold/pkg/testsupport"
)

func wantProduct() record.Model {
	return record.Model{
		Name: "Product",
		Fields: []record.DBField{
			{Name: "sku", Spec: "Varchar(32)"},
			{Name: "name", Spec: "Varchar(255)"},
			{Name: "price", Spec: "Decimal"},
			{Name: "stock", Spec: "BigInt"},
			{Name: "releasedOn", Spec: "Date"},
		},
		HasMany:  []record.RelationDef{{Name: "variants", Target: "Variant"}},
		ManyMany: []record.RelationDef{{Name: "categories", Target: "Category"}},
		Labels:   map[string]string{"name": "Product name"},
	}
}

func TestParserModelsFromFixture(t *testing.T) {
	doc := testsupport.LoadDocument(t, filepath.Join("testdata", "shop.yaml"))

	models, err := formscaffold.NewModelParser().Models(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	if diff := cmp.Diff(wantProduct(), models["Product"]); diff != "" {
		t.Fatalf("Product mismatch (-want +got):\n%s", diff)
	}
	if got := len(models); got != 3 {
		t.Fatalf("expected 3 models, got %d", got)
	}
}

func TestLoaderParserIntegration(t *testing.T) {
	ctx := context.Background()

	data, err := os.ReadFile(filepath.Join("testdata", "shop.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(data)
	}))
	defer server.Close()

	src, err := pkgopenapi.SourceFromURL(server.URL + "/shop.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}

	loader := formscaffold.NewModelLoader(pkgopenapi.WithHTTPFallback(0))
	catalog, err := formscaffold.LoadCatalog(ctx, src, loader, formscaffold.NewModelParser())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	if diff := cmp.Diff([]string{"Category", "Product", "Variant"}, catalog.Types()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}
	product, ok := catalog.Model("Product")
	if !ok {
		t.Fatalf("expected Product model")
	}
	if diff := cmp.Diff(wantProduct(), product); diff != "" {
		t.Fatalf("Product mismatch (-want +got):\n%s", diff)
	}
}
