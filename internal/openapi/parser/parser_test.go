package parser

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscaffold/pkg/form"
	pkgopenapi "github.com/goliatone/go-formscaffold/pkg/openapi"
	"github.com/goliatone/go-formscaffold/pkg/record"
)

const articleDocument = `
openapi: 3.0.0
info:
  title: Blog
  version: 1.0.0
paths: {}
components:
  schemas:
    Article:
      type: object
      properties:
        title:
          type: string
          maxLength: 120
          x-formscaffold-label: Headline
        status:
          type: string
          enum: [draft, published]
        published:
          type: boolean
        views:
          type: integer
        rating:
          type: number
        publishedAt:
          type: string
          format: date-time
        author:
          $ref: '#/components/schemas/Author'
        comments:
          type: array
          items:
            $ref: '#/components/schemas/Comment'
        tags:
          type: array
          x-relationships:
            type: many-to-many
            target: Tag
          items:
            type: string
        keywords:
          type: array
          items:
            type: string
    Author:
      type: object
      properties:
        name:
          type: string
          title: Full name
    Comment:
      type: object
      properties:
        body:
          type: string
          x-formscaffold:
            label: Comment text
    Status:
      type: string
`

func parseModels(t *testing.T, raw string, opts ...pkgopenapi.ParserOption) map[string]record.Model {
	t.Helper()
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("blog.yaml"), []byte(raw))
	models, err := New(pkgopenapi.NewParserOptions(opts...)).Models(context.Background(), doc)
	if err != nil {
		t.Fatalf("Models: %v", err)
	}
	return models
}

func TestModelsKeepsDeclaredPropertyOrder(t *testing.T) {
	models := parseModels(t, articleDocument)

	article, ok := models["Article"]
	if !ok {
		t.Fatalf("expected Article model, got %v", models)
	}

	want := record.Model{
		Name: "Article",
		Fields: []record.DBField{
			{Name: "title", Spec: "Varchar(120)"},
			{Name: "status", Spec: "Enum('draft','published')"},
			{Name: "published", Spec: "Boolean"},
			{Name: "views", Spec: "Int"},
			{Name: "rating", Spec: "Decimal"},
			{Name: "publishedAt", Spec: "Datetime"},
			{Name: "keywords", Spec: "Text"},
		},
		HasMany:  []record.RelationDef{{Name: "comments", Target: "Comment"}},
		ManyMany: []record.RelationDef{{Name: "tags", Target: "Tag"}},
		Labels:   map[string]string{"title": "Headline"},
	}
	if diff := cmp.Diff(want, article); diff != "" {
		t.Fatalf("Article model mismatch (-want +got):\n%s", diff)
	}
}

func TestModelsReadsLabelSources(t *testing.T) {
	models := parseModels(t, articleDocument)

	if got := models["Author"].Labels["name"]; got != "Full name" {
		t.Fatalf("expected schema title label, got %q", got)
	}
	if got := models["Comment"].Labels["body"]; got != "Comment text" {
		t.Fatalf("expected nested x-formscaffold label, got %q", got)
	}
}

func TestModelsSkipsNonObjectSchemas(t *testing.T) {
	models := parseModels(t, articleDocument)
	if _, ok := models["Status"]; ok {
		t.Fatalf("expected Status schema to be skipped")
	}

	models = parseModels(t, articleDocument, pkgopenapi.WithNonObjectSchemas(true))
	status, ok := models["Status"]
	if !ok {
		t.Fatalf("expected Status schema when non-object schemas are included")
	}
	if len(status.Fields) != 0 {
		t.Fatalf("expected no fields for Status, got %v", status.Fields)
	}
}

func TestModelsDefaultStringLength(t *testing.T) {
	models := parseModels(t, articleDocument, pkgopenapi.WithDefaultStringLength(80))
	if got := models["Author"].Fields[0].Spec; got != "Varchar(80)" {
		t.Fatalf("expected default length spec, got %q", got)
	}
}

func TestModelsFeedTypeRules(t *testing.T) {
	models := parseModels(t, articleDocument)
	rules := record.NewTypeRules()

	cases := map[string]string{
		"title":       form.TypeTextField,
		"status":      form.TypeDropdownField,
		"published":   form.TypeCheckboxField,
		"views":       form.TypeNumericField,
		"publishedAt": form.TypeDateField,
	}
	article := models["Article"]
	for name, want := range cases {
		field, ok := article.Field(name)
		if !ok {
			t.Fatalf("field %s missing", name)
		}
		if got := rules.Resolve(record.ParseFieldSpec(field.Spec)); got != want {
			t.Fatalf("field %s: expected %s, got %s", name, want, got)
		}
	}
}

func TestModelsRejectsDocumentsWithoutSchemas(t *testing.T) {
	const raw = `{"openapi":"3.0.0","info":{"title":"Empty","version":"1"},"paths":{}}`
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("empty.json"), []byte(raw))
	if _, err := New(pkgopenapi.NewParserOptions()).Models(context.Background(), doc); err == nil {
		t.Fatalf("expected error for document without component schemas")
	}
}

func TestModelsHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("blog.yaml"), []byte(articleDocument))
	if _, err := New(pkgopenapi.NewParserOptions()).Models(ctx, doc); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestRelationshipKeysAreNormalised(t *testing.T) {
	ext := map[string]any{
		"x-relationships": map[string]any{
			"Kind":        "belongs_to_many",
			"foreign-key": "tag_id",
			"cardinality": 2,
		},
	}
	got := relationshipFromExtensions(ext)
	want := map[string]string{"type": "belongs_to_many", "foreignkey": "tag_id"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("relationship mismatch (-want +got):\n%s", diff)
	}
	if !isManyMany(ext) {
		t.Fatalf("expected belongs_to_many to be many-many")
	}
}
