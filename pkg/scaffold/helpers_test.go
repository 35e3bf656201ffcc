package scaffold

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formscaffold/internal/ctxlog"
	"github.com/goliatone/go-formscaffold/pkg/config"
	"github.com/goliatone/go-formscaffold/pkg/form"
	"github.com/goliatone/go-formscaffold/pkg/record"
)

func pageModel() record.Model {
	return record.Model{
		Name: "Page",
		Fields: []record.DBField{
			{Name: "Title", Spec: "Varchar(255)"},
			{Name: "Summary", Spec: "Text"},
			{Name: "Published", Spec: "Boolean"},
		},
		HasMany:  []record.RelationDef{{Name: "Comments", Target: "Comment"}},
		ManyMany: []record.RelationDef{{Name: "Tags", Target: "Tag"}},
		Labels:   map[string]string{"Title": "Page title"},
	}
}

func savedPage() *record.MemoryRecord {
	rec := record.NewMemoryRecord(pageModel(), "1")
	rec.Link("Tags", "7", "8")
	return rec
}

func draftPage() *record.MemoryRecord {
	return record.NewMemoryRecord(pageModel(), "")
}

func mustParse(t *testing.T, doc string) config.Node {
	t.Helper()
	node, err := config.Parse([]byte(doc), t.Name())
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return node
}

func scaffoldDoc(t *testing.T, rec record.Record, doc string, req Request, opts ...Option) (*form.FieldList, error) {
	t.Helper()
	store := config.NewStore()
	store.Set(rec.ObjectType(), mustParse(t, doc))
	s := New(append([]Option{WithConfigSource(store)}, opts...)...)
	return s.Scaffold(context.Background(), rec, req)
}

func mustScaffoldDoc(t *testing.T, rec record.Record, doc string, req Request, opts ...Option) *form.FieldList {
	t.Helper()
	list, err := scaffoldDoc(t, rec, doc, req, opts...)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	return list
}

func testRun(rec record.Record) *run {
	return &run{
		ctx:      context.Background(),
		registry: form.NewRegistry(),
		rec:      rec,
		logger:   ctxlog.Discard(),
	}
}

func assertSnapshot(t *testing.T, want []form.Snapshot, list *form.FieldList) {
	t.Helper()
	if diff := cmp.Diff(want, form.SnapshotList(list), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("field tree mismatch (-want +got):\n%s", diff)
	}
}

func childNames(list *form.FieldList) []string {
	var out []string
	for _, field := range list.Fields() {
		out = append(out, field.Name())
	}
	return out
}
