package scaffold

import (
	"testing"

	"github.com/goliatone/go-formscaffold/pkg/form"
	"github.com/goliatone/go-formscaffold/pkg/testsupport"
)

func TestScaffoldMatchesGolden(t *testing.T) {
	store := testsupport.LoadConfig(t, "testdata/page_fields.yaml")

	list, err := New(WithConfigSource(store)).Scaffold(testsupport.Context(), draftPage(), Request{})
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	testsupport.AssertGolden(t, "testdata/page_form.golden.json", list)
}

func TestScaffoldFixtureRecord(t *testing.T) {
	catalog := testsupport.LoadCatalog(t, "testdata/records.yaml")
	rec, err := catalog.Record("Page", "1")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	store := testsupport.LoadConfig(t, "testdata/page_fields.yaml")

	list, err := New(WithConfigSource(store)).Scaffold(testsupport.Context(), rec, Request{})
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	assertSnapshot(t, []form.Snapshot{
		{Type: form.TypeTextField, Name: "Title", Title: "Page title", Value: "Home"},
		{Type: form.TypeHeaderField, Name: "Headingh3", Title: "H 3", Level: 3},
		{Type: form.TypeTextareaField, Name: "Content", Title: "Content", Value: "<p>Welcome</p>"},
	}, list)
}
