package scaffold

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

func TestDefaultScaffolderFlat(t *testing.T) {
	list, err := New().Scaffold(context.Background(), savedPage(), Request{})
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	assertSnapshot(t, []form.Snapshot{
		{Type: form.TypeTextField, Name: "Title", Title: "Page title"},
		{Type: form.TypeTextareaField, Name: "Summary", Title: "Summary"},
		{Type: form.TypeCheckboxField, Name: "Published", Title: "Published"},
	}, list)
}

func TestDefaultScaffolderTabbedWithRelations(t *testing.T) {
	s := New(WithIncludeRelations(true))
	list, err := s.Scaffold(context.Background(), savedPage(), Request{Tabbed: true})
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	if diff := cmp.Diff([]string{"Root"}, childNames(list)); diff != "" {
		t.Fatalf("top-level mismatch (-want +got):\n%s", diff)
	}
	main, ok := list.Tab("Root.Main")
	if !ok {
		t.Fatalf("expected Root.Main")
	}
	if diff := cmp.Diff([]string{"Title", "Summary", "Published"}, childNames(main.Children())); diff != "" {
		t.Fatalf("Root.Main mismatch (-want +got):\n%s", diff)
	}
	for _, relation := range []string{"Comments", "Tags"} {
		tab, ok := list.Tab("Root." + relation)
		if !ok {
			t.Fatalf("expected Root.%s", relation)
		}
		if tab.Children().Len() != 1 || tab.Children().At(0).Type() != form.TypeGridField {
			t.Fatalf("expected a grid in Root.%s", relation)
		}
	}
}

func TestDefaultScaffolderRestrictAndOverrides(t *testing.T) {
	s := New(WithIncludeRelations(true), WithRestrictFields("Summary", "Tags"))
	list, err := s.Scaffold(context.Background(), savedPage(), Request{
		FieldTypes: map[string]string{"Summary": form.TypeTextField},
	})
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	assertSnapshot(t, []form.Snapshot{
		{Type: form.TypeTextField, Name: "Summary", Title: "Summary"},
		{
			Type:  form.TypeGridField,
			Name:  "Tags",
			Title: "Tags",
			Relation: &form.RelationSnapshot{
				Target:     "Tag",
				Count:      2,
				Config:     "RelationEditor",
				Components: form.RelationEditorConfig().Components,
			},
		},
	}, list)
}

func TestDefaultScaffolderSkipsRelationsForUnsavedRecords(t *testing.T) {
	list, err := New(WithIncludeRelations(true)).Scaffold(context.Background(), draftPage(), Request{})
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if diff := cmp.Diff([]string{"Title", "Summary", "Published"}, childNames(list)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
