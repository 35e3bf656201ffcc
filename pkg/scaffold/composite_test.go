package scaffold

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

func TestNormalizeHeadingLevel(t *testing.T) {
	tests := map[string]string{
		"h4": "4",
		"H2": "2",
		"3":  "3",
	}
	for input, want := range tests {
		if got := normalizeHeadingLevel(input); got != want {
			t.Fatalf("normalizeHeadingLevel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestKeyedHeadingTakesTitleFromKey(t *testing.T) {
	doc := `
fields:
  - Introduction: h2
  - H5
`
	list := mustScaffoldDoc(t, draftPage(), doc, Request{})

	assertSnapshot(t, []form.Snapshot{
		{Type: form.TypeHeaderField, Name: "Headingintroduction", Title: "Introduction", Level: 2},
		{Type: form.TypeHeaderField, Name: "Headingh5", Title: "H 5", Level: 5},
	}, list)
}

func TestCompositeRoundTrip(t *testing.T) {
	docs := map[string]string{
		"mapping": `
fields:
  Details:
    type: FieldGroup
    fields:
      fields: [Title, h2]
`,
		"sequence": `
fields:
  - Details:
      type: FieldGroup
      fields:
        fields: [Title, h2]
`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			list := mustScaffoldDoc(t, draftPage(), doc, Request{})
			assertSnapshot(t, []form.Snapshot{
				{
					Type:  form.TypeFieldGroup,
					Name:  "details",
					Title: "Details",
					Children: []form.Snapshot{
						{Type: form.TypeTextField, Name: "Title", Title: "Page title"},
						{Type: form.TypeHeaderField, Name: "Headingh2", Title: "H 2", Level: 2},
					},
				},
			}, list)
		})
	}
}

func TestToggleCompositeNaming(t *testing.T) {
	doc := `
fields:
  - Meta Data:
      type: ToggleCompositeField
      fields: [Summary]
  - type: ToggleCompositeField
    fields: [Published]
`
	list := mustScaffoldDoc(t, draftPage(), doc, Request{})

	assertSnapshot(t, []form.Snapshot{
		{
			Type:  form.TypeToggleCompositeField,
			Name:  "meta-data",
			Title: "Meta Data",
			Children: []form.Snapshot{
				{Type: form.TypeTextareaField, Name: "Summary", Title: "Summary"},
			},
		},
		{
			Type: form.TypeToggleCompositeField,
			Name: "Toggle",
			Children: []form.Snapshot{
				{Type: form.TypeCheckboxField, Name: "Published", Title: "Published"},
			},
		},
	}, list)
}

func TestNamespacedCompositeType(t *testing.T) {
	doc := `
fields:
  - Names:
      type: Forms\CompositeField
      fields: [Title]
`
	list := mustScaffoldDoc(t, draftPage(), doc, Request{})
	if list.Len() != 1 || list.At(0).Type() != form.TypeCompositeField {
		t.Fatalf("expected one CompositeField, got %v", childNames(list))
	}
}

func TestCompositeInnerFieldsAreNotTabRouted(t *testing.T) {
	doc := `
Root.Main:
  fields:
    - Details:
        type: FieldGroup
        fields: [Title, Summary]
`
	list := mustScaffoldDoc(t, draftPage(), doc, Request{Tabbed: true})

	tab, ok := list.Tab("Root.Main")
	if !ok || tab.Children().Len() != 1 {
		t.Fatalf("expected Root.Main to hold the composite")
	}
	group, ok := tab.Children().At(0).(form.Composite)
	if !ok {
		t.Fatalf("expected a composite, got %T", tab.Children().At(0))
	}
	if got := childNames(group.Children()); len(got) != 2 || got[0] != "Title" || got[1] != "Summary" {
		t.Fatalf("unexpected composite children %v", got)
	}
}

func TestCompositeRejectsNonCompositeType(t *testing.T) {
	for _, typeName := range []string{"TextField", "TabSet", "NoSuchType"} {
		t.Run(typeName, func(t *testing.T) {
			doc := "fields:\n  - Bad:\n      type: " + typeName + "\n      fields: [Title]\n"
			_, err := scaffoldDoc(t, draftPage(), doc, Request{})
			if !errors.Is(err, ErrInvalidFieldType) {
				t.Fatalf("expected ErrInvalidFieldType, got %v", err)
			}
		})
	}
}

func TestNestedComposites(t *testing.T) {
	doc := `
fields:
  - Outer:
      type: CompositeField
      fields:
        - Title
        - Inner:
            type: FieldGroup
            fields: [Summary]
`
	list := mustScaffoldDoc(t, draftPage(), doc, Request{})
	assertSnapshot(t, []form.Snapshot{
		{
			Type:  form.TypeCompositeField,
			Name:  "outer",
			Title: "Outer",
			Children: []form.Snapshot{
				{Type: form.TypeTextField, Name: "Title", Title: "Page title"},
				{
					Type:  form.TypeFieldGroup,
					Name:  "inner",
					Title: "Inner",
					Children: []form.Snapshot{
						{Type: form.TypeTextareaField, Name: "Summary", Title: "Summary"},
					},
				},
			},
		},
	}, list)
}
