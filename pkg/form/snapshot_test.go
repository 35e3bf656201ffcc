package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubRelation struct {
	target string
	ids    []string
}

func (s stubRelation) Target() string { return s.target }
func (s stubRelation) Len() int       { return len(s.ids) }
func (s stubRelation) IDs() []string  { return s.ids }

func TestSnapshotList(t *testing.T) {
	title := NewTextField("Title", "Title")
	title.SetValue("Home")
	title.AddExtraClass("wide")

	group := NewFieldGroup(NewFieldList(NewHeaderField("HeadingIntro", "Intro", 3)))
	group.SetName("details")
	group.SetTitle("Details")

	grid := NewGridField("Tags", "Tags", stubRelation{target: "Tag", ids: []string{"1", "2"}}, &GridConfig{
		Name:       "Small",
		Components: []string{GridDataColumns},
	})

	got := SnapshotList(NewFieldList(title, group, grid))
	want := []Snapshot{
		{Type: TypeTextField, Name: "Title", Title: "Title", Value: "Home", Classes: []string{"wide"}},
		{
			Type:  TypeFieldGroup,
			Name:  "details",
			Title: "Details",
			Children: []Snapshot{
				{Type: TypeHeaderField, Name: "HeadingIntro", Title: "Intro", Level: 3},
			},
		},
		{
			Type:     TypeGridField,
			Name:     "Tags",
			Title:    "Tags",
			Relation: &RelationSnapshot{Target: "Tag", Count: 2, Config: "Small", Components: []string{GridDataColumns}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotReadonly(t *testing.T) {
	field := NewReadonlyField("Created", "Created")
	snap := SnapshotField(field)
	if !snap.Readonly {
		t.Fatalf("expected readonly snapshot")
	}
}

func TestRelationEditorConfig(t *testing.T) {
	cfg := RelationEditorConfig()
	if cfg.ItemsPerPage != 15 {
		t.Fatalf("expected 15 items per page, got %d", cfg.ItemsPerPage)
	}
	for _, component := range []string{GridAddNewButton, GridAddExistingAutocompleter, GridDeleteAction, GridPaginator} {
		if !cfg.HasComponent(component) {
			t.Fatalf("expected %s in relation editor config", component)
		}
	}
	if (*GridConfig)(nil).HasComponent(GridDataColumns) {
		t.Fatalf("nil config has no components")
	}
}
