package form

// Snapshot is a serialisable view of a field tree, used for debugging output
// and test assertions.
type Snapshot struct {
	Type        string            `json:"type"`
	Name        string            `json:"name,omitempty"`
	Title       string            `json:"title,omitempty"`
	Value       any               `json:"value,omitempty"`
	Level       int               `json:"level,omitempty"`
	Description string            `json:"description,omitempty"`
	RightTitle  string            `json:"rightTitle,omitempty"`
	Classes     []string          `json:"classes,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Readonly    bool              `json:"readonly,omitempty"`
	Disabled    bool              `json:"disabled,omitempty"`
	Relation    *RelationSnapshot `json:"relation,omitempty"`
	Children    []Snapshot        `json:"children,omitempty"`
}

// RelationSnapshot summarises the relation behind a grid field.
type RelationSnapshot struct {
	Target     string   `json:"target,omitempty"`
	Count      int      `json:"count"`
	Config     string   `json:"config,omitempty"`
	Components []string `json:"components,omitempty"`
}

type describer interface {
	Description() string
	RightTitle() string
	ExtraClasses() []string
	Attributes() map[string]string
	IsReadonly() bool
	IsDisabled() bool
}

// SnapshotList captures every field in list.
func SnapshotList(list *FieldList) []Snapshot {
	if list.Len() == 0 {
		return nil
	}
	out := make([]Snapshot, 0, list.Len())
	for _, field := range list.Fields() {
		out = append(out, SnapshotField(field))
	}
	return out
}

// SnapshotField captures a single field and its descendants.
func SnapshotField(field Field) Snapshot {
	snap := Snapshot{
		Type:  field.Type(),
		Name:  field.Name(),
		Title: field.Title(),
		Value: field.Value(),
	}
	if d, ok := field.(describer); ok {
		snap.Description = d.Description()
		snap.RightTitle = d.RightTitle()
		snap.Classes = d.ExtraClasses()
		snap.Attributes = d.Attributes()
		snap.Readonly = d.IsReadonly()
		snap.Disabled = d.IsDisabled()
	}
	if heading, ok := field.(interface{ HeadingLevel() int }); ok {
		snap.Level = heading.HeadingLevel()
	}
	if grid, ok := field.(*GridField); ok {
		rel := &RelationSnapshot{Target: grid.ModelClass}
		if list := grid.List(); list != nil {
			rel.Count = list.Len()
		}
		if cfg := grid.Config(); cfg != nil {
			rel.Config = cfg.Name
			rel.Components = append([]string(nil), cfg.Components...)
		}
		snap.Relation = rel
	}
	if composite, ok := field.(Composite); ok {
		snap.Children = SnapshotList(composite.Children())
	}
	return snap
}
