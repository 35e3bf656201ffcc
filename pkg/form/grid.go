package form

// Relation is the collection a grid field edits.
type Relation interface {
	Target() string
	Len() int
	IDs() []string
}

// Grid component identifiers used by the relation editor preset.
const (
	GridButtonRow                = "ButtonRow"
	GridAddNewButton             = "AddNewButton"
	GridAddExistingAutocompleter = "AddExistingAutocompleter"
	GridToolbarHeader            = "ToolbarHeader"
	GridSortableHeader           = "SortableHeader"
	GridFilterHeader             = "FilterHeader"
	GridDataColumns              = "DataColumns"
	GridEditButton               = "EditButton"
	GridDeleteAction             = "DeleteAction"
	GridPageCount                = "PageCount"
	GridPaginator                = "Paginator"
	GridDetailForm               = "DetailForm"
)

// GridConfig lists the components a grid field is assembled from.
type GridConfig struct {
	Name         string
	Components   []string
	ItemsPerPage int
}

// RelationEditorConfig returns the preset used for has-many and many-many
// relation editors: add new, link existing, edit, unlink and paginate.
func RelationEditorConfig() *GridConfig {
	return &GridConfig{
		Name: "RelationEditor",
		Components: []string{
			GridButtonRow,
			GridAddNewButton,
			GridAddExistingAutocompleter,
			GridToolbarHeader,
			GridSortableHeader,
			GridFilterHeader,
			GridDataColumns,
			GridEditButton,
			GridDeleteAction,
			GridPageCount,
			GridPaginator,
			GridDetailForm,
		},
		ItemsPerPage: 15,
	}
}

// HasComponent reports whether the config includes component.
func (c *GridConfig) HasComponent(component string) bool {
	if c == nil {
		return false
	}
	return containsString(c.Components, component)
}

// GridField is a tabular editor bound to a relation.
type GridField struct {
	Base
	list       Relation
	config     *GridConfig
	ModelClass string
}

// NewGridField builds a grid over list. A nil config means a bare grid with
// data columns only.
func NewGridField(name, title string, list Relation, config *GridConfig) *GridField {
	if config == nil {
		config = &GridConfig{Name: "Base", Components: []string{GridDataColumns}}
	}
	f := &GridField{list: list, config: config}
	if list != nil {
		f.ModelClass = list.Target()
	}
	f.init(TypeGridField, name, title, false)
	f.methods.Add("setModelClass", func(args ...any) error {
		class, err := StringArg("setModelClass", args, 0)
		if err != nil {
			return err
		}
		f.ModelClass = class
		return nil
	})
	return f
}

func (f *GridField) List() Relation {
	return f.list
}

func (f *GridField) Config() *GridConfig {
	return f.config
}
