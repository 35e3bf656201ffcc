package form

// CompositeField groups child fields into one visual unit.
type CompositeField struct {
	Base
	children    *FieldList
	Legend      string
	Tag         string
	ColumnCount int
}

// NewCompositeField builds a composite owning children. A nil list is
// replaced with an empty one.
func NewCompositeField(children *FieldList) *CompositeField {
	f := &CompositeField{}
	f.initComposite(TypeCompositeField, children)
	return f
}

func (f *CompositeField) initComposite(kind string, children *FieldList) {
	if children == nil {
		children = NewFieldList()
	}
	f.children = children
	f.Tag = "div"
	f.init(kind, "", "", false)
	f.methods.Add("setLegend", func(args ...any) error {
		legend, err := StringArg("setLegend", args, 0)
		if err != nil {
			return err
		}
		f.Legend = legend
		return nil
	})
	f.methods.Add("setTag", func(args ...any) error {
		tag, err := StringArg("setTag", args, 0)
		if err != nil {
			return err
		}
		f.Tag = tag
		return nil
	})
	f.methods.Add("setColumnCount", func(args ...any) error {
		n, err := IntArg("setColumnCount", args, 0)
		if err != nil {
			return err
		}
		f.ColumnCount = n
		return nil
	})
}

// Children returns the owned child list.
func (f *CompositeField) Children() *FieldList {
	return f.children
}

// FieldGroup renders its children inline on a single row.
type FieldGroup struct {
	CompositeField
}

func NewFieldGroup(children *FieldList) *FieldGroup {
	f := &FieldGroup{}
	f.initComposite(TypeFieldGroup, children)
	return f
}

// ToggleCompositeField is a collapsible composite panel.
type ToggleCompositeField struct {
	CompositeField
	StartClosed  bool
	HeadingLevel int
}

// NewToggleCompositeField builds a collapsible panel. Panels start closed
// with a level 3 heading.
func NewToggleCompositeField(name, title string, children *FieldList) *ToggleCompositeField {
	f := &ToggleCompositeField{StartClosed: true, HeadingLevel: 3}
	f.initComposite(TypeToggleCompositeField, children)
	f.name = name
	f.title = title
	f.methods.Add("setStartClosed", func(args ...any) error {
		closed, err := BoolArg("setStartClosed", args, 0, true)
		if err != nil {
			return err
		}
		f.StartClosed = closed
		return nil
	})
	f.methods.Add("setHeadingLevel", func(args ...any) error {
		n, err := IntArg("setHeadingLevel", args, 0)
		if err != nil {
			return err
		}
		f.HeadingLevel = clampHeadingLevel(n)
		return nil
	})
	return f
}

// TabSet holds tabs and nested tab sets.
type TabSet struct {
	Base
	children *FieldList
}

func NewTabSet(name string) *TabSet {
	f := &TabSet{children: NewFieldList()}
	f.init(TypeTabSet, name, NameToLabel(name), true)
	return f
}

func (f *TabSet) Children() *FieldList {
	return f.children
}

// Tab is a single named tab holding fields.
type Tab struct {
	Base
	children *FieldList
}

func NewTab(name string) *Tab {
	f := &Tab{children: NewFieldList()}
	f.init(TypeTab, name, NameToLabel(name), true)
	return f
}

func (f *Tab) Children() *FieldList {
	return f.children
}
