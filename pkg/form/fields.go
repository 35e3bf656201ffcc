package form

// Built-in field type names.
const (
	TypeTextField            = "TextField"
	TypeTextareaField        = "TextareaField"
	TypeNumericField         = "NumericField"
	TypeCheckboxField        = "CheckboxField"
	TypeDateField            = "DateField"
	TypeDropdownField        = "DropdownField"
	TypeReadonlyField        = "ReadonlyField"
	TypeHiddenField          = "HiddenField"
	TypeHeaderField          = "HeaderField"
	TypeGridField            = "GridField"
	TypeCompositeField       = "CompositeField"
	TypeFieldGroup           = "FieldGroup"
	TypeToggleCompositeField = "ToggleCompositeField"
	TypeTabSet               = "TabSet"
	TypeTab                  = "Tab"
)

// TextField is a single line text input.
type TextField struct {
	Base
	MaxLength   int
	Placeholder string
}

// NewTextField builds a text input.
func NewTextField(name, title string) *TextField {
	f := &TextField{}
	f.init(TypeTextField, name, title, false)
	f.methods.Add("setMaxLength", func(args ...any) error {
		n, err := IntArg("setMaxLength", args, 0)
		if err != nil {
			return err
		}
		f.MaxLength = n
		return nil
	})
	f.methods.Add("setPlaceholder", func(args ...any) error {
		placeholder, err := StringArg("setPlaceholder", args, 0)
		if err != nil {
			return err
		}
		f.Placeholder = placeholder
		f.SetAttribute("placeholder", placeholder)
		return nil
	})
	return f
}

// TextareaField is a multi-line text input.
type TextareaField struct {
	Base
	Rows    int
	Columns int
}

// NewTextareaField builds a textarea with 5 rows and 20 columns.
func NewTextareaField(name, title string) *TextareaField {
	f := &TextareaField{Rows: 5, Columns: 20}
	f.init(TypeTextareaField, name, title, false)
	f.methods.Add("setRows", func(args ...any) error {
		n, err := IntArg("setRows", args, 0)
		if err != nil {
			return err
		}
		f.Rows = n
		return nil
	})
	f.methods.Add("setColumns", func(args ...any) error {
		n, err := IntArg("setColumns", args, 0)
		if err != nil {
			return err
		}
		f.Columns = n
		return nil
	})
	return f
}

// NumericField accepts numbers, optionally with a fixed scale.
type NumericField struct {
	Base
	Scale int
}

func NewNumericField(name, title string) *NumericField {
	f := &NumericField{}
	f.init(TypeNumericField, name, title, false)
	f.methods.Add("setScale", func(args ...any) error {
		n, err := IntArg("setScale", args, 0)
		if err != nil {
			return err
		}
		f.Scale = n
		return nil
	})
	return f
}

// CheckboxField is a boolean toggle.
type CheckboxField struct {
	Base
}

func NewCheckboxField(name, title string) *CheckboxField {
	f := &CheckboxField{}
	f.init(TypeCheckboxField, name, title, false)
	return f
}

// DateField is a calendar date input.
type DateField struct {
	Base
	HTML5 bool
}

func NewDateField(name, title string) *DateField {
	f := &DateField{HTML5: true}
	f.init(TypeDateField, name, title, false)
	f.methods.Add("setHTML5", func(args ...any) error {
		enabled, err := BoolArg("setHTML5", args, 0, true)
		if err != nil {
			return err
		}
		f.HTML5 = enabled
		return nil
	})
	return f
}

// DropdownField selects a single value from an ordered source.
type DropdownField struct {
	Base
	Source          []KeyValue
	EmptyString     string
	HasEmptyDefault bool
}

func NewDropdownField(name, title string, source []KeyValue) *DropdownField {
	f := &DropdownField{Source: append([]KeyValue(nil), source...)}
	f.init(TypeDropdownField, name, title, false)
	f.methods.Add("setSource", func(args ...any) error {
		source, err := OptionsArg("setSource", args, 0)
		if err != nil {
			return err
		}
		f.Source = source
		return nil
	})
	f.methods.Add("setEmptyString", func(args ...any) error {
		empty, err := StringArg("setEmptyString", args, 0)
		if err != nil {
			return err
		}
		f.EmptyString = empty
		f.HasEmptyDefault = true
		return nil
	})
	f.methods.Add("setHasEmptyDefault", func(args ...any) error {
		enabled, err := BoolArg("setHasEmptyDefault", args, 0, true)
		if err != nil {
			return err
		}
		f.HasEmptyDefault = enabled
		return nil
	})
	return f
}

// ReadonlyField displays a value without allowing edits.
type ReadonlyField struct {
	Base
	IncludeHiddenField bool
}

func NewReadonlyField(name, title string) *ReadonlyField {
	f := &ReadonlyField{}
	f.init(TypeReadonlyField, name, title, false)
	f.readonly = true
	f.methods.Add("setIncludeHiddenField", func(args ...any) error {
		enabled, err := BoolArg("setIncludeHiddenField", args, 0, true)
		if err != nil {
			return err
		}
		f.IncludeHiddenField = enabled
		return nil
	})
	return f
}

// HiddenField carries a value without displaying it.
type HiddenField struct {
	Base
}

func NewHiddenField(name string) *HiddenField {
	f := &HiddenField{}
	f.init(TypeHiddenField, name, "", false)
	return f
}

// HeaderField is a dataless heading. It declares no value or description
// methods.
type HeaderField struct {
	Base
	level int
}

// NewHeaderField builds a heading. Levels outside 1..6 become 2.
func NewHeaderField(name, title string, level int) *HeaderField {
	f := &HeaderField{level: clampHeadingLevel(level)}
	f.init(TypeHeaderField, name, title, true)
	f.methods.Add("setHeadingLevel", func(args ...any) error {
		n, err := IntArg("setHeadingLevel", args, 0)
		if err != nil {
			return err
		}
		f.level = clampHeadingLevel(n)
		return nil
	})
	return f
}

// HeadingLevel returns the heading level, 1 through 6.
func (f *HeaderField) HeadingLevel() int {
	return f.level
}

func clampHeadingLevel(level int) int {
	if level < 1 || level > 6 {
		return 2
	}
	return level
}
