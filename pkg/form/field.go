package form

import "strings"

// Field is a single form element. Concrete types embed Base and extend its
// method set with their own configuration methods.
type Field interface {
	Type() string
	Name() string
	SetName(name string)
	Title() string
	SetTitle(title string)
	Value() any
	SetValue(value any)
	Method(name string) (Method, bool)
	Methods() []string
}

// Composite is implemented by fields that own an ordered list of children.
type Composite interface {
	Field
	Children() *FieldList
}

// Base holds the state shared by every field type.
type Base struct {
	kind        string
	name        string
	title       string
	value       any
	description string
	rightTitle  string
	classes     []string
	attributes  map[string]string
	readonly    bool
	disabled    bool
	methods     MethodSet
}

// init prepares the base state and registers the common configuration
// methods. Dataless fields (headings) skip value and description methods.
func (b *Base) init(kind, name, title string, dataless bool) {
	b.kind = kind
	b.name = name
	b.title = title

	b.methods.Add("setTitle", func(args ...any) error {
		title, err := StringArg("setTitle", args, 0)
		if err != nil {
			return err
		}
		b.title = title
		return nil
	})
	b.methods.Add("setName", func(args ...any) error {
		name, err := StringArg("setName", args, 0)
		if err != nil {
			return err
		}
		b.name = name
		return nil
	})
	b.methods.Add("addExtraClass", func(args ...any) error {
		class, err := StringArg("addExtraClass", args, 0)
		if err != nil {
			return err
		}
		b.AddExtraClass(class)
		return nil
	})
	b.methods.Add("removeExtraClass", func(args ...any) error {
		class, err := StringArg("removeExtraClass", args, 0)
		if err != nil {
			return err
		}
		b.RemoveExtraClass(class)
		return nil
	})
	b.methods.Add("setAttribute", func(args ...any) error {
		name, err := StringArg("setAttribute", args, 0)
		if err != nil {
			return err
		}
		value, err := StringArg("setAttribute", args, 1)
		if err != nil {
			return err
		}
		b.SetAttribute(name, value)
		return nil
	})

	if dataless {
		return
	}

	b.methods.Add("setValue", func(args ...any) error {
		value, err := Arg("setValue", args, 0)
		if err != nil {
			return err
		}
		b.value = value
		return nil
	})
	b.methods.Add("setDescription", func(args ...any) error {
		description, err := StringArg("setDescription", args, 0)
		if err != nil {
			return err
		}
		b.SetDescription(description)
		return nil
	})
	b.methods.Add("setRightTitle", func(args ...any) error {
		rightTitle, err := StringArg("setRightTitle", args, 0)
		if err != nil {
			return err
		}
		b.rightTitle = sanitizeDescription(rightTitle)
		return nil
	})
	b.methods.Add("setReadonly", func(args ...any) error {
		readonly, err := BoolArg("setReadonly", args, 0, true)
		if err != nil {
			return err
		}
		b.readonly = readonly
		return nil
	})
	b.methods.Add("setDisabled", func(args ...any) error {
		disabled, err := BoolArg("setDisabled", args, 0, true)
		if err != nil {
			return err
		}
		b.disabled = disabled
		return nil
	})
}

func (b *Base) Type() string          { return b.kind }
func (b *Base) Name() string          { return b.name }
func (b *Base) SetName(name string)   { b.name = name }
func (b *Base) Title() string         { return b.title }
func (b *Base) SetTitle(title string) { b.title = title }
func (b *Base) Value() any            { return b.value }
func (b *Base) SetValue(value any)    { b.value = value }
func (b *Base) Description() string   { return b.description }
func (b *Base) RightTitle() string    { return b.rightTitle }
func (b *Base) IsReadonly() bool      { return b.readonly }
func (b *Base) IsDisabled() bool      { return b.disabled }

// SetDescription stores the help text shown with the field. Markup is
// sanitised down to a safe subset.
func (b *Base) SetDescription(description string) {
	b.description = sanitizeDescription(description)
}

// Method looks up a configuration method by case-insensitive name.
func (b *Base) Method(name string) (Method, bool) {
	return b.methods.Lookup(name)
}

// Methods lists the configuration methods the field declares.
func (b *Base) Methods() []string {
	return b.methods.Names()
}

// AddExtraClass appends space separated CSS classes, ignoring duplicates.
func (b *Base) AddExtraClass(class string) {
	for _, item := range strings.Fields(class) {
		if !containsString(b.classes, item) {
			b.classes = append(b.classes, item)
		}
	}
}

// RemoveExtraClass removes space separated CSS classes.
func (b *Base) RemoveExtraClass(class string) {
	for _, item := range strings.Fields(class) {
		for idx, existing := range b.classes {
			if existing == item {
				b.classes = append(b.classes[:idx], b.classes[idx+1:]...)
				break
			}
		}
	}
}

// ExtraClasses returns a copy of the CSS classes.
func (b *Base) ExtraClasses() []string {
	if len(b.classes) == 0 {
		return nil
	}
	return append([]string(nil), b.classes...)
}

// SetAttribute records an HTML attribute for the field.
func (b *Base) SetAttribute(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if b.attributes == nil {
		b.attributes = make(map[string]string)
	}
	b.attributes[name] = value
}

// Attribute returns a single attribute value.
func (b *Base) Attribute(name string) (string, bool) {
	value, ok := b.attributes[name]
	return value, ok
}

// Attributes returns a copy of the attribute map.
func (b *Base) Attributes() map[string]string {
	if len(b.attributes) == 0 {
		return nil
	}
	out := make(map[string]string, len(b.attributes))
	for k, v := range b.attributes {
		out[k] = v
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
