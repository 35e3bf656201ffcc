package form

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotATab is returned when a tab path crosses a field that is not a tab
// set, or ends on a field that is not a tab.
var ErrNotATab = errors.New("form: tab path does not resolve to a tab")

// FieldList is an ordered collection of fields.
type FieldList struct {
	fields []Field
}

// NewFieldList builds a list holding fields in order. Nil entries are dropped.
func NewFieldList(fields ...Field) *FieldList {
	list := &FieldList{}
	for _, field := range fields {
		list.Push(field)
	}
	return list
}

// Push appends a field.
func (l *FieldList) Push(field Field) {
	if field == nil {
		return
	}
	l.fields = append(l.fields, field)
}

// Len returns the number of top-level fields.
func (l *FieldList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.fields)
}

// At returns the field at idx.
func (l *FieldList) At(idx int) Field {
	return l.fields[idx]
}

// Fields returns a copy of the top-level fields.
func (l *FieldList) Fields() []Field {
	if l == nil {
		return nil
	}
	return append([]Field(nil), l.fields...)
}

// ByName returns the top-level field called name.
func (l *FieldList) ByName(name string) (Field, bool) {
	if l == nil {
		return nil, false
	}
	for _, field := range l.fields {
		if field.Name() == name {
			return field, true
		}
	}
	return nil, false
}

// Find searches the list and every composite descendant depth-first.
func (l *FieldList) Find(name string) (Field, bool) {
	var found Field
	l.Walk(func(field Field, _ int) bool {
		if field.Name() == name {
			found = field
			return false
		}
		return true
	})
	return found, found != nil
}

// Walk visits every field depth-first in order. Returning false stops the
// walk.
func (l *FieldList) Walk(visit func(field Field, depth int) bool) {
	l.walk(visit, 0)
}

func (l *FieldList) walk(visit func(Field, int) bool, depth int) bool {
	if l == nil {
		return true
	}
	for _, field := range l.fields {
		if !visit(field, depth) {
			return false
		}
		if composite, ok := field.(Composite); ok {
			if !composite.Children().walk(visit, depth+1) {
				return false
			}
		}
	}
	return true
}

// FindOrMakeTab resolves a dotted tab path such as "Root.Main", creating the
// tab sets and the final tab when missing. Intermediate segments must be tab
// sets and the last segment must be a tab.
func (l *FieldList) FindOrMakeTab(path string) (*Tab, error) {
	parts := splitTabPath(path)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrNotATab)
	}

	current := l
	last := len(parts) - 1
	for idx, part := range parts {
		existing, ok := current.ByName(part)
		if !ok {
			if idx == last {
				tab := NewTab(part)
				current.Push(tab)
				return tab, nil
			}
			set := NewTabSet(part)
			current.Push(set)
			current = set.Children()
			continue
		}
		if idx == last {
			tab, isTab := existing.(*Tab)
			if !isTab {
				return nil, fmt.Errorf("%w: %q is a %s", ErrNotATab, strings.Join(parts[:idx+1], "."), existing.Type())
			}
			return tab, nil
		}
		set, isSet := existing.(*TabSet)
		if !isSet {
			return nil, fmt.Errorf("%w: %q is a %s", ErrNotATab, strings.Join(parts[:idx+1], "."), existing.Type())
		}
		current = set.Children()
	}
	return nil, fmt.Errorf("%w: %q", ErrNotATab, path)
}

// AddFieldToTab appends field to the tab at path, creating it when needed.
func (l *FieldList) AddFieldToTab(path string, field Field) error {
	tab, err := l.FindOrMakeTab(path)
	if err != nil {
		return err
	}
	tab.Children().Push(field)
	return nil
}

// Tab resolves an existing tab without creating anything.
func (l *FieldList) Tab(path string) (*Tab, bool) {
	parts := splitTabPath(path)
	if len(parts) == 0 {
		return nil, false
	}
	current := l
	for idx, part := range parts {
		existing, ok := current.ByName(part)
		if !ok {
			return nil, false
		}
		if idx == len(parts)-1 {
			tab, isTab := existing.(*Tab)
			return tab, isTab
		}
		set, isSet := existing.(*TabSet)
		if !isSet {
			return nil, false
		}
		current = set.Children()
	}
	return nil, false
}

func splitTabPath(path string) []string {
	raw := strings.Split(strings.TrimSpace(path), ".")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
