package scaffold

import (
	"fmt"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

// insert appends field to acc, or to the active tab when tabbed.
func (r *run) insert(field form.Field, acc *form.FieldList, cur cursor) error {
	if !cur.tabbed {
		acc.Push(field)
		return nil
	}
	if cur.tab == "" {
		return fmt.Errorf("%w: field %q", ErrNoActiveTab, field.Name())
	}
	if err := acc.AddFieldToTab(cur.tab, field); err != nil {
		return fmt.Errorf("scaffold: field %q: %w", field.Name(), err)
	}
	return nil
}
