package scaffold

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formscaffold/internal/ctxlog"
	"github.com/goliatone/go-formscaffold/pkg/form"
	"github.com/goliatone/go-formscaffold/pkg/record"
)

// Fallback generates fields for records whose object type has no field
// configuration.
type Fallback interface {
	Scaffold(ctx context.Context, rec record.Record, req Request) (*form.FieldList, error)
}

// FallbackFunc adapts a function to Fallback.
type FallbackFunc func(ctx context.Context, rec record.Record, req Request) (*form.FieldList, error)

func (f FallbackFunc) Scaffold(ctx context.Context, rec record.Record, req Request) (*form.FieldList, error) {
	return f(ctx, rec, req)
}

const mainTab = "Root.Main"

// DefaultScaffolder lists every database field in declaration order and,
// when relations are included and the record is saved, a relation grid per
// has-many and many-many relation. In tabbed mode fields go to Root.Main and
// each relation gets its own Root.<Relation> tab.
type DefaultScaffolder struct {
	Registry *form.Registry
}

func (d *DefaultScaffolder) Scaffold(ctx context.Context, rec record.Record, req Request) (*form.FieldList, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if rec == nil {
		return nil, errors.New("scaffold: record is nil")
	}
	registry := d.Registry
	if registry == nil {
		registry = form.NewRegistry()
	}
	logger := ctxlog.FromContext(ctx, nil)

	fields := form.NewFieldList()
	if req.Tabbed {
		fields.Push(form.NewTabSet("Root"))
	}
	params := record.ScaffoldParams{
		Tabbed:           req.Tabbed,
		IncludeRelations: req.IncludeRelations,
		RestrictFields:   req.RestrictFields,
		FieldTypes:       req.FieldTypes,
	}

	for _, name := range rec.DBFields() {
		if !allowed(req.RestrictFields, name) {
			continue
		}
		var field form.Field
		if typeName, ok := req.FieldTypes[name]; ok {
			created, err := registry.Create(typeName, form.Params{Name: name, Title: rec.FieldLabel(name)})
			if err != nil {
				return nil, fmt.Errorf("%w: override for %q: %v", ErrInvalidFieldType, name, err)
			}
			field = created
		} else {
			scaffolded, ok := rec.ScaffoldField(name, params)
			if !ok || scaffolded == nil {
				continue
			}
			field = scaffolded
		}
		field.SetTitle(rec.FieldLabel(name))
		if err := place(fields, req.Tabbed, mainTab, field); err != nil {
			return nil, err
		}
	}

	if !req.IncludeRelations {
		return fields, nil
	}
	if !rec.IsPersisted() {
		logger.Debug("scaffold: unsaved record, relation grids omitted", "object_type", rec.ObjectType())
		return fields, nil
	}

	for _, name := range record.Relations(rec) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !allowed(req.RestrictFields, name) {
			continue
		}
		typeName := form.TypeGridField
		if override, ok := req.FieldTypes[name]; ok {
			typeName = override
		}
		label := rec.FieldLabel(name)
		grid, err := registry.Create(typeName, form.Params{
			Name:     name,
			Title:    label,
			Relation: rec.Relation(name),
			Config:   form.RelationEditorConfig(),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: relation %q: %v", ErrInvalidFieldType, name, err)
		}
		if !req.Tabbed {
			fields.Push(grid)
			continue
		}
		tab, err := fields.FindOrMakeTab("Root." + name)
		if err != nil {
			return nil, fmt.Errorf("scaffold: relation %q: %w", name, err)
		}
		tab.SetTitle(label)
		tab.Children().Push(grid)
	}
	return fields, nil
}

func allowed(restrict []string, name string) bool {
	if len(restrict) == 0 {
		return true
	}
	for _, candidate := range restrict {
		if candidate == name {
			return true
		}
	}
	return false
}

func place(fields *form.FieldList, tabbed bool, tab string, field form.Field) error {
	if !tabbed {
		fields.Push(field)
		return nil
	}
	if err := fields.AddFieldToTab(tab, field); err != nil {
		return fmt.Errorf("scaffold: field %q: %w", field.Name(), err)
	}
	return nil
}
