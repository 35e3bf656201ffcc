package scaffold

import (
	"fmt"

	"github.com/goliatone/go-formscaffold/pkg/form"
	"github.com/goliatone/go-formscaffold/pkg/record"
)

// resolveField produces the field for name, trying in order: an explicit
// type override, the record's scaffolded database field, a relation grid and
// finally a read-only display of the raw value. A nil field without error
// means the name is a relation of an unsaved record.
func (r *run) resolveField(name string) (form.Field, error) {
	isRelation := record.IsRelation(r.rec, name)

	if typeName, ok := r.types[name]; ok {
		def, err := r.registry.Get(typeName)
		if err != nil {
			return nil, fmt.Errorf("%w: override for %q: %v", ErrInvalidFieldType, name, err)
		}
		if isRelation && def.Kind == form.KindGrid {
			return r.relationField(name)
		}
		field := def.New(form.Params{Name: name, Title: form.NameToLabel(name)})
		if field == nil {
			return nil, fmt.Errorf("scaffold: type %q constructor returned nil", def.Name)
		}
		if field.Name() != name {
			field.SetName(name)
		}
		return field, nil
	}

	if !isRelation {
		if field, ok := r.rec.ScaffoldField(name, r.params); ok && field != nil {
			field.SetTitle(r.rec.FieldLabel(name))
			return field, nil
		}
		return r.readonlyField(name)
	}

	return r.relationField(name)
}

// relationField builds a relation grid. Unsaved records have no relation
// identity to edit, so no field is produced for them.
func (r *run) relationField(name string) (form.Field, error) {
	if !r.rec.IsPersisted() {
		r.logger.Debug("scaffold: skipping relation on unsaved record", "relation", name)
		return nil, nil
	}
	typeName := form.TypeGridField
	if override, ok := r.types[name]; ok {
		typeName = override
	}
	field, err := r.registry.Create(typeName, form.Params{
		Name:     name,
		Title:    r.rec.FieldLabel(name),
		Relation: r.rec.Relation(name),
		Config:   form.RelationEditorConfig(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: relation %q: %v", ErrInvalidFieldType, name, err)
	}
	return field, nil
}

func (r *run) readonlyField(name string) (form.Field, error) {
	field, err := r.registry.Create(form.TypeReadonlyField, form.Params{
		Name:  name,
		Title: r.rec.FieldLabel(name),
	})
	if err != nil {
		return nil, fmt.Errorf("scaffold: readonly field %q: %w", name, err)
	}
	if value, ok := r.rec.Value(name); ok && !isEmptyValue(value) {
		field.SetValue(value)
	}
	return field, nil
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	str, ok := value.(string)
	return ok && str == ""
}
