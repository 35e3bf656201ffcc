package record

import "github.com/goliatone/go-formscaffold/pkg/form"

// Record is the underlying object a form is scaffolded for. It supplies field
// metadata, relation lists, labels and raw values.
type Record interface {
	// ObjectType names the record's type; configuration is looked up by it.
	ObjectType() string
	// DBFields lists the scalar database fields in declaration order.
	DBFields() []string
	// HasMany lists has-many relation names in declaration order.
	HasMany() []string
	// ManyMany lists many-many relation names in declaration order.
	ManyMany() []string
	// ScaffoldField builds the default form field for a scalar database
	// field. It reports false when the name is not a database field.
	ScaffoldField(name string, params ScaffoldParams) (form.Field, bool)
	// FieldLabel returns the display label for name.
	FieldLabel(name string) string
	// IsPersisted reports whether the record has a stored identity.
	IsPersisted() bool
	// Relation returns the current collection behind a relation name.
	Relation(name string) form.Relation
	// Value returns the raw stored value for name.
	Value(name string) (any, bool)
}

// ScaffoldParams is passed to ScaffoldField. It mirrors the options of the
// scaffold call that requested the field.
type ScaffoldParams struct {
	Tabbed           bool
	IncludeRelations bool
	RestrictFields   []string
	FieldTypes       map[string]string
}

// Relations returns the has-many names followed by the many-many names.
func Relations(rec Record) []string {
	if rec == nil {
		return nil
	}
	hasMany := rec.HasMany()
	manyMany := rec.ManyMany()
	out := make([]string, 0, len(hasMany)+len(manyMany))
	out = append(out, hasMany...)
	out = append(out, manyMany...)
	return out
}

// IsRelation reports whether name is a has-many or many-many relation of rec.
func IsRelation(rec Record, name string) bool {
	for _, relation := range Relations(rec) {
		if relation == name {
			return true
		}
	}
	return false
}
