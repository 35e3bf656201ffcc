package record

import (
	"strconv"
	"sync"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

var (
	defaultsOnce     sync.Once
	defaultRegistry  *form.Registry
	defaultTypeRules *TypeRules
)

func defaults() (*form.Registry, *TypeRules) {
	defaultsOnce.Do(func() {
		defaultRegistry = form.NewRegistry()
		defaultTypeRules = NewTypeRules()
	})
	return defaultRegistry, defaultTypeRules
}

// MemoryRecord is a Record backed by a Model and in-memory values. It is
// persisted when ID is set.
type MemoryRecord struct {
	Model     Model
	ID        string
	Values    map[string]any
	Relations map[string][]string

	registry *form.Registry
	rules    *TypeRules
}

// MemoryOption configures a MemoryRecord.
type MemoryOption func(*MemoryRecord)

// WithRegistry sets the field type registry used by ScaffoldField.
func WithRegistry(registry *form.Registry) MemoryOption {
	return func(r *MemoryRecord) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithTypeRules sets the rules mapping field specs to form field types.
func WithTypeRules(rules *TypeRules) MemoryOption {
	return func(r *MemoryRecord) {
		if rules != nil {
			r.rules = rules
		}
	}
}

// NewMemoryRecord builds a record of model. An empty id yields an unsaved
// record.
func NewMemoryRecord(model Model, id string, opts ...MemoryOption) *MemoryRecord {
	registry, rules := defaults()
	rec := &MemoryRecord{
		Model:     model,
		ID:        id,
		Values:    make(map[string]any),
		Relations: make(map[string][]string),
		registry:  registry,
		rules:     rules,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(rec)
		}
	}
	return rec
}

var _ Record = (*MemoryRecord)(nil)

func (r *MemoryRecord) ObjectType() string { return r.Model.Name }
func (r *MemoryRecord) DBFields() []string { return r.Model.FieldNames() }
func (r *MemoryRecord) HasMany() []string  { return relationNames(r.Model.HasMany) }
func (r *MemoryRecord) ManyMany() []string { return relationNames(r.Model.ManyMany) }
func (r *MemoryRecord) IsPersisted() bool  { return r.ID != "" }

// FieldLabel returns the configured label or a label derived from name.
func (r *MemoryRecord) FieldLabel(name string) string {
	if label, ok := r.Model.Labels[name]; ok && label != "" {
		return label
	}
	return form.NameToLabel(name)
}

// Value returns the stored value for name.
func (r *MemoryRecord) Value(name string) (any, bool) {
	value, ok := r.Values[name]
	return value, ok
}

// Set stores a value and returns the record for chaining.
func (r *MemoryRecord) Set(name string, value any) *MemoryRecord {
	if r.Values == nil {
		r.Values = make(map[string]any)
	}
	r.Values[name] = value
	return r
}

// Link records related ids for a relation.
func (r *MemoryRecord) Link(relation string, ids ...string) *MemoryRecord {
	if r.Relations == nil {
		r.Relations = make(map[string][]string)
	}
	r.Relations[relation] = append(r.Relations[relation], ids...)
	return r
}

// Relation returns the related ids for name. Unknown relations yield an
// empty list.
func (r *MemoryRecord) Relation(name string) form.Relation {
	list := List{IDList: append([]string(nil), r.Relations[name]...)}
	if def, ok := r.Model.Relation(name); ok {
		list.TargetType = def.Target
	}
	return list
}

// ScaffoldField builds the default field for a database field. An explicit
// entry in params.FieldTypes takes precedence over the type rules.
func (r *MemoryRecord) ScaffoldField(name string, params ScaffoldParams) (form.Field, bool) {
	def, ok := r.Model.Field(name)
	if !ok {
		return nil, false
	}
	spec := ParseFieldSpec(def.Spec)

	fieldType := params.FieldTypes[name]
	if fieldType == "" {
		fieldType = r.rules.Resolve(spec)
	}
	field, err := r.registry.Create(fieldType, form.Params{Name: name, Title: r.FieldLabel(name)})
	if err != nil {
		return nil, false
	}
	configureFromSpec(field, spec)
	if value, ok := r.Values[name]; ok && value != nil {
		field.SetValue(value)
	}
	return field, true
}

func configureFromSpec(field form.Field, spec FieldSpec) {
	switch typed := field.(type) {
	case *form.TextField:
		if len(spec.Args) > 0 {
			if n, err := strconv.Atoi(spec.Args[0]); err == nil {
				typed.MaxLength = n
			}
		}
	case *form.NumericField:
		if len(spec.Args) > 1 {
			if n, err := strconv.Atoi(spec.Args[1]); err == nil {
				typed.Scale = n
			}
		}
	case *form.DropdownField:
		options, def := spec.EnumOptions()
		typed.Source = make([]form.KeyValue, 0, len(options))
		for _, option := range options {
			typed.Source = append(typed.Source, form.KeyValue{Key: option, Value: option})
		}
		if def != "" {
			typed.SetValue(def)
		}
	}
}

// List is the form.Relation implementation for in-memory records.
type List struct {
	TargetType string
	IDList     []string
}

func (l List) Target() string { return l.TargetType }
func (l List) Len() int       { return len(l.IDList) }
func (l List) IDs() []string  { return append([]string(nil), l.IDList...) }
