package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownType is returned when a type name is not registered.
var ErrUnknownType = errors.New("form: unknown field type")

// Kind classifies what a field type can be used for.
type Kind uint8

const (
	// KindField is a plain input constructed from a name and title.
	KindField Kind = iota
	// KindComposite owns a child list.
	KindComposite
	// KindToggleComposite is a collapsible composite that also needs a name
	// and title at construction.
	KindToggleComposite
	// KindGrid edits a relation.
	KindGrid
	// KindContainer covers tabs and tab sets; they hold fields but cannot be
	// declared as composite descriptors.
	KindContainer
)

// IsComposite reports whether the kind can be built from a composite
// descriptor.
func (k Kind) IsComposite() bool {
	return k == KindComposite || k == KindToggleComposite
}

// Params carries constructor arguments. Each kind reads the subset it needs.
type Params struct {
	Name     string
	Title    string
	Value    any
	Level    int
	Children *FieldList
	Relation Relation
	Config   *GridConfig
}

// Constructor builds a field instance.
type Constructor func(Params) Field

// TypeDef describes a registered field type.
type TypeDef struct {
	Name string
	Kind Kind
	New  Constructor
}

// Registry resolves field type names to constructors. Names are matched
// case-insensitively and namespace prefixes (`Vendor\Forms\TextField`) are
// ignored.
type Registry struct {
	mu    sync.RWMutex
	types map[string]TypeDef
}

// NewRegistry constructs a registry with the built-in field types registered.
func NewRegistry() *Registry {
	reg := &Registry{types: make(map[string]TypeDef)}
	reg.registerBuiltins()
	return reg
}

// Register adds a type definition. Duplicate names return an error.
func (r *Registry) Register(def TypeDef) error {
	if def.New == nil {
		return fmt.Errorf("form: type %q constructor is required", def.Name)
	}
	key := NormalizeTypeName(def.Name)
	if key == "" {
		return errors.New("form: type name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.types == nil {
		r.types = make(map[string]TypeDef)
	}
	if _, exists := r.types[key]; exists {
		return fmt.Errorf("form: type %q already registered", def.Name)
	}
	r.types[key] = def
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(def TypeDef) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (TypeDef, error) {
	key := NormalizeTypeName(name)
	if key == "" {
		return TypeDef{}, fmt.Errorf("%w: empty name", ErrUnknownType)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.types[key]
	if !ok {
		return TypeDef{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return def, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// IsComposite reports whether name is registered with a composite kind.
func (r *Registry) IsComposite(name string) bool {
	def, err := r.Get(name)
	return err == nil && def.Kind.IsComposite()
}

// Create constructs a field of the named type.
func (r *Registry) Create(name string, params Params) (Field, error) {
	def, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	field := def.New(params)
	if field == nil {
		return nil, fmt.Errorf("form: type %q constructor returned nil", def.Name)
	}
	return field, nil
}

// List returns the registered type names sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for _, def := range r.types {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// NormalizeTypeName strips namespace prefixes and lowercases name.
func NormalizeTypeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if idx := strings.LastIndexAny(trimmed, `\/`); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return strings.ToLower(trimmed)
}

func withValue(field Field, value any) Field {
	if value != nil {
		field.SetValue(value)
	}
	return field
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(TypeDef{Name: TypeTextField, Kind: KindField, New: func(p Params) Field {
		return withValue(NewTextField(p.Name, p.Title), p.Value)
	}})
	r.MustRegister(TypeDef{Name: TypeTextareaField, Kind: KindField, New: func(p Params) Field {
		return withValue(NewTextareaField(p.Name, p.Title), p.Value)
	}})
	r.MustRegister(TypeDef{Name: TypeNumericField, Kind: KindField, New: func(p Params) Field {
		return withValue(NewNumericField(p.Name, p.Title), p.Value)
	}})
	r.MustRegister(TypeDef{Name: TypeCheckboxField, Kind: KindField, New: func(p Params) Field {
		return withValue(NewCheckboxField(p.Name, p.Title), p.Value)
	}})
	r.MustRegister(TypeDef{Name: TypeDateField, Kind: KindField, New: func(p Params) Field {
		return withValue(NewDateField(p.Name, p.Title), p.Value)
	}})
	r.MustRegister(TypeDef{Name: TypeDropdownField, Kind: KindField, New: func(p Params) Field {
		return withValue(NewDropdownField(p.Name, p.Title, nil), p.Value)
	}})
	r.MustRegister(TypeDef{Name: TypeReadonlyField, Kind: KindField, New: func(p Params) Field {
		return withValue(NewReadonlyField(p.Name, p.Title), p.Value)
	}})
	r.MustRegister(TypeDef{Name: TypeHiddenField, Kind: KindField, New: func(p Params) Field {
		return withValue(NewHiddenField(p.Name), p.Value)
	}})
	r.MustRegister(TypeDef{Name: TypeHeaderField, Kind: KindField, New: func(p Params) Field {
		return NewHeaderField(p.Name, p.Title, p.Level)
	}})
	r.MustRegister(TypeDef{Name: TypeGridField, Kind: KindGrid, New: func(p Params) Field {
		return NewGridField(p.Name, p.Title, p.Relation, p.Config)
	}})
	r.MustRegister(TypeDef{Name: TypeCompositeField, Kind: KindComposite, New: func(p Params) Field {
		return NewCompositeField(p.Children)
	}})
	r.MustRegister(TypeDef{Name: TypeFieldGroup, Kind: KindComposite, New: func(p Params) Field {
		return NewFieldGroup(p.Children)
	}})
	r.MustRegister(TypeDef{Name: TypeToggleCompositeField, Kind: KindToggleComposite, New: func(p Params) Field {
		return NewToggleCompositeField(p.Name, p.Title, p.Children)
	}})
	r.MustRegister(TypeDef{Name: TypeTabSet, Kind: KindContainer, New: func(p Params) Field {
		return NewTabSet(p.Name)
	}})
	r.MustRegister(TypeDef{Name: TypeTab, Kind: KindContainer, New: func(p Params) Field {
		return NewTab(p.Name)
	}})
}
