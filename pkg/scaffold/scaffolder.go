package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/goliatone/go-formscaffold/internal/ctxlog"
	"github.com/goliatone/go-formscaffold/pkg/config"
	"github.com/goliatone/go-formscaffold/pkg/form"
	"github.com/goliatone/go-formscaffold/pkg/record"
)

// Option customises the scaffolder configuration.
type Option func(*Scaffolder)

// WithConfigSource supplies per object type field configuration.
func WithConfigSource(source config.Source) Option {
	return func(s *Scaffolder) {
		s.source = source
	}
}

// WithRegistry injects the field type registry used to construct fields.
func WithRegistry(registry *form.Registry) Option {
	return func(s *Scaffolder) {
		s.registry = registry
	}
}

// WithFallback replaces the generator used for object types without
// configuration.
func WithFallback(fallback Fallback) Option {
	return func(s *Scaffolder) {
		s.fallback = fallback
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scaffolder) {
		s.logger = logger
	}
}

// WithStrictDescriptors makes unrecognised field descriptors an error instead
// of skipping them.
func WithStrictDescriptors(strict bool) Option {
	return func(s *Scaffolder) {
		s.strict = strict
	}
}

// WithFieldTypes registers default field name to type overrides. Request
// overrides take precedence.
func WithFieldTypes(types map[string]string) Option {
	return func(s *Scaffolder) {
		if len(types) == 0 {
			return
		}
		if s.fieldTypes == nil {
			s.fieldTypes = make(map[string]string, len(types))
		}
		for name, typ := range types {
			s.fieldTypes[name] = typ
		}
	}
}

// WithTabbed enables tabbed output for every call.
func WithTabbed(tabbed bool) Option {
	return func(s *Scaffolder) {
		s.tabbed = tabbed
	}
}

// WithIncludeRelations lets the fallback generator add relation grids.
func WithIncludeRelations(include bool) Option {
	return func(s *Scaffolder) {
		s.includeRelations = include
	}
}

// WithRestrictFields limits the fallback generator to the named fields.
func WithRestrictFields(names ...string) Option {
	return func(s *Scaffolder) {
		s.restrictFields = append([]string(nil), names...)
	}
}

// Scaffolder builds field lists for records. It is immutable after New, so a
// single instance can serve concurrent calls.
type Scaffolder struct {
	source           config.Source
	registry         *form.Registry
	fallback         Fallback
	logger           *slog.Logger
	strict           bool
	fieldTypes       map[string]string
	tabbed           bool
	includeRelations bool
	restrictFields   []string
}

// New constructs a Scaffolder applying any provided options. A missing
// registry or fallback is replaced with the built-in implementation.
func New(options ...Option) *Scaffolder {
	s := &Scaffolder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.registry == nil {
		s.registry = form.NewRegistry()
	}
	if s.fallback == nil {
		s.fallback = &DefaultScaffolder{Registry: s.registry}
	}
	return s
}

// Request carries the per-call options of a scaffold call. Zero values fall
// back to the scaffolder's options; field types are merged with request
// entries winning.
type Request struct {
	// FieldTypes maps field names to the type that should be constructed for
	// them instead of the scaffolded default.
	FieldTypes map[string]string

	// Tabbed groups output under a root tab set.
	Tabbed bool

	// IncludeRelations and RestrictFields are only read by the fallback
	// generator.
	IncludeRelations bool
	RestrictFields   []string
}

func (s *Scaffolder) resolve(req Request) Request {
	out := Request{
		Tabbed:           req.Tabbed || s.tabbed,
		IncludeRelations: req.IncludeRelations || s.includeRelations,
		RestrictFields:   req.RestrictFields,
	}
	if len(out.RestrictFields) == 0 {
		out.RestrictFields = s.restrictFields
	}
	if len(s.fieldTypes)+len(req.FieldTypes) > 0 {
		out.FieldTypes = make(map[string]string, len(s.fieldTypes)+len(req.FieldTypes))
		for name, typ := range s.fieldTypes {
			out.FieldTypes[name] = typ
		}
		for name, typ := range req.FieldTypes {
			out.FieldTypes[name] = typ
		}
	}
	return out
}

// Scaffold builds the field list for rec. When the record's object type has
// no usable configuration the fallback generator's result is returned as is.
func (s *Scaffolder) Scaffold(ctx context.Context, rec record.Record, req Request) (*form.FieldList, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("scaffold: record is nil")
	}

	req = s.resolve(req)
	if err := s.validateFieldTypes(req.FieldTypes); err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx, s.logger).With("object_type", rec.ObjectType())

	cfg, ok := s.fieldConfig(rec.ObjectType())
	if !ok {
		logger.Debug("scaffold: no field configuration, using fallback")
		fields, err := s.fallback.Scaffold(ctx, rec, req)
		if err != nil {
			return nil, fmt.Errorf("scaffold: fallback: %w", err)
		}
		return fields, nil
	}

	r := &run{
		ctx:      ctx,
		registry: s.registry,
		rec:      rec,
		types:    req.FieldTypes,
		strict:   s.strict,
		logger:   logger,
		params: record.ScaffoldParams{
			Tabbed:           req.Tabbed,
			IncludeRelations: req.IncludeRelations,
			RestrictFields:   req.RestrictFields,
			FieldTypes:       req.FieldTypes,
		},
	}

	acc := form.NewFieldList()
	if req.Tabbed {
		acc.Push(form.NewTabSet("Root"))
	}
	if _, err := r.walk(cfg, acc, cursor{tabbed: req.Tabbed}); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Scaffolder) fieldConfig(objectType string) (config.Node, bool) {
	if s.source == nil {
		return config.Node{}, false
	}
	cfg, ok := s.source.FieldConfig(objectType)
	if !ok || !cfg.IsMapping() || cfg.Len() == 0 {
		return config.Node{}, false
	}
	return cfg, true
}

func (s *Scaffolder) validateFieldTypes(types map[string]string) error {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !s.registry.Has(types[name]) {
			return fmt.Errorf("%w: override for %q names unknown type %q", ErrInvalidFieldType, name, types[name])
		}
	}
	return nil
}

// run holds the state shared by one scaffold call. Tab state is not part of
// it; the cursor is threaded through the traversal instead.
type run struct {
	ctx      context.Context
	registry *form.Registry
	rec      record.Record
	types    map[string]string
	params   record.ScaffoldParams
	strict   bool
	logger   *slog.Logger
}

// cursor is the tab state of a traversal.
type cursor struct {
	tabbed bool
	tab    string
}
