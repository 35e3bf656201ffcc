package formscaffold

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/goliatone/go-formscaffold/pkg/config"
	"github.com/goliatone/go-formscaffold/pkg/form"
	"github.com/goliatone/go-formscaffold/pkg/record"
	"github.com/goliatone/go-formscaffold/pkg/scaffold"
)

// Request aliases scaffold.Request for callers that only import the root
// package.
type Request = scaffold.Request

// Option configures a Scaffolder.
type Option = scaffold.Option

// Record is the object a field list is scaffolded for.
type Record = record.Record

// NewScaffolder exposes the scaffolder constructor from the top-level module.
func NewScaffolder(options ...Option) *scaffold.Scaffolder {
	return scaffold.New(options...)
}

// Scaffold builds the field list for rec with a one-off scaffolder.
func Scaffold(ctx context.Context, rec Record, req Request, options ...Option) (*form.FieldList, error) {
	return scaffold.New(options...).Scaffold(ctx, rec, req)
}

// NewConfigStore loads every YAML/JSON document in fsys.
func NewConfigStore(fsys fs.FS) (*config.Store, error) {
	return config.LoadFS(fsys)
}

func WithConfigSource(source config.Source) Option { return scaffold.WithConfigSource(source) }

func WithRegistry(registry *form.Registry) Option { return scaffold.WithRegistry(registry) }

func WithFallback(fallback scaffold.Fallback) Option { return scaffold.WithFallback(fallback) }

func WithLogger(logger *slog.Logger) Option { return scaffold.WithLogger(logger) }

func WithStrictDescriptors(strict bool) Option { return scaffold.WithStrictDescriptors(strict) }

func WithFieldTypes(types map[string]string) Option { return scaffold.WithFieldTypes(types) }

func WithTabbed(tabbed bool) Option { return scaffold.WithTabbed(tabbed) }

func WithIncludeRelations(include bool) Option { return scaffold.WithIncludeRelations(include) }

func WithRestrictFields(names ...string) Option { return scaffold.WithRestrictFields(names...) }
