package formscaffold

import (
	"context"
	"fmt"
	"sort"

	internalLoader "github.com/goliatone/go-formscaffold/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formscaffold/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-formscaffold/pkg/openapi"
	"github.com/goliatone/go-formscaffold/pkg/record"
)

// NewModelLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewModelLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewModelParser constructs a parser backed by the internal implementation.
func NewModelParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// LoadCatalog loads src and registers every component schema as a record
// model, in name order. Nil loader or parser fall back to the defaults.
func LoadCatalog(ctx context.Context, src pkgopenapi.Source, loader pkgopenapi.Loader, parser pkgopenapi.Parser, opts ...record.MemoryOption) (*record.Catalog, error) {
	if loader == nil {
		loader = NewModelLoader(pkgopenapi.WithDefaultSources())
	}
	if parser == nil {
		parser = NewModelParser()
	}

	doc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	models, err := parser.Models(ctx, doc)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)

	catalog := record.NewCatalog(opts...)
	for _, name := range names {
		if err := catalog.AddModel(models[name]); err != nil {
			return nil, fmt.Errorf("formscaffold: register model: %w", err)
		}
	}
	return catalog, nil
}
