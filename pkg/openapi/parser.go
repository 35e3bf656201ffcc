package openapi

import (
	"context"

	"github.com/goliatone/go-formscaffold/pkg/record"
)

// Parser converts the component schemas of an OpenAPI document into record
// models keyed by schema name.
type Parser interface {
	Models(ctx context.Context, doc Document) (map[string]record.Model, error)
}

// ParserOptions configures schema conversion.
type ParserOptions struct {
	// ResolveReferences validates the document and allows external $ref
	// resolution. Defaults to true.
	ResolveReferences bool

	// IncludeNonObjects keeps component schemas that declare no properties.
	// They become models without fields.
	IncludeNonObjects bool

	// DefaultStringLength is the Varchar length used for strings without
	// maxLength. Defaults to 255.
	DefaultStringLength int
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles validation and external reference
// resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithNonObjectSchemas keeps property-less component schemas.
func WithNonObjectSchemas(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.IncludeNonObjects = enabled
	}
}

// WithDefaultStringLength sets the Varchar length for unbounded strings.
func WithDefaultStringLength(length int) ParserOption {
	return func(opts *ParserOptions) {
		if length > 0 {
			opts.DefaultStringLength = length
		}
	}
}

// NewParserOptions applies ParserOption functions over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		ResolveReferences:   true,
		DefaultStringLength: 255,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
