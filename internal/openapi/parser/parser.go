package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formscaffold/pkg/config"
	pkgopenapi "github.com/goliatone/go-formscaffold/pkg/openapi"
	"github.com/goliatone/go-formscaffold/pkg/record"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	if options.DefaultStringLength <= 0 {
		options.DefaultStringLength = 255
	}
	return &Parser{options: options}
}

// Models converts every component schema into a record model. Property order
// follows the document; kin-openapi only exposes properties as a map, so the
// raw payload is re-read through the ordered configuration parser.
func (p *Parser) Models(ctx context.Context, doc pkgopenapi.Document) (map[string]record.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if p.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi parser: document declares no component schemas")
	}

	order := propertyOrder(raw, doc.Location())
	models := make(map[string]record.Model, len(spec.Components.Schemas))
	for _, name := range sortedKeys(spec.Components.Schemas) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if len(ref.Value.Properties) == 0 && !p.options.IncludeNonObjects {
			continue
		}
		models[name] = p.convertModel(name, ref.Value, order[name])
	}
	return models, nil
}

func (p *Parser) convertModel(name string, schema *openapi3.Schema, declared []string) record.Model {
	model := record.Model{Name: name}
	for _, prop := range orderedProperties(schema.Properties, declared) {
		propRef := schema.Properties[prop]
		if propRef == nil || propRef.Value == nil {
			continue
		}
		value := propRef.Value

		if label := labelFromExtensions(value.Extensions); label != "" {
			model.Labels = setLabel(model.Labels, prop, label)
		} else if value.Title != "" {
			model.Labels = setLabel(model.Labels, prop, value.Title)
		}

		if value.Type.Is(openapi3.TypeArray) {
			if target, ok := relationTarget(value); ok {
				def := record.RelationDef{Name: prop, Target: target}
				if isManyMany(value.Extensions) {
					model.ManyMany = append(model.ManyMany, def)
				} else {
					model.HasMany = append(model.HasMany, def)
				}
				continue
			}
		}
		if propRef.Ref != "" {
			// has-one references carry no scalar column of their own
			continue
		}
		model.Fields = append(model.Fields, record.DBField{Name: prop, Spec: p.fieldSpec(value)})
	}
	return model
}

// fieldSpec maps a property schema to a database field spec understood by
// record.TypeRules.
func (p *Parser) fieldSpec(schema *openapi3.Schema) string {
	switch {
	case schema.Type.Is(openapi3.TypeBoolean):
		return "Boolean"
	case schema.Type.Is(openapi3.TypeInteger):
		if schema.Format == "int64" {
			return "BigInt"
		}
		return "Int"
	case schema.Type.Is(openapi3.TypeNumber):
		return "Decimal"
	case schema.Type.Is(openapi3.TypeString):
		if len(schema.Enum) > 0 {
			return enumSpec(schema.Enum)
		}
		switch schema.Format {
		case "date":
			return "Date"
		case "date-time":
			return "Datetime"
		case "html":
			return "HTMLText"
		}
		length := p.options.DefaultStringLength
		if schema.MaxLength != nil && *schema.MaxLength > 0 {
			length = int(*schema.MaxLength)
		}
		return fmt.Sprintf("Varchar(%d)", length)
	default:
		return "Text"
	}
}

func sortedKeys(schemas openapi3.Schemas) []string {
	keys := make([]string, 0, len(schemas))
	for key := range schemas {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// orderedProperties returns declared names first, then any remaining
// properties (merged through allOf, for example) alphabetically.
func orderedProperties(props openapi3.Schemas, declared []string) []string {
	seen := make(map[string]bool, len(props))
	out := make([]string, 0, len(props))
	for _, name := range declared {
		if _, ok := props[name]; ok && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range sortedKeys(props) {
		if !seen[name] {
			out = append(out, name)
		}
	}
	return out
}

// propertyOrder reads components.schemas.*.properties key order from the raw
// document. Parse failures yield no ordering and the caller falls back to
// alphabetical order.
func propertyOrder(raw []byte, location string) map[string][]string {
	root, err := config.Parse(raw, location)
	if err != nil {
		return nil
	}
	components, _ := root.Lookup("components")
	schemas, _ := components.Lookup("schemas")
	out := make(map[string][]string, schemas.Len())
	for _, entry := range schemas.Entries {
		props, ok := entry.Value.Lookup("properties")
		if !ok {
			continue
		}
		names := make([]string, 0, props.Len())
		for _, prop := range props.Entries {
			names = append(names, prop.Key)
		}
		out[entry.Key] = names
	}
	return out
}
