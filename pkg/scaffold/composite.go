package scaffold

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-formscaffold/pkg/config"
	"github.com/goliatone/go-formscaffold/pkg/form"
	"github.com/goliatone/go-formscaffold/pkg/slug"
)

const (
	togglePrefix  = "Toggle"
	headingPrefix = "Heading"
)

type descriptor struct {
	typeName string
	fields   config.Node
}

// compositeDescriptor matches mappings with a string `type` and a `fields`
// collection. Whether the type is actually composite is checked when the
// composite is built.
func compositeDescriptor(node config.Node) (descriptor, bool) {
	if !node.IsMapping() {
		return descriptor{}, false
	}
	typeNode, ok := node.Lookup("type")
	if !ok {
		return descriptor{}, false
	}
	typeName, ok := typeNode.AsString()
	if !ok || typeName == "" {
		return descriptor{}, false
	}
	fields, ok := node.Lookup(fieldsKey)
	if !ok || !fields.IsCollection() {
		return descriptor{}, false
	}
	return descriptor{typeName: typeName, fields: fields}, true
}

// buildComposite constructs the composite described by desc. Inner fields are
// built by walking `{fields: <desc.fields>}` into a fresh list with tab mode
// off, so they are never routed to tabs.
func (r *run) buildComposite(desc descriptor, name string) (form.Field, error) {
	def, err := r.registry.Get(desc.typeName)
	if err != nil || !def.Kind.IsComposite() {
		return nil, fmt.Errorf("%w: %q is not a composite field type", ErrInvalidFieldType, desc.typeName)
	}

	children := form.NewFieldList()
	inner := config.Mapping(config.E(fieldsKey, desc.fields))
	if _, err := r.walk(inner, children, cursor{}); err != nil {
		return nil, err
	}

	params := form.Params{Children: children}
	if def.Kind == form.KindToggleComposite {
		params.Name = togglePrefix + slug.Make(name)
		params.Title = name
	}
	field := def.New(params)
	if field == nil {
		return nil, fmt.Errorf("scaffold: type %q constructor returned nil", def.Name)
	}
	if name != "" {
		field.SetName(slug.Make(name))
		field.SetTitle(name)
	}

	r.logger.Debug("scaffold: built composite",
		"type", def.Name,
		"name", field.Name(),
		"children", children.Len(),
	)
	return field, nil
}

// buildHeading constructs a heading for a level token titled after titleKey.
func (r *run) buildHeading(level, titleKey string) (form.Field, error) {
	n, err := strconv.Atoi(normalizeHeadingLevel(level))
	if err != nil {
		n = 0
	}
	return r.registry.Create(form.TypeHeaderField, form.Params{
		Name:  headingPrefix + slug.Make(titleKey),
		Title: r.rec.FieldLabel(titleKey),
		Level: n,
	})
}

// normalizeHeadingLevel strips the `h` from tokens such as "h3". Single
// character levels are returned unchanged.
func normalizeHeadingLevel(level string) string {
	if len(level) > 1 {
		return level[1:2]
	}
	return level
}
