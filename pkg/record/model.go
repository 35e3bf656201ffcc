package record

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DBField is a scalar database field declaration such as
// `Title: Varchar(255)`.
type DBField struct {
	Name string
	Spec string
}

// RelationDef is a relation declaration such as `Comments: Comment`.
type RelationDef struct {
	Name   string
	Target string
}

// Model describes an object type: its scalar fields, relations and labels.
// Field and relation order is the declaration order.
type Model struct {
	Name     string
	Fields   []DBField
	HasMany  []RelationDef
	ManyMany []RelationDef
	Labels   map[string]string
}

// FieldNames lists the database field names.
func (m Model) FieldNames() []string {
	out := make([]string, len(m.Fields))
	for idx, field := range m.Fields {
		out[idx] = field.Name
	}
	return out
}

// Field returns the declaration for name.
func (m Model) Field(name string) (DBField, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return DBField{}, false
}

// Relation returns the has-many or many-many declaration for name.
func (m Model) Relation(name string) (RelationDef, bool) {
	for _, rel := range m.HasMany {
		if rel.Name == name {
			return rel, true
		}
	}
	for _, rel := range m.ManyMany {
		if rel.Name == name {
			return rel, true
		}
	}
	return RelationDef{}, false
}

func relationNames(defs []RelationDef) []string {
	out := make([]string, len(defs))
	for idx, def := range defs {
		out[idx] = def.Name
	}
	return out
}

// UnmarshalYAML decodes a model declaration:
//
//	db:
//	  Title: Varchar(255)
//	has_many:
//	  Comments: Comment
//	many_many:
//	  Tags: Tag
//	labels:
//	  Title: Page title
//
// Mappings are read through the node API so declaration order survives.
func (m *Model) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("record: model must be a mapping, got %s", nodeKind(node))
	}
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		key := node.Content[idx].Value
		value := node.Content[idx+1]
		switch strings.ToLower(key) {
		case "name":
			m.Name = value.Value
		case "db", "fields":
			pairs, err := orderedStrings(value)
			if err != nil {
				return fmt.Errorf("record: model %s: %w", key, err)
			}
			m.Fields = m.Fields[:0]
			for _, pair := range pairs {
				m.Fields = append(m.Fields, DBField{Name: pair[0], Spec: pair[1]})
			}
		case "has_many", "hasmany":
			defs, err := relationDefs(value)
			if err != nil {
				return fmt.Errorf("record: model %s: %w", key, err)
			}
			m.HasMany = defs
		case "many_many", "manymany":
			defs, err := relationDefs(value)
			if err != nil {
				return fmt.Errorf("record: model %s: %w", key, err)
			}
			m.ManyMany = defs
		case "labels", "field_labels":
			labels := make(map[string]string)
			if err := value.Decode(&labels); err != nil {
				return fmt.Errorf("record: model %s: %w", key, err)
			}
			m.Labels = labels
		default:
			return fmt.Errorf("record: unknown model key %q (line %d)", key, node.Content[idx].Line)
		}
	}
	return nil
}

func relationDefs(node *yaml.Node) ([]RelationDef, error) {
	pairs, err := orderedStrings(node)
	if err != nil {
		return nil, err
	}
	defs := make([]RelationDef, 0, len(pairs))
	for _, pair := range pairs {
		defs = append(defs, RelationDef{Name: pair[0], Target: pair[1]})
	}
	return defs, nil
}

// orderedStrings reads a mapping of string to string in declaration order.
func orderedStrings(node *yaml.Node) ([][2]string, error) {
	switch node.Kind {
	case yaml.MappingNode:
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		fallthrough
	default:
		return nil, fmt.Errorf("expected mapping, got %s", nodeKind(node))
	}
	out := make([][2]string, 0, len(node.Content)/2)
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		key := node.Content[idx]
		value := node.Content[idx+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("value for %q must be a string (line %d)", key.Value, value.Line)
		}
		out = append(out, [2]string{key.Value, value.Value})
	}
	return out, nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
