package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a document holds no content.
var ErrEmptyDocument = errors.New("config: document is empty")

// Parse decodes a YAML or JSON document into a Node, preserving the declared
// order of mapping keys. Source is only used in error messages.
func Parse(data []byte, source string) (Node, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Node{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Node{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	node, err := FromYAML(&root)
	if err != nil {
		return Node{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	return node, nil
}

// FromYAML converts a yaml.v3 node tree into a Node.
func FromYAML(node *yaml.Node) (Node, error) {
	return convert(node, 0)
}

// maxDepth bounds alias expansion so self-referencing anchors cannot recurse
// forever.
const maxDepth = 512

func convert(node *yaml.Node, depth int) (Node, error) {
	if node == nil {
		return Null(), nil
	}
	if depth > maxDepth {
		return Node{}, errors.New("nesting too deep")
	}

	switch node.Kind {
	case 0:
		return Null(), nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return convert(node.Content[0], depth+1)
	case yaml.AliasNode:
		return convert(node.Alias, depth+1)
	case yaml.MappingNode:
		entries := make([]Entry, 0, len(node.Content)/2)
		for idx := 0; idx+1 < len(node.Content); idx += 2 {
			keyNode := node.Content[idx]
			if keyNode.Kind == yaml.AliasNode {
				keyNode = keyNode.Alias
			}
			if keyNode == nil || keyNode.Kind != yaml.ScalarNode {
				return Node{}, fmt.Errorf("line %d: mapping keys must be scalars", node.Content[idx].Line)
			}
			value, err := convert(node.Content[idx+1], depth+1)
			if err != nil {
				return Node{}, err
			}
			entries = append(entries, Entry{Key: keyNode.Value, Value: value})
		}
		return Mapping(entries...), nil
	case yaml.SequenceNode:
		items := make([]Node, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := convert(child, depth+1)
			if err != nil {
				return Node{}, err
			}
			items = append(items, value)
		}
		return Sequence(items...), nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return Node{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return Scalar(value), nil
	default:
		return Node{}, fmt.Errorf("line %d: unsupported node kind %v", node.Line, node.Kind)
	}
}
