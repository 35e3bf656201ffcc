package config

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/copystructure"
)

// Kind classifies a configuration node.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is a single configuration value. Exactly one of Scalar, Entries or
// Items is meaningful, selected by Kind.
type Node struct {
	Kind    Kind
	Scalar  any
	Entries []Entry
	Items   []Node
}

// Entry is a key/value pair of a mapping node.
type Entry struct {
	Key   string
	Value Node
}

// Pair is the unified view over mapping entries and sequence items used by
// the scaffolder. Positional pairs come from sequences and carry no key.
type Pair struct {
	Key        string
	Index      int
	Positional bool
	Value      Node
}

// Null returns the null node.
func Null() Node {
	return Node{Kind: KindNull}
}

// Scalar wraps a plain value. Nil produces a null node.
func Scalar(value any) Node {
	if value == nil {
		return Null()
	}
	return Node{Kind: KindScalar, Scalar: value}
}

// Mapping builds a mapping node preserving the given entry order.
func Mapping(entries ...Entry) Node {
	return Node{Kind: KindMapping, Entries: entries}
}

// Sequence builds a sequence node.
func Sequence(items ...Node) Node {
	return Node{Kind: KindSequence, Items: items}
}

// E is shorthand for constructing an Entry.
func E(key string, value Node) Entry {
	return Entry{Key: key, Value: value}
}

// Strings builds a sequence of string scalars.
func Strings(values ...string) Node {
	items := make([]Node, len(values))
	for idx, value := range values {
		items[idx] = Scalar(value)
	}
	return Sequence(items...)
}

func (n Node) IsNull() bool       { return n.Kind == KindNull }
func (n Node) IsScalar() bool     { return n.Kind == KindScalar }
func (n Node) IsMapping() bool    { return n.Kind == KindMapping }
func (n Node) IsSequence() bool   { return n.Kind == KindSequence }
func (n Node) IsCollection() bool { return n.Kind == KindMapping || n.Kind == KindSequence }

// Len reports the number of entries or items. Scalars and null have length 0.
func (n Node) Len() int {
	switch n.Kind {
	case KindMapping:
		return len(n.Entries)
	case KindSequence:
		return len(n.Items)
	default:
		return 0
	}
}

// Lookup returns the value stored under key in a mapping node. When a key is
// declared more than once the last declaration wins.
func (n Node) Lookup(key string) (Node, bool) {
	if n.Kind != KindMapping {
		return Node{}, false
	}
	for idx := len(n.Entries) - 1; idx >= 0; idx-- {
		if n.Entries[idx].Key == key {
			return n.Entries[idx].Value, true
		}
	}
	return Node{}, false
}

// AsString returns the scalar as a string when it holds one.
func (n Node) AsString() (string, bool) {
	if n.Kind != KindScalar {
		return "", false
	}
	str, ok := n.Scalar.(string)
	return str, ok
}

// Text formats any scalar as a string, used for keys and labels.
func (n Node) Text() string {
	if n.Kind != KindScalar {
		return ""
	}
	if str, ok := n.Scalar.(string); ok {
		return str
	}
	return fmt.Sprint(n.Scalar)
}

// Pairs returns the node's children in declaration order. Mapping entries
// become keyed pairs and sequence items positional pairs, except that a
// sequence item that is a single-key mapping is flattened into a keyed pair:
//
//	fields:
//	  - Title
//	  - Details: {type: CompositeField, fields: [...]}
//
// yields a positional "Title" followed by a keyed "Details".
func (n Node) Pairs() []Pair {
	switch n.Kind {
	case KindMapping:
		pairs := make([]Pair, len(n.Entries))
		for idx, entry := range n.Entries {
			pairs[idx] = Pair{Key: entry.Key, Index: idx, Value: entry.Value}
		}
		return pairs
	case KindSequence:
		pairs := make([]Pair, len(n.Items))
		for idx, item := range n.Items {
			if item.Kind == KindMapping && len(item.Entries) == 1 {
				entry := item.Entries[0]
				pairs[idx] = Pair{Key: entry.Key, Index: idx, Value: entry.Value}
				continue
			}
			pairs[idx] = Pair{Index: idx, Positional: true, Value: item}
		}
		return pairs
	default:
		return nil
	}
}

// Interface converts the node into plain Go values: map[string]any for
// mappings, []any for sequences and the scalar itself otherwise.
func (n Node) Interface() any {
	switch n.Kind {
	case KindScalar:
		return n.Scalar
	case KindMapping:
		out := make(map[string]any, len(n.Entries))
		for _, entry := range n.Entries {
			out[entry.Key] = entry.Value.Interface()
		}
		return out
	case KindSequence:
		out := make([]any, len(n.Items))
		for idx, item := range n.Items {
			out[idx] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	copied, err := copystructure.Copy(n)
	if err != nil {
		return n
	}
	cloned, ok := copied.(Node)
	if !ok {
		return n
	}
	return cloned
}
