package scaffold

import (
	"fmt"

	"github.com/goliatone/go-formscaffold/pkg/config"
	"github.com/goliatone/go-formscaffold/pkg/form"
)

// applyMethods invokes the `methods` configured on a mapping descriptor in
// declaration order. Methods the field does not declare are skipped.
// Sequence arguments are passed positionally; any other value is passed as
// the single argument.
func (r *run) applyMethods(field form.Field, desc config.Node) error {
	if !desc.IsMapping() {
		return nil
	}
	methods, ok := desc.Lookup("methods")
	if !ok || !methods.IsCollection() {
		return nil
	}
	for _, pair := range methods.Pairs() {
		if pair.Positional {
			continue
		}
		method, ok := field.Method(pair.Key)
		if !ok {
			continue
		}
		if err := method(methodArgs(pair.Value)...); err != nil {
			return fmt.Errorf("scaffold: field %q: %s: %w", field.Name(), pair.Key, err)
		}
	}
	return nil
}

func methodArgs(node config.Node) []any {
	if !node.IsSequence() {
		return []any{argValue(node)}
	}
	args := make([]any, len(node.Items))
	for idx, item := range node.Items {
		args[idx] = argValue(item)
	}
	return args
}

// argValue converts a node to a method argument. Mappings keep their order
// as []form.KeyValue.
func argValue(node config.Node) any {
	switch node.Kind {
	case config.KindScalar:
		return node.Scalar
	case config.KindMapping:
		out := make([]form.KeyValue, len(node.Entries))
		for idx, entry := range node.Entries {
			out[idx] = form.KeyValue{Key: entry.Key, Value: argValue(entry.Value)}
		}
		return out
	case config.KindSequence:
		out := make([]any, len(node.Items))
		for idx, item := range node.Items {
			out[idx] = argValue(item)
		}
		return out
	default:
		return nil
	}
}
