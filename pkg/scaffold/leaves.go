package scaffold

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formscaffold/pkg/config"
	"github.com/goliatone/go-formscaffold/pkg/form"
)

var headingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

func isHeadingToken(value string) bool {
	lower := strings.ToLower(value)
	for _, level := range headingLevels {
		if lower == level {
			return true
		}
	}
	return false
}

// processLeaves turns an ordered list of field descriptors into fields:
//
//   - heading tokens (`h1`..`h6`) become headings titled after the entry key,
//     or after the token itself for bare list items;
//   - bare names are resolved through resolveField;
//   - composite descriptors become composites named after their key;
//   - keyed mappings without a type resolve the key as a field name so
//     methods can be configured on it;
//   - a keyed `fields` collection is processed in place.
//
// Anything else is skipped unless strict descriptors are enabled.
func (r *run) processLeaves(list config.Node, acc *form.FieldList, cur cursor) (cursor, error) {
	for _, pair := range list.Pairs() {
		if err := r.ctx.Err(); err != nil {
			return cur, err
		}

		var (
			field form.Field
			err   error
		)
		token, isString := pair.Value.AsString()
		desc, isComposite := compositeDescriptor(pair.Value)

		switch {
		case isString && isHeadingToken(token):
			titleKey := pair.Key
			if pair.Positional {
				titleKey = token
			}
			field, err = r.buildHeading(token, titleKey)
		case pair.Positional && pair.Value.IsScalar():
			field, err = r.resolveField(pair.Value.Text())
		case isComposite:
			field, err = r.buildComposite(desc, compositeName(pair))
		case pair.Key == fieldsKey && pair.Value.IsCollection():
			cur, err = r.processLeaves(pair.Value, acc, cur)
			if err != nil {
				return cur, err
			}
			continue
		case !pair.Positional && pair.Value.IsMapping() && !hasKey(pair.Value, "type"):
			field, err = r.resolveField(pair.Key)
		default:
			if r.strict {
				return cur, fmt.Errorf("%w: %s", ErrUnknownDescriptor, describePair(pair))
			}
			continue
		}
		if err != nil {
			return cur, err
		}
		if field == nil {
			continue
		}

		if err := r.applyMethods(field, pair.Value); err != nil {
			return cur, err
		}
		if err := r.insert(field, acc, cur); err != nil {
			return cur, err
		}
	}
	return cur, nil
}

func hasKey(node config.Node, key string) bool {
	_, ok := node.Lookup(key)
	return ok
}

func describePair(pair config.Pair) string {
	if pair.Positional {
		return fmt.Sprintf("item %d (%s)", pair.Index, pair.Value.Kind)
	}
	return fmt.Sprintf("%q (%s)", pair.Key, pair.Value.Kind)
}
