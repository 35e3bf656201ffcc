package scaffold

import (
	"strings"

	"github.com/goliatone/go-formscaffold/pkg/config"
	"github.com/goliatone/go-formscaffold/pkg/form"
)

const fieldsKey = "fields"

// walk visits node's entries in declaration order. Dotted keys switch the
// active tab, composite descriptors are built and inserted, nested sections
// are walked recursively and `fields` lists are handed to processLeaves.
func (r *run) walk(node config.Node, acc *form.FieldList, cur cursor) (cursor, error) {
	for _, pair := range node.Pairs() {
		if err := r.ctx.Err(); err != nil {
			return cur, err
		}

		key := pair.Key
		if cur.tabbed && !pair.Positional && isTabKey(key) {
			cur.tab = key
		}

		if desc, ok := compositeDescriptor(pair.Value); ok {
			field, err := r.buildComposite(desc, compositeName(pair))
			if err != nil {
				return cur, err
			}
			if err := r.insert(field, acc, cur); err != nil {
				return cur, err
			}
		}

		isFields := !pair.Positional && key == fieldsKey
		var err error
		switch {
		case !isFields && pair.Value.IsCollection():
			cur, err = r.walk(pair.Value, acc, cur)
		case isFields && pair.Value.IsCollection():
			cur, err = r.processLeaves(pair.Value, acc, cur)
		}
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}

// isTabKey reports whether key names a tab path. A dot in first position does
// not count.
func isTabKey(key string) bool {
	return strings.Index(key, ".") > 0
}

func compositeName(pair config.Pair) string {
	if pair.Positional {
		return ""
	}
	return pair.Key
}
