package form

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrMethodArguments is returned when a configuration method receives too few
// arguments or arguments of an unusable type.
var ErrMethodArguments = errors.New("form: invalid method arguments")

// Method is a configuration capability of a field. Arguments are positional.
type Method func(args ...any) error

// KeyValue is an ordered mapping entry passed as a method argument, used where
// argument order matters (e.g. dropdown sources).
type KeyValue struct {
	Key   string
	Value any
}

// MethodSet is the table of configuration methods a field type declares.
type MethodSet struct {
	entries map[string]methodEntry
}

type methodEntry struct {
	name string
	fn   Method
}

// Add registers fn under name, replacing an existing entry with the same
// case-insensitive name.
func (s *MethodSet) Add(name string, fn Method) {
	if fn == nil {
		return
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	if s.entries == nil {
		s.entries = make(map[string]methodEntry)
	}
	s.entries[key] = methodEntry{name: name, fn: fn}
}

// Remove drops a method from the set.
func (s *MethodSet) Remove(name string) {
	delete(s.entries, strings.ToLower(strings.TrimSpace(name)))
}

// Lookup finds a method by case-insensitive name.
func (s *MethodSet) Lookup(name string) (Method, bool) {
	if s == nil || len(s.entries) == 0 {
		return nil, false
	}
	entry, ok := s.entries[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return entry.fn, true
}

// Has reports whether the set declares name.
func (s *MethodSet) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Names returns the declared method names sorted alphabetically.
func (s *MethodSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names
}

func argError(method string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMethodArguments, method, fmt.Sprintf(format, args...))
}

// Arg returns the argument at idx or an error when fewer were supplied.
func Arg(method string, args []any, idx int) (any, error) {
	if idx >= len(args) {
		return nil, argError(method, "expected at least %d argument(s), got %d", idx+1, len(args))
	}
	return args[idx], nil
}

// StringArg converts the argument at idx into a string. Numbers and booleans
// are formatted.
func StringArg(method string, args []any, idx int) (string, error) {
	raw, err := Arg(method, args, idx)
	if err != nil {
		return "", err
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	case int, int64, float64, bool:
		return fmt.Sprint(v), nil
	default:
		return "", argError(method, "argument %d must be a string, got %T", idx+1, raw)
	}
}

// IntArg converts the argument at idx into an int.
func IntArg(method string, args []any, idx int) (int, error) {
	raw, err := Arg(method, args, idx)
	if err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, argError(method, "argument %d must be an integer, got %v", idx+1, v)
		}
		return int(v), nil
	case string:
		n, convErr := strconv.Atoi(strings.TrimSpace(v))
		if convErr != nil {
			return 0, argError(method, "argument %d must be an integer, got %q", idx+1, v)
		}
		return n, nil
	default:
		return 0, argError(method, "argument %d must be an integer, got %T", idx+1, raw)
	}
}

// BoolArg converts the argument at idx into a bool. When the argument is
// missing, def is returned.
func BoolArg(method string, args []any, idx int, def bool) (bool, error) {
	if idx >= len(args) {
		return def, nil
	}
	switch v := args[idx].(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, argError(method, "argument %d must be a boolean, got %q", idx+1, v)
		}
		return parsed, nil
	case nil:
		return def, nil
	default:
		return false, argError(method, "argument %d must be a boolean, got %T", idx+1, args[idx])
	}
}

// OptionsArg converts the argument at idx into an ordered option list. It
// accepts []KeyValue, map[string]any (sorted by key) and []any (values double
// as keys).
func OptionsArg(method string, args []any, idx int) ([]KeyValue, error) {
	raw, err := Arg(method, args, idx)
	if err != nil {
		return nil, err
	}
	switch v := raw.(type) {
	case []KeyValue:
		return append([]KeyValue(nil), v...), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]KeyValue, 0, len(keys))
		for _, key := range keys {
			out = append(out, KeyValue{Key: key, Value: v[key]})
		}
		return out, nil
	case []any:
		out := make([]KeyValue, 0, len(v))
		for _, item := range v {
			label := fmt.Sprint(item)
			out = append(out, KeyValue{Key: label, Value: label})
		}
		return out, nil
	case []string:
		out := make([]KeyValue, 0, len(v))
		for _, item := range v {
			out = append(out, KeyValue{Key: item, Value: item})
		}
		return out, nil
	default:
		return nil, argError(method, "argument %d must be a mapping or list, got %T", idx+1, raw)
	}
}
