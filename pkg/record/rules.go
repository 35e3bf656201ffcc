package record

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

// FieldSpec is a parsed database field spec: `Varchar(255)` has base
// "Varchar" and args ["255"].
type FieldSpec struct {
	Raw  string
	Base string
	Args []string
}

// ParseFieldSpec splits a spec into its base type and quoted or bare
// arguments.
func ParseFieldSpec(raw string) FieldSpec {
	spec := FieldSpec{Raw: strings.TrimSpace(raw)}
	open := strings.IndexByte(spec.Raw, '(')
	if open < 0 {
		spec.Base = spec.Raw
		return spec
	}
	spec.Base = strings.TrimSpace(spec.Raw[:open])
	inner := spec.Raw[open+1:]
	if end := strings.LastIndexByte(inner, ')'); end >= 0 {
		inner = inner[:end]
	}
	spec.Args = splitArgs(inner)
	return spec
}

func splitArgs(inner string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		touched bool
	)
	flush := func() {
		if touched || strings.TrimSpace(current.String()) != "" {
			args = append(args, strings.TrimSpace(current.String()))
		}
		current.Reset()
		touched = false
	}
	for _, r := range inner {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			current.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			touched = true
		case r == ',':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return args
}

// EnumOptions returns the options of an Enum spec. Both
// `Enum('Draft,Published', 'Draft')` and `Enum('Draft', 'Published')` are
// accepted; in the first form the second argument is the default.
func (s FieldSpec) EnumOptions() (options []string, def string) {
	if len(s.Args) == 0 {
		return nil, ""
	}
	if strings.Contains(s.Args[0], ",") {
		for _, item := range strings.Split(s.Args[0], ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				options = append(options, trimmed)
			}
		}
		if len(s.Args) > 1 {
			def = s.Args[1]
		}
		return options, def
	}
	return append([]string(nil), s.Args...), ""
}

// RuleMatcher decides whether a rule handles a field spec.
type RuleMatcher func(spec FieldSpec) bool

type typeRule struct {
	fieldType string
	priority  int
	match     RuleMatcher
	order     int
}

// TypeRules chooses the form field type for a database field spec. Higher
// priority wins; ties fall back to registration order. Specs no rule matches
// become text fields.
type TypeRules struct {
	mu    sync.RWMutex
	rules []typeRule
}

// NewTypeRules constructs the rule set with the built-in mappings.
func NewTypeRules() *TypeRules {
	rules := &TypeRules{}
	rules.registerBuiltins()
	return rules
}

// Register adds a matcher resolving to fieldType.
func (r *TypeRules) Register(fieldType string, priority int, matcher RuleMatcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(fieldType)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, typeRule{
		fieldType: trimmed,
		priority:  priority,
		match:     matcher,
		order:     len(r.rules),
	})
}

// Resolve returns the form field type name for spec.
func (r *TypeRules) Resolve(spec FieldSpec) string {
	if r == nil {
		return form.TypeTextField
	}
	r.mu.RLock()
	rules := append([]typeRule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, rule := range rules {
		if rule.match(spec) {
			return rule.fieldType
		}
	}
	return form.TypeTextField
}

func baseIn(names ...string) RuleMatcher {
	return func(spec FieldSpec) bool {
		for _, name := range names {
			if strings.EqualFold(spec.Base, name) {
				return true
			}
		}
		return false
	}
}

func (r *TypeRules) registerBuiltins() {
	r.Register(form.TypeCheckboxField, 50, baseIn("Boolean"))
	r.Register(form.TypeNumericField, 40, baseIn("Int", "BigInt", "Decimal", "Float", "Double", "Currency", "Percentage"))
	r.Register(form.TypeDateField, 40, baseIn("Date", "Datetime", "DBDatetime"))
	r.Register(form.TypeDropdownField, 30, baseIn("Enum"))
	r.Register(form.TypeTextareaField, 20, baseIn("Text", "HTMLText", "HTMLFragment"))
}
