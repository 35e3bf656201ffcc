package parser

import (
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	relationshipExtensionKey = "x-relationships"
	labelExtensionKey        = "x-formscaffold-label"
	extensionNamespace       = "x-formscaffold"
)

// relationTarget names the component an array property relates to. Item
// references win; an explicit x-relationships target is used otherwise.
func relationTarget(schema *openapi3.Schema) (string, bool) {
	if schema.Items != nil && schema.Items.Ref != "" {
		if name := refName(schema.Items.Ref); name != "" {
			return name, true
		}
	}
	rel := relationshipFromExtensions(schema.Extensions)
	if target := rel["target"]; target != "" {
		return target, true
	}
	if schema.Items != nil && schema.Items.Value != nil && schema.Items.Value.Type.Is(openapi3.TypeObject) {
		if title := schema.Items.Value.Title; title != "" {
			return title, true
		}
	}
	return "", false
}

func refName(ref string) string {
	idx := strings.LastIndex(ref, "/")
	if idx < 0 || idx == len(ref)-1 {
		return ""
	}
	return ref[idx+1:]
}

func isManyMany(ext map[string]any) bool {
	switch normaliseKey(relationshipFromExtensions(ext)["type"]) {
	case "manymany", "manytomany", "belongstomany":
		return true
	default:
		return false
	}
}

// relationshipFromExtensions reads the x-relationships extension with its keys
// normalised: `foreign-key`, `foreign_key` and `foreignKey` all become
// "foreignkey". Only string values are kept.
func relationshipFromExtensions(ext map[string]any) map[string]string {
	raw, ok := ext[relationshipExtensionKey].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		str, ok := value.(string)
		if !ok || str == "" {
			continue
		}
		canonical := normaliseKey(key)
		if canonical == "kind" {
			canonical = "type"
		}
		out[canonical] = str
	}
	return out
}

func normaliseKey(raw string) string {
	var builder strings.Builder
	builder.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			builder.WriteRune(unicode.ToLower(r))
		}
	}
	return builder.String()
}

// labelFromExtensions reads `x-formscaffold-label` or `x-formscaffold: {label: ...}`.
func labelFromExtensions(ext map[string]any) string {
	if value, ok := ext[labelExtensionKey].(string); ok && value != "" {
		return value
	}
	if nested, ok := ext[extensionNamespace].(map[string]any); ok {
		if value, ok := nested["label"].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

func setLabel(labels map[string]string, name, label string) map[string]string {
	if labels == nil {
		labels = make(map[string]string)
	}
	labels[name] = label
	return labels
}

func enumSpec(values []any) string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		str, ok := value.(string)
		if !ok {
			continue
		}
		quoted = append(quoted, "'"+strings.ReplaceAll(str, "'", "")+"'")
	}
	return "Enum(" + strings.Join(quoted, ",") + ")"
}
