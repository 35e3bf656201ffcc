package form

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "<") {
		return trimmed
	}
	return strings.TrimSpace(descriptionSanitizer().Sanitize(trimmed))
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "code", "br", "span", "p", "ul", "ol", "li")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowElements("a")
		policy.RequireNoFollowOnLinks(true)
		policy.AllowURLSchemes("http", "https", "mailto")
		descriptionPolicy = policy
	})
	return descriptionPolicy
}
