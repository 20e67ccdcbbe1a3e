// Package inserttag substitutes {{tag::argument}} tokens in editor-entered
// text, the way the host CMS expands them before output.
package inserttag

import (
	"regexp"
	"strings"
)

// Replacer expands insert tags in a text.
type Replacer interface {
	Replace(text string) string
}

// ResolveFunc resolves one tag occurrence from its argument
type ResolveFunc func(arg string) string

var tagPattern = regexp.MustCompile(`\{\{([a-z_]+)(?:::([^}]*))?\}\}`)

// Registry is a Replacer with pluggable per-tag resolvers. Unknown tags
// collapse to an empty string rather than leaking raw tokens into the output.
type Registry struct {
	resolvers map[string]ResolveFunc
}

// NewRegistry creates an empty tag registry
func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[string]ResolveFunc)}
}

// Register adds a resolver for a tag name
func (r *Registry) Register(tag string, fn ResolveFunc) {
	r.resolvers[tag] = fn
}

// Replace expands all insert tags in text
func (r *Registry) Replace(text string) string {
	if !strings.Contains(text, "{{") {
		return text
	}
	return tagPattern.ReplaceAllStringFunc(text, func(token string) string {
		m := tagPattern.FindStringSubmatch(token)
		fn, ok := r.resolvers[m[1]]
		if !ok {
			return ""
		}
		return fn(m[2])
	})
}

// Noop is a Replacer that returns text unchanged, for callers outside the CMS
type Noop struct{}

// Replace returns text unchanged
func (Noop) Replace(text string) string { return text }
