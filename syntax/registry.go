package syntax

import (
	"sort"
	"strings"
)

// Func renders one code block body into b as escaped HTML.
type Func func(b *strings.Builder, src string)

// Bind fixes a Language into a Func,
// hiding its token type behind the closure.
func Bind[T any](lang Language[T]) Func {
	return func(b *strings.Builder, src string) {
		Highlight(b, lang, src)
	}
}

// Registry maps fence tags to highlighters.
// Matching is exact and case-sensitive;
// a language claims each of its aliases as a separate entry.
//
// The zero value is empty and ready to use.
type Registry struct {
	m map[string]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register claims the given tags for fn,
// replacing any previous entries for those tags.
func (r *Registry) Register(fn Func, tags ...string) {
	if r.m == nil {
		r.m = make(map[string]Func)
	}
	for _, tag := range tags {
		r.m[tag] = fn
	}
}

// Lookup reports the highlighter registered for tag, if any.
func (r *Registry) Lookup(tag string) (Func, bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r.m[tag]
	return fn, ok
}

// Tags lists all registered tags in sorted order.
func (r *Registry) Tags() []string {
	if r == nil {
		return nil
	}
	tags := make([]string, 0, len(r.m))
	for tag := range r.m {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
