package i18n

import (
	"strings"

	"github.com/aretw0/decisiontree/pkg/slug"
)

// Field names the piece of copy being resolved. It is the last segment of the
// lookup key.
type Field string

const (
	FieldDisplayName  Field = "display_name"
	FieldExplanatory  Field = "explanatory"
	FieldAdvisoryCopy Field = "advisory_copy"
)

// Lookup is the localization catalog consumed by the resolver.
// A missing key is not an error: Get reports false and the next fallback applies.
type Lookup interface {
	Get(key string) (string, bool)
}

// LookupFunc adapts a plain function to Lookup.
type LookupFunc func(key string) (string, bool)

// Get implements Lookup.
func (f LookupFunc) Get(key string) (string, bool) {
	return f(key)
}

// Key joins path segments and a field into a dotted catalog key,
// e.g. Key(FieldExplanatory, "vat", "are_you_in_business?") is
// "vat.are_you_in_business?.explanatory".
func Key(field Field, path ...string) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, path...)
	return strings.Join(append(parts, string(field)), ".")
}

// Resolver applies the copy fallback chain: explicit value, then catalog,
// then (display names only) the humanized identifier.
// It never caches, so catalog changes are visible on the next read.
type Resolver struct {
	lookup Lookup
}

// NewResolver creates a resolver backed by lookup. A nil lookup disables the
// catalog tier.
func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve returns the text for field at path. The last path segment is the
// identifier that gets humanized when nothing else matches.
// The boolean is false only when no text exists at all.
func (r *Resolver) Resolve(field Field, explicit *string, path ...string) (string, bool) {
	if explicit != nil {
		return *explicit, true
	}

	if r != nil && r.lookup != nil && len(path) > 0 {
		if text, ok := r.lookup.Get(Key(field, path...)); ok {
			return text, true
		}
	}

	if field == FieldDisplayName && len(path) > 0 {
		return slug.Humanize(path[len(path)-1]), true
	}
	return "", false
}
