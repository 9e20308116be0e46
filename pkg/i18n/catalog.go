package i18n

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog is an in-memory Lookup.
// Safe for concurrent use; Set is visible to subsequent reads.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCatalog creates a catalog seeded with entries.
func NewCatalog(entries map[string]string) *Catalog {
	c := &Catalog{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		c.entries[k] = v
	}
	return c
}

// Get implements Lookup.
func (c *Catalog) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set adds or replaces an entry.
func (c *Catalog) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Delete removes an entry.
func (c *Catalog) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Entries returns a copy of every entry.
func (c *Catalog) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Keys returns all keys in lexical order.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadYAML builds a catalog from a nested YAML document, flattening mappings
// into dotted keys. When locale is set, only the subtree under that root key
// is loaded (the layout of a Rails-style "en:" file).
func LoadYAML(data []byte, locale string) (*Catalog, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	tree := any(root)
	if locale != "" {
		sub, ok := root[locale]
		if !ok {
			return nil, fmt.Errorf("catalog has no locale %q", locale)
		}
		tree = sub
	}

	entries := make(map[string]string)
	if err := flatten("", tree, entries); err != nil {
		return nil, err
	}
	return &Catalog{entries: entries}, nil
}

func flatten(prefix string, v any, out map[string]string) error {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}

	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if err := flatten(join(k), child, out); err != nil {
				return err
			}
		}
	case map[any]any:
		for k, child := range val {
			if err := flatten(join(fmt.Sprint(k)), child, out); err != nil {
				return err
			}
		}
	case nil:
		// Empty leaves carry no copy.
	case []any:
		return fmt.Errorf("catalog key %q: lists are not supported", prefix)
	default:
		if prefix == "" {
			return fmt.Errorf("catalog root must be a mapping")
		}
		out[prefix] = fmt.Sprint(val)
	}
	return nil
}

// Chain consults each lookup in order and returns the first hit.
// Nil lookups are skipped.
func Chain(lookups ...Lookup) Lookup {
	return LookupFunc(func(key string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l.Get(key); ok {
				return v, true
			}
		}
		return "", false
	})
}
