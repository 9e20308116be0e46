package decisiontree

import (
	"sync"

	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/slug"
)

// Registry holds named trees. Trees are resolved by name or slug.
//
// Registered trees act as templates: Open hands out clones so every caller
// gets its own cursor. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	trees map[string]*Tree
	slugs map[string]string
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		trees: make(map[string]*Tree),
		slugs: make(map[string]string),
	}
}

// DefaultRegistry is the process-wide registry used by Register and Open.
// It starts empty; trees are only added by explicit Register calls.
var DefaultRegistry = NewRegistry()

// Register adds t to the default registry.
func Register(t *Tree) error {
	return DefaultRegistry.Register(t)
}

// Open returns a fresh cursor over a tree of the default registry.
func Open(ref string) (*Tree, error) {
	return DefaultRegistry.Open(ref)
}

// Register adds a tree. A second tree with the same name or slug fails with
// domain.ErrBuild.
func (r *Registry) Register(t *Tree) error {
	if t == nil {
		return &domain.BuildError{Reason: "nil tree"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := slug.Key(t.Name())
	if other, ok := r.slugs[key]; ok {
		return &domain.BuildError{Tree: t.Name(), Reason: "already registered as " + other}
	}
	r.trees[t.Name()] = t
	r.slugs[key] = t.Name()
	r.order = append(r.order, t.Name())
	return nil
}

// Lookup returns the registered template tree for a name or slug.
// Navigating the returned tree mutates the shared template; prefer Open.
func (r *Registry) Lookup(ref string) (*Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.trees[ref]; ok {
		return t, nil
	}
	if name, ok := r.slugs[slug.Key(ref)]; ok {
		return r.trees[name], nil
	}
	return nil, &domain.NotFoundError{Ref: ref}
}

// Open returns a clone of the referenced tree with its cursor on the start node.
func (r *Registry) Open(ref string) (*Tree, error) {
	t, err := r.Lookup(ref)
	if err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

// Names returns the registered tree names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
