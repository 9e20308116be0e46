package ports

import "github.com/aretw0/decisiontree"

// TreeSource resolves trees by name or slug.
// *decisiontree.Registry is the canonical implementation.
type TreeSource interface {
	// Lookup returns the registered tree. Its cursor must not be moved;
	// use Open for a traversal.
	Lookup(ref string) (*decisiontree.Tree, error)

	// Open returns an independent traversal positioned at the start node.
	Open(ref string) (*decisiontree.Tree, error)

	// Names lists the registered tree names in registration order.
	Names() []string
}
