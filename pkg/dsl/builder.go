package dsl

import (
	"errors"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/pkg/domain"
)

// Builder collects the declarations of one tree in order.
// Declaring a node name twice is recorded immediately and reported by Build.
type Builder struct {
	name  string
	meta  []decisiontree.Option
	nodes []nodeBuilder
	seen  map[string]bool
	err   error
}

type nodeBuilder interface {
	build() (domain.Node, error)
}

// New creates a builder for the tree called name.
func New(name string) *Builder {
	return &Builder{
		name: name,
		seen: make(map[string]bool),
	}
}

// Define runs body against a new builder and builds the tree.
func Define(name string, body func(b *Builder), opts ...decisiontree.Option) (*decisiontree.Tree, error) {
	b := New(name)
	if body != nil {
		body(b)
	}
	return b.Build(opts...)
}

// MustDefine is like Define but panics on error.
// Intended for package-level tree variables.
func MustDefine(name string, body func(b *Builder), opts ...decisiontree.Option) *decisiontree.Tree {
	t, err := Define(name, body, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// DisplayName sets the tree display name. The last call wins.
func (b *Builder) DisplayName(s string) *Builder {
	b.meta = append(b.meta, decisiontree.WithDisplayName(s))
	return b
}

// Explanatory sets the tree explanatory copy. The last call wins.
func (b *Builder) Explanatory(s string) *Builder {
	b.meta = append(b.meta, decisiontree.WithExplanatory(s))
	return b
}

// Tags sets the free-form tags. The last call wins.
func (b *Builder) Tags(s string) *Builder {
	b.meta = append(b.meta, decisiontree.WithTags(s))
	return b
}

// Question declares a question whose answers each route to their own node.
func (b *Builder) Question(name string) *QuestionBuilder {
	q := &QuestionBuilder{name: name}
	b.declare(name, q)
	return q
}

// FixedQuestion declares a fixed next state question: whatever is selected,
// the traversal continues at next.
func (b *Builder) FixedQuestion(name, next string) *FixedQuestionBuilder {
	q := &FixedQuestionBuilder{name: name, next: next}
	b.declare(name, q)
	return q
}

// Outcome declares a terminal node.
func (b *Builder) Outcome(name string) *OutcomeBuilder {
	o := &OutcomeBuilder{name: name}
	b.declare(name, o)
	return o
}

// Err returns the first declaration error, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) declare(name string, nb nodeBuilder) {
	if b.seen[name] {
		if b.err == nil {
			b.err = &domain.BuildError{Tree: b.name, Node: name, Reason: "declared twice"}
		}
		return
	}
	b.seen[name] = true
	b.nodes = append(b.nodes, nb)
}

// Build assembles the tree. opts are applied before the builder's own
// metadata, so DisplayName/Explanatory/Tags declared in the body win.
func (b *Builder) Build(opts ...decisiontree.Option) (*decisiontree.Tree, error) {
	if b.err != nil {
		return nil, b.err
	}

	nodes := make([]domain.Node, 0, len(b.nodes))
	for _, nb := range b.nodes {
		n, err := nb.build()
		if err != nil {
			var be *domain.BuildError
			if errors.As(err, &be) && be.Tree == "" {
				be.Tree = b.name
			}
			return nil, err
		}
		nodes = append(nodes, n)
	}

	all := make([]decisiontree.Option, 0, len(opts)+len(b.meta))
	all = append(all, opts...)
	all = append(all, b.meta...)
	return decisiontree.New(b.name, nodes, all...)
}
