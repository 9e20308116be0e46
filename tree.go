package decisiontree

import (
	"log/slog"

	"github.com/aretw0/decisiontree/internal/logging"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/i18n"
	"github.com/aretw0/decisiontree/pkg/slug"
)

// Tree is a named decision graph together with a single traversal cursor.
//
// The node registry is fixed once New returns. The cursor mutates on every
// navigation call; a Tree is not safe for concurrent use. Use Clone to get an
// independent cursor per user session.
type Tree struct {
	name string
	copy domain.Copy
	tags string

	nodes map[string]domain.Node
	order []string
	slugs map[string]string // slug.Key(name) -> name

	resolver *i18n.Resolver
	logger   *slog.Logger
	hooks    domain.Hooks

	current string
	history []string
	answers map[string][]string
}

// Option defines a functional option for configuring a Tree.
type Option func(*Tree)

// WithCatalog sets the localization lookup used for copy resolution.
func WithCatalog(lookup i18n.Lookup) Option {
	return func(t *Tree) {
		t.resolver = i18n.NewResolver(lookup)
	}
}

// WithDisplayName overrides the tree display name.
func WithDisplayName(s string) Option {
	return func(t *Tree) {
		t.copy.DisplayName = domain.Text(s)
	}
}

// WithExplanatory overrides the tree explanatory copy.
func WithExplanatory(s string) Option {
	return func(t *Tree) {
		t.copy.Explanatory = domain.Text(s)
	}
}

// WithTags sets the free-form tags.
func WithTags(tags string) Option {
	return func(t *Tree) {
		t.tags = tags
	}
}

// WithLogger sets a structured logger for navigation events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(t *Tree) {
		t.hooks = hooks
	}
}

// New assembles a tree from nodes in declaration order. The first node is the
// start node and the cursor is placed on it.
//
// It fails with domain.ErrBuild when a name is declared twice, when two names
// share a slug, or when an answer or fixed next question points to a node
// that is not declared.
func New(name string, nodes []domain.Node, opts ...Option) (*Tree, error) {
	if slug.Key(name) == "" {
		return nil, &domain.BuildError{Tree: name, Reason: "tree needs a name with at least one letter or digit"}
	}

	t := &Tree{
		name:     name,
		nodes:    make(map[string]domain.Node, len(nodes)),
		order:    make([]string, 0, len(nodes)),
		slugs:    make(map[string]string, len(nodes)),
		resolver: i18n.NewResolver(nil),
		logger:   logging.NewNop(),
		answers:  make(map[string][]string),
	}

	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	t.logger = t.logger.With("tree", name)

	for _, n := range nodes {
		if n == nil {
			return nil, &domain.BuildError{Tree: name, Reason: "nil node"}
		}
		id := n.Name()
		if _, dup := t.nodes[id]; dup {
			return nil, &domain.BuildError{Tree: name, Node: id, Reason: "declared twice"}
		}
		key := slug.Key(id)
		if key == "" {
			return nil, &domain.BuildError{Tree: name, Node: id, Reason: "name has no slug form"}
		}
		if other, clash := t.slugs[key]; clash {
			return nil, &domain.BuildError{Tree: name, Node: id, Reason: "slug " + key + " already used by " + other}
		}
		t.nodes[id] = n
		t.slugs[key] = id
		t.order = append(t.order, id)
	}

	for _, id := range t.order {
		for _, next := range domain.Successors(t.nodes[id]) {
			if _, ok := t.nodes[next]; !ok {
				return nil, &domain.BuildError{Tree: name, Node: id, Reason: "points to undeclared node " + next}
			}
		}
	}

	t.reset()
	return t, nil
}

// Name returns the tree identifier.
func (t *Tree) Name() string { return t.name }

// Slug returns the slug form of the tree identifier.
func (t *Tree) Slug() string { return slug.ToSlug(t.name) }

// Tags returns the free-form tags. Tags have no catalog fallback.
func (t *Tree) Tags() string { return t.tags }

// DisplayName resolves the tree display name.
func (t *Tree) DisplayName() string {
	text, _ := t.resolver.Resolve(i18n.FieldDisplayName, t.copy.DisplayName, t.name)
	return text
}

// Explanatory resolves the tree explanatory copy; false when there is none.
func (t *Tree) Explanatory() (string, bool) {
	return t.resolver.Resolve(i18n.FieldExplanatory, t.copy.Explanatory, t.name)
}

// NodeDisplayName resolves the display name of n within this tree.
func (t *Tree) NodeDisplayName(n domain.Node) string {
	text, _ := t.resolver.Resolve(i18n.FieldDisplayName, n.Copy().DisplayName, t.name, n.Name())
	return text
}

// NodeExplanatory resolves the explanatory copy of n; false when there is none.
func (t *Tree) NodeExplanatory(n domain.Node) (string, bool) {
	return t.resolver.Resolve(i18n.FieldExplanatory, n.Copy().Explanatory, t.name, n.Name())
}

// AnswerLabel resolves the label of an answer of n, keyed
// "<tree>.<node>.<answer>.display_name" and defaulting to the humanized id.
func (t *Tree) AnswerLabel(n domain.Node, answerID string) string {
	text, _ := t.resolver.Resolve(i18n.FieldDisplayName, nil, t.name, n.Name(), answerID)
	return text
}

// AdvisoryCopy resolves an advisory copy identifier, keyed
// "<tree>.<advisory>.advisory_copy". There is no derived default.
func (t *Tree) AdvisoryCopy(advisoryID string) (string, bool) {
	if advisoryID == "" {
		return "", false
	}
	return t.resolver.Resolve(i18n.FieldAdvisoryCopy, nil, t.name, advisoryID)
}

// Nodes returns every node in declaration order.
func (t *Tree) Nodes() []domain.Node {
	out := make([]domain.Node, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.nodes[id])
	}
	return out
}

// StartNode returns the first declared node, or nil for an empty tree.
func (t *Tree) StartNode() domain.Node {
	if len(t.order) == 0 {
		return nil
	}
	return t.nodes[t.order[0]]
}

// CurrentNode returns the node under the cursor, or nil for an empty tree.
func (t *Tree) CurrentNode() domain.Node {
	return t.nodes[t.current]
}

// AtStart reports whether the cursor is on the start node.
func (t *Tree) AtStart() bool {
	start := t.StartNode()
	if start == nil {
		return t.current == ""
	}
	return t.current == start.Name()
}

// Clone returns a tree sharing this registry, copy and options, with a fresh
// cursor on the start node.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		name:     t.name,
		copy:     t.copy,
		tags:     t.tags,
		nodes:    t.nodes,
		order:    t.order,
		slugs:    t.slugs,
		resolver: t.resolver,
		logger:   t.logger,
		hooks:    t.hooks,
	}
	c.reset()
	return c
}
