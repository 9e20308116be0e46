package decisiontree

import (
	"fmt"

	"github.com/aretw0/decisiontree/pkg/domain"
)

// State snapshots the cursor, history and recorded answers.
func (t *Tree) State() *domain.State {
	s := &domain.State{
		Tree:        t.name,
		CurrentNode: t.current,
		History:     t.History(),
	}
	if len(t.answers) > 0 {
		s.Answers = make(map[string][]string, len(t.answers))
		for k, v := range t.answers {
			s.Answers[k] = append([]string(nil), v...)
		}
	}
	return s
}

// Restore applies a snapshot taken from a tree with the same name.
// Every node the snapshot mentions must exist; otherwise the error wraps
// domain.ErrNotFound and the tree is left untouched.
func (t *Tree) Restore(s *domain.State) error {
	if s == nil {
		return fmt.Errorf("restore %q: nil state", t.name)
	}
	if s.Tree != t.name {
		return &domain.NotFoundError{Ref: s.Tree}
	}

	check := func(id string) error {
		if _, ok := t.nodes[id]; !ok {
			return &domain.NotFoundError{Tree: t.name, Ref: id}
		}
		return nil
	}

	if s.CurrentNode == "" {
		if len(t.order) > 0 {
			return &domain.NotFoundError{Tree: t.name, Ref: s.CurrentNode}
		}
	} else if err := check(s.CurrentNode); err != nil {
		return err
	}
	for _, id := range s.History {
		if err := check(id); err != nil {
			return err
		}
	}
	for id := range s.Answers {
		if err := check(id); err != nil {
			return err
		}
	}

	c := s.Clone()
	t.current = c.CurrentNode
	t.history = c.History
	t.answers = c.Answers
	if t.answers == nil {
		t.answers = make(map[string][]string)
	}
	return nil
}
