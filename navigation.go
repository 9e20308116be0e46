package decisiontree

import (
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/slug"
)

// Lookup resolves a node by identifier, then by slug. A trailing question
// mark is optional in the slug form.
func (t *Tree) Lookup(ref string) (domain.Node, error) {
	if n, ok := t.nodes[ref]; ok {
		return n, nil
	}
	if id, ok := t.slugs[slug.Key(ref)]; ok {
		return t.nodes[id], nil
	}
	return nil, &domain.NotFoundError{Tree: t.name, Ref: ref}
}

// SetState moves the cursor to the referenced node without validating any
// answer. The cursor is unchanged when the node does not exist.
func (t *Tree) SetState(ref string) error {
	n, err := t.Lookup(ref)
	if err != nil {
		return err
	}
	t.moveTo(n.Name(), nil, true)
	return nil
}

// Reset moves the cursor back to the start node and forgets recorded answers.
func (t *Tree) Reset() {
	from := t.current
	t.reset()
	if from != t.current {
		t.emitTransition(from, t.current, nil, true)
	}
}

func (t *Tree) reset() {
	t.current = ""
	t.history = nil
	t.answers = make(map[string][]string)
	if start := t.StartNode(); start != nil {
		t.current = start.Name()
		t.history = []string{t.current}
	}
}

// ProvideAnswer submits a single answer for the current node.
// Matching is exact first, then case-insensitive on the symbolized form, so
// "No" selects the answer "no".
func (t *Tree) ProvideAnswer(answer string) error {
	return t.ProvideAnswers(answer)
}

// ProvideAnswers submits answers for the current node.
//
// A Question takes exactly one answer and advances to the node mapped to it.
// A FixedNextStateQuestion takes any set of its declared answers, including
// none, and always advances to its next question. An Outcome accepts nothing.
// Every answer is validated before the cursor moves; on failure the error
// wraps domain.ErrInvalidAnswer and the cursor is unchanged.
func (t *Tree) ProvideAnswers(answers ...string) error {
	node := t.CurrentNode()
	if node == nil {
		return t.reject("", answers, "tree has no nodes")
	}

	switch n := node.(type) {
	case *domain.Question:
		if len(answers) != 1 {
			return t.reject(n.Name(), answers, "a question takes exactly one answer")
		}
		id, ok := matchAnswer(domain.AnswerIDs(n), answers[0])
		if !ok {
			return t.reject(n.Name(), answers, "not a declared answer")
		}
		next, _ := n.Next(id)
		t.answers[n.Name()] = []string{id}
		t.moveTo(next, []string{id}, false)
		return nil

	case *domain.FixedNextStateQuestion:
		declared := domain.AnswerIDs(n)
		ids := make([]string, 0, len(answers))
		seen := make(map[string]bool, len(answers))
		for _, a := range answers {
			id, ok := matchAnswer(declared, a)
			if !ok {
				return t.reject(n.Name(), answers, "not a declared answer: "+a)
			}
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		t.answers[n.Name()] = ids
		t.moveTo(n.NextQuestion(), ids, false)
		return nil

	case *domain.Outcome:
		return t.reject(n.Name(), answers, "outcome is a terminal state")

	default:
		return t.reject(node.Name(), answers, "node accepts no answers")
	}
}

// History returns the nodes visited so far, start node first.
func (t *Tree) History() []string {
	return append([]string(nil), t.history...)
}

// Answers returns the last accepted answers of a node.
func (t *Tree) Answers(nodeName string) []string {
	return append([]string(nil), t.answers[nodeName]...)
}

// Advisories returns the advisory copy identifiers attached by the answers
// selected so far, in declaration order of nodes and answers.
func (t *Tree) Advisories() []string {
	var out []string
	for _, id := range t.order {
		q, ok := t.nodes[id].(*domain.FixedNextStateQuestion)
		if !ok {
			continue
		}
		selected := make(map[string]bool)
		for _, a := range t.answers[id] {
			selected[a] = true
		}
		for _, c := range q.Choices() {
			if selected[c.ID] && c.AdvisoryCopy != "" {
				out = append(out, c.AdvisoryCopy)
			}
		}
	}
	return out
}

func (t *Tree) moveTo(to string, answers []string, forced bool) {
	from := t.current
	t.current = to
	t.history = append(t.history, to)
	t.emitTransition(from, to, answers, forced)
}

func (t *Tree) emitTransition(from, to string, answers []string, forced bool) {
	t.logger.Debug("transition", "from", from, "to", to, "answers", answers, "forced", forced)
	if t.hooks.OnTransition != nil {
		t.hooks.OnTransition(&domain.TransitionEvent{
			Tree:    t.name,
			From:    from,
			To:      to,
			Answers: answers,
			Forced:  forced,
		})
	}
}

func (t *Tree) reject(node string, answers []string, reason string) error {
	err := &domain.InvalidAnswerError{
		Tree:    t.name,
		Node:    node,
		Answers: append([]string(nil), answers...),
		Reason:  reason,
	}
	t.logger.Debug("answer rejected", "node", node, "error", err)
	if t.hooks.OnRejected != nil {
		t.hooks.OnRejected(&domain.RejectionEvent{
			Tree:    t.name,
			Node:    node,
			Answers: err.Answers,
			Err:     err,
		})
	}
	return err
}

// matchAnswer finds the declared identifier matching input: exact match
// first, then by symbolized form ignoring a trailing question mark.
func matchAnswer(declared []string, input string) (string, bool) {
	for _, id := range declared {
		if id == input {
			return id, true
		}
	}
	want := slug.AnswerKey(input)
	if want == "" {
		return "", false
	}
	for _, id := range declared {
		if slug.AnswerKey(id) == want {
			return id, true
		}
	}
	return "", false
}
