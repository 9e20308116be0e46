package http

import (
	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/slug"
)

// TreeSummary is the listing form of a tree.
type TreeSummary struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
	Explanatory string `json:"explanatory,omitempty"`
	Tags        string `json:"tags,omitempty"`
}

// TreeView is a tree with its full node list, in declaration order.
type TreeView struct {
	TreeSummary
	StartNode string     `json:"start_node,omitempty"`
	Nodes     []NodeView `json:"nodes"`
}

// NodeView is a node with its copy resolved.
type NodeView struct {
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Kind        domain.Kind  `json:"kind"`
	Type        string       `json:"type,omitempty"`
	DisplayName string       `json:"display_name"`
	Explanatory string       `json:"explanatory,omitempty"`
	Next        string       `json:"next,omitempty"`
	Answers     []AnswerView `json:"answers,omitempty"`
	Terminal    bool         `json:"terminal"`
}

type AnswerView struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Next         string `json:"next,omitempty"`
	AdvisoryCopy string `json:"advisory_copy,omitempty"`
}

// SessionView is the state of a traversal as clients see it.
type SessionView struct {
	ID         string              `json:"id"`
	Tree       string              `json:"tree"`
	Current    *NodeView           `json:"current,omitempty"`
	AtStart    bool                `json:"at_start"`
	Terminal   bool                `json:"terminal"`
	History    []string            `json:"history"`
	Answers    map[string][]string `json:"answers,omitempty"`
	Advisories []AdvisoryView      `json:"advisories,omitempty"`
}

type AdvisoryView struct {
	ID   string `json:"id"`
	Text string `json:"text,omitempty"`
}

func summarize(t *decisiontree.Tree) TreeSummary {
	s := TreeSummary{
		Name:        t.Name(),
		Slug:        t.Slug(),
		DisplayName: t.DisplayName(),
		Tags:        t.Tags(),
	}
	s.Explanatory, _ = t.Explanatory()
	return s
}

func treeView(t *decisiontree.Tree) TreeView {
	v := TreeView{TreeSummary: summarize(t)}
	if start := t.StartNode(); start != nil {
		v.StartNode = start.Name()
	}
	for _, n := range t.Nodes() {
		v.Nodes = append(v.Nodes, nodeView(t, n))
	}
	return v
}

func nodeView(t *decisiontree.Tree, n domain.Node) NodeView {
	v := NodeView{
		Name:        n.Name(),
		Slug:        slug.ToSlug(n.Name()),
		Kind:        n.Kind(),
		Type:        domain.Type(n),
		DisplayName: t.NodeDisplayName(n),
		Terminal:    domain.IsTerminal(n),
	}
	v.Explanatory, _ = t.NodeExplanatory(n)

	switch q := n.(type) {
	case *domain.Question:
		for _, a := range q.Answers() {
			v.Answers = append(v.Answers, AnswerView{ID: a.ID, Label: t.AnswerLabel(n, a.ID), Next: a.Next})
		}
	case *domain.FixedNextStateQuestion:
		v.Next = q.NextQuestion()
		for _, c := range q.Choices() {
			v.Answers = append(v.Answers, AnswerView{ID: c.ID, Label: t.AnswerLabel(n, c.ID), AdvisoryCopy: c.AdvisoryCopy})
		}
	}
	return v
}

func sessionView(id string, t *decisiontree.Tree) SessionView {
	state := t.State()
	v := SessionView{
		ID:      id,
		Tree:    t.Name(),
		AtStart: t.AtStart(),
		History: state.History,
		Answers: state.Answers,
	}
	if n := t.CurrentNode(); n != nil {
		nv := nodeView(t, n)
		v.Current = &nv
		v.Terminal = nv.Terminal
	}
	for _, id := range t.Advisories() {
		text, _ := t.AdvisoryCopy(id)
		v.Advisories = append(v.Advisories, AdvisoryView{ID: id, Text: text})
	}
	return v
}
