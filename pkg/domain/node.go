package domain

import (
	"github.com/aretw0/decisiontree/pkg/slug"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind discriminates the three node variants.
type Kind string

const (
	// KindQuestion maps each answer to its own successor.
	KindQuestion Kind = "question"
	// KindFixedNextStateQuestion always advances to the same successor;
	// answers only attach advisory copy.
	KindFixedNextStateQuestion Kind = "fixed_next_state_question"
	// KindOutcome is terminal.
	KindOutcome Kind = "outcome"
)

// Presentation types for questions. The set is open; these are the defaults.
const (
	TypeRadio    = "radio"
	TypeCheckbox = "checkbox"
)

// Copy holds the explicit copy overrides of a tree or node.
// A nil field means "not set" and lets the catalog fallback apply.
type Copy struct {
	DisplayName *string `json:"display_name,omitempty"`
	Explanatory *string `json:"explanatory,omitempty"`
}

// Text returns a pointer to s, for filling Copy fields.
func Text(s string) *string {
	return &s
}

// Node is one vertex of a decision graph.
// The set of implementations is closed: *Question, *FixedNextStateQuestion and *Outcome.
type Node interface {
	Name() string
	Kind() Kind
	Copy() Copy
	node()
}

// Answer maps an answer identifier to the next node of a Question.
type Answer struct {
	ID   string `json:"id"`
	Next string `json:"next"`
}

// Choice is an answer of a FixedNextStateQuestion.
// AdvisoryCopy optionally names supplementary copy shown when the choice is selected.
type Choice struct {
	ID           string `json:"id"`
	AdvisoryCopy string `json:"advisory_copy,omitempty"`
}

// Question routes each declared answer to its own successor.
type Question struct {
	name    string
	typ     string
	copy    Copy
	answers *orderedmap.OrderedMap[string, string]
}

// NewQuestion creates a question. Answer identifiers must be unique and
// non-empty; targets are checked by the owning tree.
// An empty typ defaults to TypeRadio.
func NewQuestion(name, typ string, cp Copy, answers ...Answer) (*Question, error) {
	if name == "" {
		return nil, &BuildError{Reason: "question has no name"}
	}
	if typ == "" {
		typ = TypeRadio
	}

	m := orderedmap.New[string, string]()
	keys := make(map[string]string, len(answers))
	for _, a := range answers {
		if a.ID == "" {
			return nil, &BuildError{Node: name, Reason: "answer has no identifier"}
		}
		if a.Next == "" {
			return nil, &BuildError{Node: name, Reason: "answer " + a.ID + " has no next node"}
		}
		if _, present := m.Set(a.ID, a.Next); present {
			return nil, &BuildError{Node: name, Reason: "answer " + a.ID + " declared twice"}
		}
		if err := claimAnswerKey(keys, name, a.ID); err != nil {
			return nil, err
		}
	}

	return &Question{name: name, typ: typ, copy: cp, answers: m}, nil
}

func (q *Question) Name() string { return q.name }
func (q *Question) Kind() Kind   { return KindQuestion }
func (q *Question) Copy() Copy   { return q.copy }
func (q *Question) node()        {}

// Type returns the presentation tag.
func (q *Question) Type() string { return q.typ }

// Answers returns the answers in declaration order.
func (q *Question) Answers() []Answer {
	out := make([]Answer, 0, q.answers.Len())
	for pair := q.answers.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Answer{ID: pair.Key, Next: pair.Value})
	}
	return out
}

// Next returns the successor for answer id.
func (q *Question) Next(id string) (string, bool) {
	return q.answers.Get(id)
}

// FixedNextStateQuestion always advances to NextQuestion, whatever is selected.
// Several choices may be selected at once.
type FixedNextStateQuestion struct {
	name    string
	typ     string
	next    string
	copy    Copy
	choices *orderedmap.OrderedMap[string, string]
}

// NewFixedNextStateQuestion creates a fixed next state question.
// An empty typ defaults to TypeCheckbox.
func NewFixedNextStateQuestion(name, next, typ string, cp Copy, choices ...Choice) (*FixedNextStateQuestion, error) {
	if name == "" {
		return nil, &BuildError{Reason: "question has no name"}
	}
	if next == "" {
		return nil, &BuildError{Node: name, Reason: "fixed next state question has no next question"}
	}
	if typ == "" {
		typ = TypeCheckbox
	}

	m := orderedmap.New[string, string]()
	keys := make(map[string]string, len(choices))
	for _, c := range choices {
		if c.ID == "" {
			return nil, &BuildError{Node: name, Reason: "answer has no identifier"}
		}
		if _, present := m.Set(c.ID, c.AdvisoryCopy); present {
			return nil, &BuildError{Node: name, Reason: "answer " + c.ID + " declared twice"}
		}
		if err := claimAnswerKey(keys, name, c.ID); err != nil {
			return nil, err
		}
	}

	return &FixedNextStateQuestion{name: name, typ: typ, next: next, copy: cp, choices: m}, nil
}

func (q *FixedNextStateQuestion) Name() string { return q.name }
func (q *FixedNextStateQuestion) Kind() Kind   { return KindFixedNextStateQuestion }
func (q *FixedNextStateQuestion) Copy() Copy   { return q.copy }
func (q *FixedNextStateQuestion) node()        {}

// Type returns the presentation tag.
func (q *FixedNextStateQuestion) Type() string { return q.typ }

// NextQuestion returns the fixed successor.
func (q *FixedNextStateQuestion) NextQuestion() string { return q.next }

// Choices returns the answers in declaration order.
func (q *FixedNextStateQuestion) Choices() []Choice {
	out := make([]Choice, 0, q.choices.Len())
	for pair := q.choices.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Choice{ID: pair.Key, AdvisoryCopy: pair.Value})
	}
	return out
}

// Advisory returns the advisory copy identifier attached to choice id.
// The boolean reports whether the choice is declared; the identifier may be empty.
func (q *FixedNextStateQuestion) Advisory(id string) (string, bool) {
	return q.choices.Get(id)
}

// claimAnswerKey records the matching key of id, failing when another answer
// of the node already normalizes to it ("yes" and "Yes").
func claimAnswerKey(keys map[string]string, node, id string) error {
	key := slug.AnswerKey(id)
	if key == "" {
		return nil
	}
	if other, clash := keys[key]; clash {
		return &BuildError{Node: node, Reason: "answer " + id + " matches the same input as " + other}
	}
	keys[key] = id
	return nil
}

// Outcome is a terminal node.
type Outcome struct {
	name string
	copy Copy
}

// NewOutcome creates an outcome.
func NewOutcome(name string, cp Copy) (*Outcome, error) {
	if name == "" {
		return nil, &BuildError{Reason: "outcome has no name"}
	}
	return &Outcome{name: name, copy: cp}, nil
}

func (o *Outcome) Name() string { return o.name }
func (o *Outcome) Kind() Kind   { return KindOutcome }
func (o *Outcome) Copy() Copy   { return o.copy }
func (o *Outcome) node()        {}

// AnswerIDs returns the legal answer identifiers of n, in declaration order.
// Outcomes have none.
func AnswerIDs(n Node) []string {
	var ids []string
	switch v := n.(type) {
	case *Question:
		for _, a := range v.Answers() {
			ids = append(ids, a.ID)
		}
	case *FixedNextStateQuestion:
		for _, c := range v.Choices() {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// IsTerminal reports whether navigation can never advance past n.
func IsTerminal(n Node) bool {
	_, ok := n.(*Outcome)
	return ok
}

// Type returns the presentation tag of n, or "" for outcomes.
func Type(n Node) string {
	switch v := n.(type) {
	case *Question:
		return v.Type()
	case *FixedNextStateQuestion:
		return v.Type()
	}
	return ""
}

// Successors returns the distinct node names reachable from n in one step,
// in declaration order.
func Successors(n Node) []string {
	switch v := n.(type) {
	case *Question:
		seen := make(map[string]bool)
		var out []string
		for _, a := range v.Answers() {
			if !seen[a.Next] {
				seen[a.Next] = true
				out = append(out, a.Next)
			}
		}
		return out
	case *FixedNextStateQuestion:
		return []string{v.NextQuestion()}
	}
	return nil
}
