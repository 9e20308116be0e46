package dsl

import "github.com/aretw0/decisiontree/pkg/domain"

// QuestionBuilder provides a fluent API for configuring a question.
type QuestionBuilder struct {
	name    string
	typ     string
	copy    domain.Copy
	answers []domain.Answer
}

// Answer maps an answer identifier to the next node.
func (q *QuestionBuilder) Answer(id, next string) *QuestionBuilder {
	q.answers = append(q.answers, domain.Answer{ID: id, Next: next})
	return q
}

// Type sets the presentation tag (default "radio").
func (q *QuestionBuilder) Type(typ string) *QuestionBuilder {
	q.typ = typ
	return q
}

// DisplayName overrides the catalog and humanized display name.
func (q *QuestionBuilder) DisplayName(s string) *QuestionBuilder {
	q.copy.DisplayName = domain.Text(s)
	return q
}

// Explanatory overrides the catalog explanatory copy.
func (q *QuestionBuilder) Explanatory(s string) *QuestionBuilder {
	q.copy.Explanatory = domain.Text(s)
	return q
}

func (q *QuestionBuilder) build() (domain.Node, error) {
	return domain.NewQuestion(q.name, q.typ, q.copy, q.answers...)
}

// FixedQuestionBuilder provides a fluent API for configuring a fixed next state question.
type FixedQuestionBuilder struct {
	name    string
	next    string
	typ     string
	copy    domain.Copy
	choices []domain.Choice
}

// Answer declares a choice with no advisory copy.
func (q *FixedQuestionBuilder) Answer(id string) *FixedQuestionBuilder {
	q.choices = append(q.choices, domain.Choice{ID: id})
	return q
}

// AnswerWithAdvisory declares a choice that attaches advisory copy when selected.
func (q *FixedQuestionBuilder) AnswerWithAdvisory(id, advisoryCopy string) *FixedQuestionBuilder {
	q.choices = append(q.choices, domain.Choice{ID: id, AdvisoryCopy: advisoryCopy})
	return q
}

// Type sets the presentation tag (default "checkbox").
func (q *FixedQuestionBuilder) Type(typ string) *FixedQuestionBuilder {
	q.typ = typ
	return q
}

// DisplayName overrides the catalog and humanized display name.
func (q *FixedQuestionBuilder) DisplayName(s string) *FixedQuestionBuilder {
	q.copy.DisplayName = domain.Text(s)
	return q
}

// Explanatory overrides the catalog explanatory copy.
func (q *FixedQuestionBuilder) Explanatory(s string) *FixedQuestionBuilder {
	q.copy.Explanatory = domain.Text(s)
	return q
}

func (q *FixedQuestionBuilder) build() (domain.Node, error) {
	return domain.NewFixedNextStateQuestion(q.name, q.next, q.typ, q.copy, q.choices...)
}

// OutcomeBuilder provides a fluent API for configuring an outcome.
type OutcomeBuilder struct {
	name string
	copy domain.Copy
}

// DisplayName overrides the catalog and humanized display name.
func (o *OutcomeBuilder) DisplayName(s string) *OutcomeBuilder {
	o.copy.DisplayName = domain.Text(s)
	return o
}

// Explanatory overrides the catalog explanatory copy.
func (o *OutcomeBuilder) Explanatory(s string) *OutcomeBuilder {
	o.copy.Explanatory = domain.Text(s)
	return o
}

func (o *OutcomeBuilder) build() (domain.Node, error) {
	return domain.NewOutcome(o.name, o.copy)
}
