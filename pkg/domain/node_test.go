package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	q, err := domain.NewQuestion("are_you_in_business?", "", domain.Copy{},
		domain.Answer{ID: "no", Next: "you_cannot_register_for_vat"},
		domain.Answer{ID: "yes", Next: "are_you_based_in_the_uk?"},
	)
	require.NoError(t, err)

	assert.Equal(t, "are_you_in_business?", q.Name())
	assert.Equal(t, domain.KindQuestion, q.Kind())
	assert.Equal(t, domain.TypeRadio, q.Type())
	assert.Equal(t, []string{"no", "yes"}, domain.AnswerIDs(q))

	next, ok := q.Next("no")
	assert.True(t, ok)
	assert.Equal(t, "you_cannot_register_for_vat", next)

	_, ok = q.Next("maybe")
	assert.False(t, ok)
}

func TestNewQuestion_Errors(t *testing.T) {
	tests := []struct {
		name    string
		node    string
		answers []domain.Answer
	}{
		{"No name", "", nil},
		{"Duplicate answer", "q", []domain.Answer{{ID: "a", Next: "x"}, {ID: "a", Next: "y"}}},
		{"Empty answer id", "q", []domain.Answer{{ID: "", Next: "x"}}},
		{"Empty target", "q", []domain.Answer{{ID: "a", Next: ""}}},
		{"Answers differ only in case", "q", []domain.Answer{{ID: "yes", Next: "x"}, {ID: "Yes", Next: "y"}}},
		{"Answers differ only in separators", "q", []domain.Answer{{ID: "under_70k", Next: "x"}, {ID: "under-70k", Next: "y"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewQuestion(tt.node, "", domain.Copy{}, tt.answers...)
			assert.ErrorIs(t, err, domain.ErrBuild)
		})
	}
}

func TestFixedNextStateQuestion_AnswerKeyClash(t *testing.T) {
	_, err := domain.NewFixedNextStateQuestion("sectors", "turnover", "", domain.Copy{},
		domain.Choice{ID: "retail_sector"},
		domain.Choice{ID: "Retail Sector?"},
	)
	require.ErrorIs(t, err, domain.ErrBuild)

	var buildErr *domain.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "sectors", buildErr.Node)
	assert.Contains(t, buildErr.Reason, "retail_sector")
}

func TestFixedNextStateQuestion(t *testing.T) {
	q, err := domain.NewFixedNextStateQuestion("sectors?", "what_is_your_turnover?", "", domain.Copy{},
		domain.Choice{ID: "racehorse_owners", AdvisoryCopy: "racehorse_advice"},
		domain.Choice{ID: "none_of_the_above_apply"},
	)
	require.NoError(t, err)

	assert.Equal(t, domain.KindFixedNextStateQuestion, q.Kind())
	assert.Equal(t, domain.TypeCheckbox, q.Type())
	assert.Equal(t, "what_is_your_turnover?", q.NextQuestion())
	assert.Equal(t, []string{"what_is_your_turnover?"}, domain.Successors(q))

	adv, ok := q.Advisory("racehorse_owners")
	assert.True(t, ok)
	assert.Equal(t, "racehorse_advice", adv)

	adv, ok = q.Advisory("none_of_the_above_apply")
	assert.True(t, ok)
	assert.Empty(t, adv)

	_, err = domain.NewFixedNextStateQuestion("q", "", "", domain.Copy{})
	assert.ErrorIs(t, err, domain.ErrBuild)

	_, err = domain.NewFixedNextStateQuestion("q", "n", "", domain.Copy{},
		domain.Choice{ID: "a"}, domain.Choice{ID: "a"})
	assert.ErrorIs(t, err, domain.ErrBuild)
}

func TestOutcome(t *testing.T) {
	o, err := domain.NewOutcome("done", domain.Copy{Explanatory: domain.Text("It's possible")})
	require.NoError(t, err)

	assert.True(t, domain.IsTerminal(o))
	assert.Empty(t, domain.AnswerIDs(o))
	assert.Empty(t, domain.Successors(o))
	assert.Empty(t, domain.Type(o))
	assert.Equal(t, "It's possible", *o.Copy().Explanatory)

	_, err = domain.NewOutcome("", domain.Copy{})
	assert.ErrorIs(t, err, domain.ErrBuild)
}

func TestSuccessors_Deduplicated(t *testing.T) {
	q, err := domain.NewQuestion("q", "", domain.Copy{},
		domain.Answer{ID: "a", Next: "x"},
		domain.Answer{ID: "b", Next: "y"},
		domain.Answer{ID: "c", Next: "x"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, domain.Successors(q))
}

func TestErrors_Unwrap(t *testing.T) {
	var nf error = &domain.NotFoundError{Tree: "t", Ref: "n"}
	assert.True(t, errors.Is(nf, domain.ErrNotFound))
	assert.False(t, errors.Is(nf, domain.ErrInvalidAnswer))
	assert.Equal(t, `tree "t": no such node "n"`, nf.Error())
	assert.Equal(t, `no such tree "x"`, (&domain.NotFoundError{Ref: "x"}).Error())

	var ia error = &domain.InvalidAnswerError{Tree: "t", Node: "n", Answers: []string{"foo"}, Reason: "undeclared"}
	assert.ErrorIs(t, ia, domain.ErrInvalidAnswer)

	var be error = &domain.BuildError{Tree: "t", Node: "n", Reason: "declared twice"}
	assert.ErrorIs(t, be, domain.ErrBuild)
	assert.Equal(t, `build: tree "t": node "n": declared twice`, be.Error())
}

func TestState_Clone(t *testing.T) {
	s := &domain.State{
		Tree:        "t",
		CurrentNode: "b",
		History:     []string{"a", "b"},
		Answers:     map[string][]string{"a": {"yes"}},
	}
	c := s.Clone()
	c.History[0] = "z"
	c.Answers["a"][0] = "no"

	assert.Equal(t, "a", s.History[0])
	assert.Equal(t, "yes", s.Answers["a"][0])
	assert.Nil(t, (*domain.State)(nil).Clone())
}
