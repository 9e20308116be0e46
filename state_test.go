package decisiontree_test

import (
	"testing"

	"github.com/aretw0/decisiontree/internal/testutils"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RoundTrip(t *testing.T) {
	tree := testutils.VATTree(t)
	require.NoError(t, tree.ProvideAnswer("yes"))
	require.NoError(t, tree.ProvideAnswer("yes"))
	require.NoError(t, tree.ProvideAnswers("racehorse_owners"))

	snapshot := tree.State()
	assert.Equal(t, testutils.VATTreeName, snapshot.Tree)
	assert.Equal(t, "what_is_your_turnover?", snapshot.CurrentNode)

	other := testutils.VATTree(t)
	require.NoError(t, other.Restore(snapshot))
	assert.Equal(t, "what_is_your_turnover?", other.CurrentNode().Name())
	assert.Equal(t, tree.History(), other.History())
	assert.Equal(t, []string{"racehorse_advice"}, other.Advisories())

	snapshot.History[0] = "mutated"
	assert.Equal(t, "are_you_in_business?", other.History()[0], "restore must copy the snapshot")
}

func TestRestore_Rejections(t *testing.T) {
	tree := testutils.VATTree(t)
	require.NoError(t, tree.ProvideAnswer("yes"))

	tests := []struct {
		name  string
		state *domain.State
	}{
		{"Other tree", &domain.State{Tree: "other", CurrentNode: "are_you_in_business?"}},
		{"Unknown current node", &domain.State{Tree: testutils.VATTreeName, CurrentNode: "gone"}},
		{"Empty current node", &domain.State{Tree: testutils.VATTreeName}},
		{"Unknown history", &domain.State{Tree: testutils.VATTreeName, CurrentNode: "are_you_in_business?", History: []string{"gone"}}},
		{"Unknown answers", &domain.State{Tree: testutils.VATTreeName, CurrentNode: "are_you_in_business?", Answers: map[string][]string{"gone": {"x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tree.Restore(tt.state)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, "are_you_based_in_the_uk?", tree.CurrentNode().Name(), "failed restore must not move the cursor")
		})
	}

	assert.Error(t, tree.Restore(nil))
}
