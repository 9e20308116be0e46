package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore implementation
// adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	sample := func() *domain.State {
		return &domain.State{
			Tree:        "should_i_register_for_vat?",
			CurrentNode: "what_is_your_turnover?",
			History: []string{
				"are_you_in_business?",
				"are_you_based_in_the_uk?",
				"does_your_business_operate_in_any_of_these_sectors?",
				"what_is_your_turnover?",
			},
			Answers: map[string][]string{
				"are_you_in_business?": {"yes"},
				"does_your_business_operate_in_any_of_these_sectors?": {"retail_sector", "racehorse_owners"},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		state := sample()
		require.NoError(t, store.Save(ctx, sessionID, state), "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		state := sample()
		state.CurrentNode = "you_can_register_for_vat"
		state.History = append(state.History, "you_can_register_for_vat")
		require.NoError(t, store.Save(ctx, sessionID, state))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "you_can_register_for_vat", loaded.CurrentNode)
		assert.Len(t, loaded.History, 5)
	})

	t.Run("Isolation", func(t *testing.T) {
		state := sample()
		require.NoError(t, store.Save(ctx, sessionID, state))

		// Mutating the saved value or a loaded copy must not leak into the store.
		state.History[0] = "mutated"
		state.Answers["are_you_in_business?"][0] = "mutated"
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.History = nil

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, sample(), again)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, sample()))

		err := store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")

		assert.NoError(t, store.Delete(ctx, sessionID), "Deleting twice should not fail")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		require.NoError(t, store.Save(ctx, id1, sample()))
		require.NoError(t, store.Save(ctx, id2, sample()))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
