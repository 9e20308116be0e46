package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/decisiontree/internal/testutils"
	"github.com/aretw0/decisiontree/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(testutils.VATRegistry(t), memory.NewStore())
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		s, err := mgr.Start(ctx, testutils.VATTreeName)
		require.NoError(t, err)
		_, err = mgr.Answer(ctx, s.ID, "no")
		require.NoError(t, err)
		require.NoError(t, mgr.End(ctx, s.ID))
	}
	_ = mgr.WithLock(ctx, "missing", func(ctx context.Context) error {
		return fmt.Errorf("boom")
	})

	assert.Empty(t, mgr.locks, "locks must be released once unused")
}
