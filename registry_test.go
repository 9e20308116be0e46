package decisiontree_test

import (
	"sync"
	"testing"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/testutils"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LookupByNameAndSlug(t *testing.T) {
	reg := testutils.VATRegistry(t)

	for _, ref := range []string{
		"should_i_register_for_vat?",
		"should-i-register-for-vat",
		"should-i-register-for-vat?",
	} {
		tree, err := reg.Lookup(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, testutils.VATTreeName, tree.Name())
	}

	_, err := reg.Lookup("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = reg.Open("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{testutils.VATTreeName}, reg.Names())
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	reg := testutils.VATRegistry(t)

	err := reg.Register(testutils.VATTree(t))
	assert.ErrorIs(t, err, domain.ErrBuild)

	clash, err := dsl.Define("should-i-register-for-vat", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, reg.Register(clash), domain.ErrBuild)

	assert.ErrorIs(t, reg.Register(nil), domain.ErrBuild)
}

func TestRegistry_OpenGivesIndependentCursors(t *testing.T) {
	reg := testutils.VATRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := reg.Open(testutils.VATTreeName)
			if !assert.NoError(t, err) {
				return
			}
			assert.True(t, tree.AtStart())
			assert.NoError(t, tree.ProvideAnswer("no"))
		}()
	}
	wg.Wait()

	template, err := reg.Lookup(testutils.VATTreeName)
	require.NoError(t, err)
	assert.True(t, template.AtStart(), "opening must never move the template cursor")
}

func TestDefaultRegistry(t *testing.T) {
	tree, err := dsl.Define("default_registry_test", func(b *dsl.Builder) {
		b.Outcome("done")
	})
	require.NoError(t, err)

	require.NoError(t, decisiontree.Register(tree))
	opened, err := decisiontree.Open("default-registry-test")
	require.NoError(t, err)
	assert.Equal(t, "done", opened.CurrentNode().Name())
}
