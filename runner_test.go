package decisiontree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_FullTraversal(t *testing.T) {
	tree := testutils.VATTree(t)
	in := strings.NewReader("yes\n1\nretail sector, 2\nmaybe\nunder_70k\n")
	var out bytes.Buffer

	runner := decisiontree.NewRunner(in, &out)
	require.NoError(t, runner.Run(tree))

	assert.Equal(t, "you_can_register_for_vat", tree.CurrentNode().Name())
	assert.Equal(t, []string{"retail_sector", "barristers_and_advocates"},
		tree.Answers("does_your_business_operate_in_any_of_these_sectors?"))

	output := out.String()
	assert.Contains(t, output, "Should I register for VAT?")
	assert.Contains(t, output, "This is a tool")
	assert.Contains(t, output, "Are you based in the United Kingdom?")
	assert.Contains(t, output, "1. Under 70k")
	assert.Contains(t, output, `Sorry, "maybe" is not a valid answer.`)
	assert.Contains(t, output, "It's possible")
	assert.Contains(t, output, "Advice for barristers")
}

func TestRunner_ExitAndEOF(t *testing.T) {
	t.Run("Exit", func(t *testing.T) {
		tree := testutils.VATTree(t)
		var out bytes.Buffer
		require.NoError(t, decisiontree.NewRunner(strings.NewReader("exit\n"), &out).Run(tree))
		assert.True(t, tree.AtStart())
		assert.Contains(t, out.String(), "Bye!")
	})

	t.Run("EOF", func(t *testing.T) {
		tree := testutils.VATTree(t)
		var out bytes.Buffer
		require.NoError(t, decisiontree.NewRunner(strings.NewReader("no"), &out).Run(tree))
		assert.Equal(t, "you_cannot_register_for_vat", tree.CurrentNode().Name())
	})
}

func TestRunner_RendererAndHeadline(t *testing.T) {
	tree := testutils.VATTree(t)
	require.NoError(t, tree.SetState("you_can_register_for_vat"))

	var out bytes.Buffer
	runner := &decisiontree.Runner{
		Input:    strings.NewReader(""),
		Output:   &out,
		Headless: true,
		Renderer: func(s string) (string, error) { return "<" + s + ">", nil },
		Headline: strings.ToUpper,
	}
	require.NoError(t, runner.Run(tree))

	assert.Contains(t, out.String(), "YOU CAN REGISTER FOR VAT")
	assert.Contains(t, out.String(), "<It's possible>")
	assert.NotContains(t, out.String(), "This is a tool", "headless skips the tree banner")
}

func TestRunner_RequiresIO(t *testing.T) {
	tree := testutils.VATTree(t)
	assert.Error(t, (&decisiontree.Runner{}).Run(tree))
	assert.Error(t, (&decisiontree.Runner{Input: strings.NewReader("")}).Run(tree))
}

func TestRunner_Banner(t *testing.T) {
	tree := testutils.VATTree(t)
	var out bytes.Buffer
	var title string

	runner := decisiontree.NewRunner(strings.NewReader("exit\n"), &out)
	runner.Banner = func(s string) { title = s }
	require.NoError(t, runner.Run(tree))

	assert.Equal(t, "Should I register for VAT?", title)
	assert.Contains(t, out.String(), "This is a tool")
	assert.Contains(t, out.String(), "Bye!")
}
