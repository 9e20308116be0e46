package i18n_test

import (
	"testing"

	"github.com/aretw0/decisiontree/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
en:
  just_testing:
    display_name: Just testing from i18n
    explanatory: Just testing explanatory from i18n
  should_i_register_for_vat?:
    explanatory: This is a tool
    are_you_based_in_the_uk?:
      display_name: Are you based in the United Kingdom?
      explanatory: England, Scotland, Wales, NI
    count: 3
    empty:
fr:
  just_testing:
    display_name: Juste un test
`

func TestLoadYAML_Locale(t *testing.T) {
	c, err := i18n.LoadYAML([]byte(catalogYAML), "en")
	require.NoError(t, err)

	v, ok := c.Get("just_testing.display_name")
	assert.True(t, ok)
	assert.Equal(t, "Just testing from i18n", v)

	v, ok = c.Get("should_i_register_for_vat?.are_you_based_in_the_uk?.explanatory")
	assert.True(t, ok)
	assert.Equal(t, "England, Scotland, Wales, NI", v)

	v, ok = c.Get("should_i_register_for_vat?.count")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = c.Get("should_i_register_for_vat?.empty")
	assert.False(t, ok)

	_, ok = c.Get("fr.just_testing.display_name")
	assert.False(t, ok, "other locales must not leak in")
}

func TestLoadYAML_NoLocale(t *testing.T) {
	c, err := i18n.LoadYAML([]byte(catalogYAML), "")
	require.NoError(t, err)

	v, ok := c.Get("fr.just_testing.display_name")
	assert.True(t, ok)
	assert.Equal(t, "Juste un test", v)
}

func TestLoadYAML_Errors(t *testing.T) {
	_, err := i18n.LoadYAML([]byte(catalogYAML), "de")
	assert.Error(t, err)

	_, err = i18n.LoadYAML([]byte("a: [1, 2]"), "")
	assert.Error(t, err)

	_, err = i18n.LoadYAML([]byte("a: [unclosed"), "")
	assert.Error(t, err)
}

func TestCatalog_SetDeleteKeys(t *testing.T) {
	c := i18n.NewCatalog(map[string]string{"b": "2"})
	c.Set("a", "1")
	assert.Equal(t, []string{"a", "b"}, c.Keys())

	c.Delete("b")
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestCatalog_EntriesIsACopy(t *testing.T) {
	c := i18n.NewCatalog(map[string]string{"a": "1"})
	entries := c.Entries()
	entries["a"] = "changed"

	v, _ := c.Get("a")
	assert.Equal(t, "1", v)
}

func TestChain_FirstHitWins(t *testing.T) {
	live := i18n.NewCatalog(map[string]string{"a": "live"})
	file := i18n.NewCatalog(map[string]string{"a": "file", "b": "file"})
	lookup := i18n.Chain(nil, live, file)

	v, ok := lookup.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "live", v)

	v, ok = lookup.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "file", v)

	_, ok = lookup.Get("c")
	assert.False(t, ok)
}
