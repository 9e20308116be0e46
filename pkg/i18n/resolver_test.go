package i18n_test

import (
	"testing"

	"github.com/aretw0/decisiontree/pkg/i18n"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "vat.display_name", i18n.Key(i18n.FieldDisplayName, "vat"))
	assert.Equal(t, "vat.are_you_in_business?.explanatory", i18n.Key(i18n.FieldExplanatory, "vat", "are_you_in_business?"))
}

func TestResolver_FallbackChain(t *testing.T) {
	catalog := i18n.NewCatalog(map[string]string{
		"vat.based_in_uk?.display_name": "Are you based in the United Kingdom?",
		"vat.based_in_uk?.explanatory":  "England, Scotland, Wales, NI",
	})
	r := i18n.NewResolver(catalog)
	explicit := "Explicit wins"

	t.Run("Explicit value has highest precedence", func(t *testing.T) {
		text, ok := r.Resolve(i18n.FieldDisplayName, &explicit, "vat", "based_in_uk?")
		assert.True(t, ok)
		assert.Equal(t, "Explicit wins", text)
	})

	t.Run("Explicit empty string is still explicit", func(t *testing.T) {
		empty := ""
		text, ok := r.Resolve(i18n.FieldExplanatory, &empty, "vat", "based_in_uk?")
		assert.True(t, ok)
		assert.Equal(t, "", text)
	})

	t.Run("Catalog before default", func(t *testing.T) {
		text, ok := r.Resolve(i18n.FieldDisplayName, nil, "vat", "based_in_uk?")
		assert.True(t, ok)
		assert.Equal(t, "Are you based in the United Kingdom?", text)
	})

	t.Run("Display name falls back to humanized identifier", func(t *testing.T) {
		text, ok := r.Resolve(i18n.FieldDisplayName, nil, "vat", "are_you_in_business?")
		assert.True(t, ok)
		assert.Equal(t, "Are you in business?", text)
	})

	t.Run("Explanatory has no derived default", func(t *testing.T) {
		text, ok := r.Resolve(i18n.FieldExplanatory, nil, "vat", "are_you_in_business?")
		assert.False(t, ok)
		assert.Empty(t, text)
	})
}

func TestResolver_NoCaching(t *testing.T) {
	catalog := i18n.NewCatalog(nil)
	r := i18n.NewResolver(catalog)

	text, _ := r.Resolve(i18n.FieldDisplayName, nil, "tree")
	assert.Equal(t, "Tree", text)

	catalog.Set("tree.display_name", "Live edit")
	text, _ = r.Resolve(i18n.FieldDisplayName, nil, "tree")
	assert.Equal(t, "Live edit", text)
}

func TestResolver_NilLookup(t *testing.T) {
	r := i18n.NewResolver(nil)
	text, ok := r.Resolve(i18n.FieldDisplayName, nil, "foo")
	assert.True(t, ok)
	assert.Equal(t, "Foo", text)

	_, ok = r.Resolve(i18n.FieldExplanatory, nil, "foo")
	assert.False(t, ok)
}

func TestLookupFunc(t *testing.T) {
	var calls []string
	r := i18n.NewResolver(i18n.LookupFunc(func(key string) (string, bool) {
		calls = append(calls, key)
		return "", false
	}))

	r.Resolve(i18n.FieldExplanatory, nil, "tree", "node")
	assert.Equal(t, []string{"tree.node.explanatory"}, calls)
}
