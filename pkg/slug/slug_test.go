package slug_test

import (
	"testing"

	"github.com/aretw0/decisiontree/pkg/slug"
	"github.com/stretchr/testify/assert"
)

func TestToSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"are_you_in_business?", "are-you-in-business?"},
		{"are-you-in-business", "are-you-in-business"},
		{"Are you in business?", "are-you-in-business?"},
		{"what_is_your_turnover?", "what-is-your-turnover?"},
		{"under_70k", "under-70k"},
		{"  __odd__name__ ", "odd-name"},
		{"?", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.ToSlug(tt.in))
		})
	}
}

func TestFromSlug_RoundTrip(t *testing.T) {
	ids := []string{
		"are_you_in_business?",
		"you_cannot_register_for_vat",
		"under_70k",
		"should_i_register_for_vat?",
	}
	for _, id := range ids {
		assert.Equal(t, id, slug.FromSlug(slug.ToSlug(id)), "round trip of %q", id)
	}
}

func TestKey_TrailingQuestionMarkIsOptional(t *testing.T) {
	want := slug.Key("are_you_in_business?")

	assert.Equal(t, "are-you-in-business", want)
	assert.Equal(t, want, slug.Key("are-you-in-business"))
	assert.Equal(t, want, slug.Key("are-you-in-business?"))
	assert.Equal(t, want, slug.Key("Are You In Business"))
}

func TestKey_FoldsLikeSymbolize(t *testing.T) {
	assert.Equal(t, slug.Key("STRASSE"), slug.Key("Straße"))
	assert.Equal(t, "strasse", slug.Key("straße?"))
	assert.Equal(t, slug.Symbolize("Straße"), slug.FromSlug(slug.Key("STRASSE")))
}

func TestAnswerKey(t *testing.T) {
	assert.Equal(t, "under_70k", slug.AnswerKey(" Under-70k? "))
	assert.Equal(t, slug.AnswerKey("yes"), slug.AnswerKey("Yes"))
	assert.Equal(t, "", slug.AnswerKey("?"))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Are you in business?", slug.Humanize("are_you_in_business?"))
	assert.Equal(t, "You can register for vat", slug.Humanize("you-can-register-for-vat"))
	assert.Equal(t, "Über alles", slug.Humanize("über_alles"))
	assert.Equal(t, "", slug.Humanize("__"))
}

func TestSymbolize(t *testing.T) {
	assert.Equal(t, "no", slug.Symbolize("No"))
	assert.Equal(t, "no", slug.Symbolize("  NO "))
	assert.Equal(t, "under_70k", slug.Symbolize("Under 70k"))
	assert.Equal(t, "retail_sector", slug.Symbolize("retail-sector"))
	assert.Equal(t, "strasse", slug.Symbolize("STRASSE"))
}
